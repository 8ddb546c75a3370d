// Package buildinfo carries the version stamped in with
//
//	-ldflags "-X vramdemo/internal/buildinfo.Version=... -X vramdemo/internal/buildinfo.Commit=..."
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the release version, else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		if len(Commit) > 12 {
			return Commit[:12]
		}
		return Commit
	default:
		return "dev"
	}
}

// Long adds the build date when one was stamped.
func Long() string {
	s := Short()
	if Date != "" && Date != "unknown" {
		s += " (" + Date + ")"
	}
	return s
}

package fixed

// Vec3 is a 3D vector. The same fields hold a colour; R, G and B are views
// onto X, Y and Z.
type Vec3 struct {
	X, Y, Z F24
}

func V3(x, y, z F24) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// RGB builds a colour whose channels are expected in [0,1].
func RGB(r, g, b F24) Vec3 { return Vec3{X: r, Y: g, Z: b} }

func (v Vec3) R() F24 { return v.X }
func (v Vec3) G() F24 { return v.Y }
func (v Vec3) B() F24 { return v.Z }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)} }

func (v Vec3) AddScalar(s F24) Vec3 { return Vec3{v.X.Add(s), v.Y.Add(s), v.Z.Add(s)} }
func (v Vec3) SubScalar(s F24) Vec3 { return Vec3{v.X.Sub(s), v.Y.Sub(s), v.Z.Sub(s)} }

func (v Vec3) MulScalar(a Arith, s F24) Vec3 {
	return Vec3{a.Mul(v.X, s), a.Mul(v.Y, s), a.Mul(v.Z, s)}
}

func (v Vec3) DivScalar(a Arith, s F24) Vec3 {
	return Vec3{a.Div(v.X, s), a.Div(v.Y, s), a.Div(v.Z, s)}
}

// SqrdLength returns x*x + y*y + z*z.
func (v Vec3) SqrdLength(a Arith) F24 { return Dot(a, v, v) }

func Dot(a Arith, u, v Vec3) F24 {
	return a.Mul(u.X, v.X).Add(a.Mul(u.Y, v.Y)).Add(a.Mul(u.Z, v.Z))
}

func Cross(a Arith, u, v Vec3) Vec3 {
	return Vec3{
		X: a.Mul(u.Y, v.Z).Sub(a.Mul(u.Z, v.Y)),
		Y: a.Mul(u.Z, v.X).Sub(a.Mul(u.X, v.Z)),
		Z: a.Mul(u.X, v.Y).Sub(a.Mul(u.Y, v.X)),
	}
}

// LegacyCross is the cross product as the first demo shipped it. The X term
// subtracts u.z*u.y instead of u.z*v.y, so the result is only correct when
// u.y == v.y or u.z == 0.
func LegacyCross(a Arith, u, v Vec3) Vec3 {
	return Vec3{
		X: a.Mul(u.Y, v.Z).Sub(a.Mul(u.Z, u.Y)),
		Y: a.Mul(u.Z, v.X).Sub(a.Mul(u.X, v.Z)),
		Z: a.Mul(u.X, v.Y).Sub(a.Mul(u.Y, v.X)),
	}
}

package fixed

import "testing"

func iv(x, y, z int) Vec3 { return V3(FromInt(x), FromInt(y), FromInt(z)) }

func TestColourViews(t *testing.T) {
	c := RGB(FromInt(1), FromInt(2), FromInt(3))
	if c.R() != c.X || c.G() != c.Y || c.B() != c.Z {
		t.Fatalf("views disagree with storage: %+v", c)
	}
}

func TestScalarOps(t *testing.T) {
	v := iv(1, 2, 3)
	if got := v.AddScalar(FromInt(1)); got != iv(2, 3, 4) {
		t.Fatalf("AddScalar = %+v", got)
	}
	if got := v.SubScalar(FromInt(1)); got != iv(0, 1, 2) {
		t.Fatalf("SubScalar = %+v", got)
	}
	if got := v.MulScalar(Scaled, FromInt(2)); got != iv(2, 4, 6) {
		t.Fatalf("MulScalar = %+v", got)
	}
	if got := iv(2, 4, 6).DivScalar(Scaled, FromInt(2)); got != v {
		t.Fatalf("DivScalar = %+v", got)
	}
	if got := v.Add(iv(1, 1, 1)).Sub(iv(1, 1, 1)); got != v {
		t.Fatalf("Add/Sub = %+v", got)
	}
}

func TestUnscaledMulScalar(t *testing.T) {
	v := V3(FromRaw(1), 0, 0).MulScalar(Unscaled, FromInt(31))
	if got := v.X.ToInt(); got != 31 {
		t.Fatalf("raw 1 * 31 ToInt = %d, want 31", got)
	}
}

func TestDotAndLength(t *testing.T) {
	if got := Dot(Scaled, iv(1, 2, 3), iv(4, 5, 6)); got != FromInt(32) {
		t.Fatalf("Dot = %s", got)
	}
	if got := iv(3, 4, 0).SqrdLength(Scaled); got != FromInt(25) {
		t.Fatalf("SqrdLength = %s", got)
	}
}

func TestCross(t *testing.T) {
	if got := Cross(Scaled, iv(1, 0, 0), iv(0, 1, 0)); got != iv(0, 0, 1) {
		t.Fatalf("x cross y = %+v", got)
	}
	if got := Cross(Scaled, iv(1, 2, 3), iv(4, 5, 6)); got != iv(-3, 6, -3) {
		t.Fatalf("Cross = %+v", got)
	}
}

func TestLegacyCross(t *testing.T) {
	if got := LegacyCross(Scaled, iv(1, 2, 3), iv(4, 5, 6)); got != iv(6, 6, -3) {
		t.Fatalf("LegacyCross = %+v", got)
	}
	// Agrees with Cross when u.y == v.y.
	u, v := iv(1, 2, 3), iv(4, 2, 6)
	if LegacyCross(Scaled, u, v) != Cross(Scaled, u, v) {
		t.Fatal("LegacyCross should match Cross when u.y == v.y")
	}
}

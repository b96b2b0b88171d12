// 指示: miu200521358
package mmath

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1.0, 2.0, 3.0)
	b := NewVec3(-4.0, 5.0, 0.5)

	if added := a.Added(b); !added.NearEquals(NewVec3(-3.0, 7.0, 3.5), 1e-9) {
		t.Fatalf("added mismatch: %v", added)
	}
	if subed := a.Subed(b); !subed.NearEquals(NewVec3(5.0, -3.0, 2.5), 1e-9) {
		t.Fatalf("subed mismatch: %v", subed)
	}
	if scaled := a.MuledScalar(2.0); !scaled.NearEquals(NewVec3(2.0, 4.0, 6.0), 1e-9) {
		t.Fatalf("scaled mismatch: %v", scaled)
	}
}

func TestVec3LengthAndDistance(t *testing.T) {
	v := NewVec3(3.0, 4.0, 0.0)
	if length := v.Length(); math.Abs(length-5.0) > 1e-9 {
		t.Fatalf("length mismatch: %f", length)
	}
	if distance := NewVec3(1.0, 0.0, 0.0).Distance(NewVec3(-1.0, 0.0, 0.0)); math.Abs(distance-2.0) > 1e-9 {
		t.Fatalf("distance mismatch: %f", distance)
	}
}

func TestVec3DotAndCross(t *testing.T) {
	if dot := UNIT_X_VEC3.Dot(UNIT_Y_VEC3); dot != 0.0 {
		t.Fatalf("dot mismatch: %f", dot)
	}
	if cross := UNIT_X_VEC3.Cross(UNIT_Y_VEC3); !cross.NearEquals(UNIT_Z_VEC3, 1e-9) {
		t.Fatalf("cross mismatch: %v", cross)
	}
}

func TestVec3Normalized(t *testing.T) {
	normalized := NewVec3(0.0, -2.0, 0.0).Normalized()
	if !normalized.NearEquals(UNIT_Y_NEG_VEC3, 1e-9) {
		t.Fatalf("normalized mismatch: %v", normalized)
	}
	if zero := ZERO_VEC3.Normalized(); !zero.NearEquals(ZERO_VEC3, 1e-9) {
		t.Fatalf("zero vector should stay zero: %v", zero)
	}
}

func TestMidPoint(t *testing.T) {
	mid := MidPoint(NewVec3(0.0, 0.0, 0.0), NewVec3(0.0, 2.0, 4.0))
	if !mid.NearEquals(NewVec3(0.0, 1.0, 2.0), 1e-9) {
		t.Fatalf("midpoint mismatch: %v", mid)
	}
}

func TestMeanVec3(t *testing.T) {
	mean := MeanVec3([]Vec3{
		NewVec3(0.0, 0.0, 0.0),
		NewVec3(3.0, 6.0, 9.0),
	})
	if !mean.NearEquals(NewVec3(1.5, 3.0, 4.5), 1e-9) {
		t.Fatalf("mean mismatch: %v", mean)
	}
	if empty := MeanVec3(nil); !empty.NearEquals(ZERO_VEC3, 1e-9) {
		t.Fatalf("empty mean should be zero: %v", empty)
	}
}

func TestDegRadConversion(t *testing.T) {
	if rad := DegToRad(180.0); math.Abs(rad-math.Pi) > 1e-12 {
		t.Fatalf("deg to rad mismatch: %f", rad)
	}
	if deg := RadToDeg(math.Pi / 2.0); math.Abs(deg-90.0) > 1e-9 {
		t.Fatalf("rad to deg mismatch: %f", deg)
	}
}

func TestClampedFloat(t *testing.T) {
	if clamped := ClampedFloat(5.0, -1.0, 3.0); clamped != 3.0 {
		t.Fatalf("max clamp mismatch: %f", clamped)
	}
	if clamped := ClampedFloat(-2.0, -1.0, 3.0); clamped != -1.0 {
		t.Fatalf("min clamp mismatch: %f", clamped)
	}
	if clamped := ClampedFloat(0.5, -1.0, 3.0); clamped != 0.5 {
		t.Fatalf("in-range value should be unchanged: %f", clamped)
	}
}

// 指示: miu200521358
package mmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

var (
	// ZERO_VEC3 は零ベクトル。
	ZERO_VEC3 = Vec3{Vec: r3.Vec{X: 0.0, Y: 0.0, Z: 0.0}}
	// UNIT_X_VEC3 はX軸単位ベクトル。
	UNIT_X_VEC3 = Vec3{Vec: r3.Vec{X: 1.0, Y: 0.0, Z: 0.0}}
	// UNIT_Y_VEC3 はY軸単位ベクトル。
	UNIT_Y_VEC3 = Vec3{Vec: r3.Vec{X: 0.0, Y: 1.0, Z: 0.0}}
	// UNIT_Y_NEG_VEC3 はY軸負方向単位ベクトル。
	UNIT_Y_NEG_VEC3 = Vec3{Vec: r3.Vec{X: 0.0, Y: -1.0, Z: 0.0}}
	// UNIT_Z_VEC3 はZ軸単位ベクトル。
	UNIT_Z_VEC3 = Vec3{Vec: r3.Vec{X: 0.0, Y: 0.0, Z: 1.0}}
)

// NewVec3 は成分指定でベクトルを生成する。
func NewVec3(x float64, y float64, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MuledScalar はスカラー倍を返す。
func (v Vec3) MuledScalar(scale float64) Vec3 {
	return Vec3{Vec: r3.Scale(scale, v.Vec)}
}

// Length はベクトル長を返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// Distance は2点間距離を返す。
func (v Vec3) Distance(other Vec3) float64 {
	return r3.Norm(r3.Sub(v.Vec, other.Vec))
}

// Dot は内積を返す。
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.Vec, other.Vec)
}

// Cross は外積を返す。
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{Vec: r3.Cross(v.Vec, other.Vec)}
}

// Normalized は正規化したベクトルを返す。零ベクトルは零ベクトルのまま返す。
func (v Vec3) Normalized() Vec3 {
	length := r3.Norm(v.Vec)
	if length == 0.0 {
		return ZERO_VEC3
	}
	return Vec3{Vec: r3.Unit(v.Vec)}
}

// NearEquals は許容誤差内で一致するか判定する。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}

// MeanVec3 はベクトル群の平均を返す。
func MeanVec3(values []Vec3) Vec3 {
	if len(values) == 0 {
		return ZERO_VEC3
	}
	sum := ZERO_VEC3
	for _, value := range values {
		sum = sum.Added(value)
	}
	return sum.MuledScalar(1.0 / float64(len(values)))
}

// MidPoint は2点の中点を返す。
func MidPoint(a Vec3, b Vec3) Vec3 {
	return Vec3{Vec: r3.Vec{
		X: (a.X + b.X) * 0.5,
		Y: (a.Y + b.Y) * 0.5,
		Z: (a.Z + b.Z) * 0.5,
	}}
}

// DegToRad は度からラジアンへ変換する。
func DegToRad(degree float64) float64 {
	return degree * math.Pi / 180.0
}

// RadToDeg はラジアンから度へ変換する。
func RadToDeg(radian float64) float64 {
	return radian * 180.0 / math.Pi
}

// ClampedFloat はmin-maxで値をクランプする。
func ClampedFloat(value float64, min float64, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

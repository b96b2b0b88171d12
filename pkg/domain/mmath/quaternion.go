// 指示: miu200521358
package mmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quaternion は回転クォータニオンを表す。
type Quaternion struct {
	mgl64.Quat
}

// NewQuaternion は単位クォータニオンを生成する。
func NewQuaternion() Quaternion {
	return Quaternion{Quat: mgl64.QuatIdent()}
}

// NewQuaternionFromDegrees はXYZ順のオイラー角(度)からクォータニオンを生成する。
func NewQuaternionFromDegrees(degreeX float64, degreeY float64, degreeZ float64) Quaternion {
	return Quaternion{Quat: mgl64.AnglesToQuat(
		DegToRad(degreeX),
		DegToRad(degreeY),
		DegToRad(degreeZ),
		mgl64.XYZ,
	)}
}

// Muled はクォータニオン積を返す。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Quat: q.Quat.Mul(other.Quat)}
}

// MulVec3 はベクトルへ回転を適用する。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	rotated := q.Quat.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vec3{Vec: r3.Vec{X: rotated.X(), Y: rotated.Y(), Z: rotated.Z()}}
}

// Normalized は正規化したクォータニオンを返す。
func (q Quaternion) Normalized() Quaternion {
	return Quaternion{Quat: q.Quat.Normalize()}
}

// NearEquals は許容誤差内で一致するか判定する。
func (q Quaternion) NearEquals(other Quaternion, epsilon float64) bool {
	return q.Quat.ApproxEqualThreshold(other.Quat, epsilon)
}

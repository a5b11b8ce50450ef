// 指示: miu200521358
package mmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion は回転を表す。
type Quaternion struct {
	q mgl64.Quat
}

// NewQuaternion は単位回転を生成する。
func NewQuaternion() Quaternion {
	return Quaternion{q: mgl64.QuatIdent()}
}

// NewQuaternionFromAxisAngle は軸と角度(ラジアン)から回転を生成する。
func NewQuaternionFromAxisAngle(axis Vec3, radians float64) Quaternion {
	return Quaternion{q: mgl64.QuatRotate(radians, axis.ToMgl().Normalize())}
}

// NewQuaternionByValues は成分(x, y, z, w)から回転を生成する。
func NewQuaternionByValues(x, y, z, w float64) Quaternion {
	return Quaternion{q: mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}}
}

// Muled は合成回転(q * other)を返す。otherを先に適用する。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{q: q.q.Mul(other.q)}
}

// Inverted は逆回転を返す。
func (q Quaternion) Inverted() Quaternion {
	return Quaternion{q: q.q.Inverse()}
}

// Normalized は正規化済み回転を返す。
func (q Quaternion) Normalized() Quaternion {
	return Quaternion{q: q.q.Normalize()}
}

// MulVec3 はベクトルを回転する。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	return NewVec3FromMgl(q.q.Rotate(v.ToMgl()))
}

// IsIdent は単位回転か判定する。
func (q Quaternion) IsIdent(epsilon float64) bool {
	return q.NearEquals(NewQuaternion(), epsilon)
}

// NearEquals は同じ回転を表すか判定する。符号反転した四元数も同一とみなす。
func (q Quaternion) NearEquals(other Quaternion, epsilon float64) bool {
	return q.q.ApproxEqualThreshold(other.q, epsilon) ||
		q.q.ApproxEqualThreshold(other.q.Scale(-1), epsilon)
}

// ToMat4 は回転行列を返す。
func (q Quaternion) ToMat4() mgl64.Mat4 {
	return q.q.Mat4()
}

// Values は成分(x, y, z, w)を返す。
func (q Quaternion) Values() (float64, float64, float64, float64) {
	return q.q.V[0], q.q.V[1], q.q.V[2], q.q.W
}

// DegToRad は度をラジアンへ変換する。
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg はラジアンを度へ変換する。
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

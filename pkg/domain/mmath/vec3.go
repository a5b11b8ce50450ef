// 指示: miu200521358
// Package mmath はリグ構築で使うベクトルと回転の演算を提供する。
package mmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
)

// NormalizeEpsilon は正規化可能とみなす最小ベクトル長。
const NormalizeEpsilon = 1e-8

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

var (
	// ZERO_VEC3 はゼロベクトル。
	ZERO_VEC3 = Vec3{}
	// UNIT_X_VEC3 はX軸単位ベクトル。
	UNIT_X_VEC3 = Vec3{Vec: r3.Vec{X: 1}}
	// UNIT_Y_VEC3 はY軸単位ベクトル。
	UNIT_Y_VEC3 = Vec3{Vec: r3.Vec{Y: 1}}
	// UNIT_Z_VEC3 はZ軸単位ベクトル。
	UNIT_Z_VEC3 = Vec3{Vec: r3.Vec{Z: 1}}
)

// NewVec3 は成分からVec3を生成する。
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// NewVec3FromSlice は3要素スライスからVec3を生成する。
func NewVec3FromSlice(values []float64) (Vec3, error) {
	if len(values) != 3 {
		return ZERO_VEC3, fmt.Errorf("ベクトルの要素数が不正です: %d", len(values))
	}
	return NewVec3(values[0], values[1], values[2]), nil
}

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MuledScalar はスカラー倍の結果を返す。
func (v Vec3) MuledScalar(s float64) Vec3 {
	return Vec3{Vec: r3.Scale(s, v.Vec)}
}

// Length はベクトル長を返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// Normalized は単位ベクトルを返す。長さがNormalizeEpsilon未満の場合は失敗する。
func (v Vec3) Normalized() (Vec3, error) {
	return v.NormalizedWithEpsilon(NormalizeEpsilon)
}

// NormalizedWithEpsilon は閾値指定で単位ベクトルを返す。
func (v Vec3) NormalizedWithEpsilon(epsilon float64) (Vec3, error) {
	length := v.Length()
	if length < epsilon || math.IsNaN(length) {
		return ZERO_VEC3, merrors.NewDegenerateVectorError(length)
	}
	return v.MuledScalar(1 / length), nil
}

// NearEquals は各成分が誤差以内で一致するか判定する。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}

// Slice は3要素スライスを返す。
func (v Vec3) Slice() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// MirroredX はX成分を反転したベクトルを返す。
func (v Vec3) MirroredX() Vec3 {
	return NewVec3(-v.X, v.Y, v.Z)
}

// ToMgl はmgl64.Vec3へ変換する。
func (v Vec3) ToMgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// NewVec3FromMgl はmgl64.Vec3からVec3を生成する。
func NewVec3FromMgl(v mgl64.Vec3) Vec3 {
	return NewVec3(v[0], v[1], v[2])
}

// String は表示用文字列を返す。
func (v Vec3) String() string {
	return fmt.Sprintf("[x=%.6f, y=%.6f, z=%.6f]", v.X, v.Y, v.Z)
}

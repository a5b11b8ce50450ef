// 指示: miu200521358
package rig

import (
	"fmt"
	"math"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
)

// UpAxis は上方向の軸を表す。
type UpAxis string

const (
	// UP_AXIS_Y はY軸上方向。
	UP_AXIS_Y UpAxis = "Y"
	// UP_AXIS_Z はZ軸上方向。
	UP_AXIS_Z UpAxis = "Z"
)

// Handedness は座標系の手系を表す。
type Handedness string

const (
	// HANDEDNESS_RIGHT は右手系。
	HANDEDNESS_RIGHT Handedness = "right"
	// HANDEDNESS_LEFT は左手系。
	HANDEDNESS_LEFT Handedness = "left"
)

// Convention は座標系の規約を表す。
type Convention struct {
	Up         UpAxis
	Handedness Handedness
}

var (
	// AUTHORING_CONVENTION は作成環境(Z-up右手系)。
	AUTHORING_CONVENTION = Convention{Up: UP_AXIS_Z, Handedness: HANDEDNESS_RIGHT}
	// ENGINE_CONVENTION は出力先エンジン(Y-up左手系)。
	ENGINE_CONVENTION = Convention{Up: UP_AXIS_Y, Handedness: HANDEDNESS_LEFT}
)

// String は表示用文字列を返す。
func (c Convention) String() string {
	return fmt.Sprintf("%s-up/%s", c.Up, c.Handedness)
}

// ParseConvention は"z-right"や"Y-up/left"形式の文字列から規約を取得する。
func ParseConvention(value string) (Convention, error) {
	switch normalizeConventionText(value) {
	case "zright":
		return AUTHORING_CONVENTION, nil
	case "yleft":
		return ENGINE_CONVENTION, nil
	case "zleft":
		return Convention{Up: UP_AXIS_Z, Handedness: HANDEDNESS_LEFT}, nil
	case "yright":
		return Convention{Up: UP_AXIS_Y, Handedness: HANDEDNESS_RIGHT}, nil
	}
	return Convention{}, fmt.Errorf("座標系の指定が不正です: %s", value)
}

// normalizeConventionText は区切りと"up"を除いた小文字表記を返す。
func normalizeConventionText(value string) string {
	normalized := make([]rune, 0, len(value))
	for _, r := range value {
		switch {
		case r >= 'A' && r <= 'Z':
			normalized = append(normalized, r+('a'-'A'))
		case r >= 'a' && r <= 'z':
			normalized = append(normalized, r)
		}
	}
	text := string(normalized)
	if len(text) > 2 && text[1:3] == "up" {
		text = text[:1] + text[3:]
	}
	return text
}

// ITransform は回転と形状データを持つホスト側オブジェクトの契約を表す。
type ITransform interface {
	Rotation() mmath.Quaternion
	SetRotation(rotation mmath.Quaternion)
	// ApplyRotation は現在の回転を形状データへ焼き込み、回転を単位回転へ戻す。
	ApplyRotation()
}

// RotationSpec は回転・焼き込み・逆回転の手順を表す。
type RotationSpec struct {
	Axis   mmath.Vec3
	Angle  float64
	Source Convention
	Target Convention
}

// IsIdentity は変換不要か判定する。
func (r RotationSpec) IsIdentity() bool {
	return r.Angle == 0
}

// BakeRotation は焼き込む回転を返す。
func (r RotationSpec) BakeRotation() mmath.Quaternion {
	if r.IsIdentity() {
		return mmath.NewQuaternion()
	}
	return mmath.NewQuaternionFromAxisAngle(r.Axis, r.Angle)
}

// CounterRotation は焼き込み後に戻す回転を返す。
func (r RotationSpec) CounterRotation() mmath.Quaternion {
	if r.IsIdentity() {
		return mmath.NewQuaternion()
	}
	return r.BakeRotation().Inverted()
}

// ComputeConversion は座標系間の変換手順を求める。
func ComputeConversion(
	sourceUp UpAxis,
	sourceHanded Handedness,
	targetUp UpAxis,
	targetHanded Handedness,
) (RotationSpec, error) {
	source := Convention{Up: sourceUp, Handedness: sourceHanded}
	target := Convention{Up: targetUp, Handedness: targetHanded}
	spec := RotationSpec{Axis: mmath.UNIT_X_VEC3, Source: source, Target: target}

	switch {
	case source == target:
		return spec, nil
	case source == AUTHORING_CONVENTION && target == ENGINE_CONVENTION:
		spec.Angle = -math.Pi / 2
		return spec, nil
	case source == ENGINE_CONVENTION && target == AUTHORING_CONVENTION:
		spec.Angle = math.Pi / 2
		return spec, nil
	}
	return RotationSpec{}, merrors.NewUnsupportedConventionError(source.String(), target.String())
}

// ApplyToTransform は回転・焼き込み・逆回転を行い、見た目を保ったまま形状データの座標系を変える。
func (r RotationSpec) ApplyToTransform(transform ITransform) {
	if transform == nil || r.IsIdentity() {
		return
	}
	transform.SetRotation(r.BakeRotation().Muled(transform.Rotation()).Normalized())
	transform.ApplyRotation()
	transform.SetRotation(r.CounterRotation().Muled(transform.Rotation()).Normalized())
	logRigDebug("座標系変換: %s -> %s", r.Source, r.Target)
}

// ApplyToSkeleton は頭尾へ回転を焼き込んだ複製と、見た目を保つための逆回転を返す。
func (r RotationSpec) ApplyToSkeleton(skeleton *model.Skeleton) (*model.Skeleton, mmath.Quaternion) {
	converted := skeleton.Copy()
	if r.IsIdentity() {
		return converted, mmath.NewQuaternion()
	}
	bake := r.BakeRotation()
	for _, bone := range converted.Values() {
		bone.Head = bake.MulVec3(bone.Head)
		bone.Tail = bake.MulVec3(bone.Tail)
	}
	return converted, r.CounterRotation()
}

// ConvertSkeleton は頭尾を変換先の座標系で表した複製を返す。
// 手系が異なる場合は回転の後にX軸を反転する。
func (r RotationSpec) ConvertSkeleton(skeleton *model.Skeleton) *model.Skeleton {
	converted, _ := r.ApplyToSkeleton(skeleton)
	if r.Source.Handedness == r.Target.Handedness {
		return converted
	}
	for _, bone := range converted.Values() {
		bone.Head = mmath.NewVec3(-bone.Head.X, bone.Head.Y, bone.Head.Z)
		bone.Tail = mmath.NewVec3(-bone.Tail.X, bone.Tail.Y, bone.Tail.Z)
	}
	return converted
}

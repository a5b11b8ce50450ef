// 指示: miu200521358
// Package scene はリグを配置するホストシーンを提供する。
package scene

import (
	"strings"

	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
)

// ObjectType はシーンオブジェクト種別を表す。
type ObjectType string

const (
	// OBJECT_TYPE_MESH はメッシュ。
	OBJECT_TYPE_MESH ObjectType = "MESH"
	// OBJECT_TYPE_ARMATURE はアーマチュア。
	OBJECT_TYPE_ARMATURE ObjectType = "ARMATURE"
)

// Mode はオブジェクトの編集モードを表す。
type Mode string

const (
	// MODE_OBJECT はオブジェクトモード。
	MODE_OBJECT Mode = "OBJECT"
	// MODE_EDIT は編集モード。
	MODE_EDIT Mode = "EDIT"
)

const (
	// ARMATURE_MODIFIER_NAME はメッシュとアーマチュアを結ぶモディファイア名。
	ARMATURE_MODIFIER_NAME = "Armature"
	// ARMATURE_MODIFIER_TYPE はアーマチュアモディファイア種別。
	ARMATURE_MODIFIER_TYPE = "ARMATURE"
)

// Modifier はメッシュに付くモディファイアを表す。
type Modifier struct {
	Name   string
	Type   string
	Object string
}

// Object はシーン内のメッシュまたはアーマチュアを表す。
type Object struct {
	name       string
	objectType ObjectType
	rotation   mmath.Quaternion

	Location     mmath.Vec3
	Hidden       bool
	Selected     bool
	Mode         Mode
	Skeleton     *model.Skeleton
	Vertices     []mmath.Vec3
	vertexGroups []string
	Modifiers    []Modifier
}

// NewArmatureObject はボーン階層を持つアーマチュアオブジェクトを生成する。
func NewArmatureObject(name string, skeleton *model.Skeleton) *Object {
	return &Object{
		name:         name,
		objectType:   OBJECT_TYPE_ARMATURE,
		rotation:     mmath.NewQuaternion(),
		Mode:         MODE_OBJECT,
		Skeleton:     skeleton,
		vertexGroups: []string{},
	}
}

// NewMeshObject は頂点を持つメッシュオブジェクトを生成する。
func NewMeshObject(name string, vertices []mmath.Vec3) *Object {
	return &Object{
		name:         name,
		objectType:   OBJECT_TYPE_MESH,
		rotation:     mmath.NewQuaternion(),
		Mode:         MODE_OBJECT,
		Vertices:     append([]mmath.Vec3{}, vertices...),
		vertexGroups: []string{},
	}
}

// Name はオブジェクト名を返す。
func (o *Object) Name() string {
	return o.name
}

// Type はオブジェクト種別を返す。
func (o *Object) Type() ObjectType {
	return o.objectType
}

// IsMesh はメッシュか判定する。
func (o *Object) IsMesh() bool {
	return o.objectType == OBJECT_TYPE_MESH
}

// IsArmature はアーマチュアか判定する。
func (o *Object) IsArmature() bool {
	return o.objectType == OBJECT_TYPE_ARMATURE
}

// Rotation は回転を返す。
func (o *Object) Rotation() mmath.Quaternion {
	return o.rotation
}

// SetRotation は回転を設定する。
func (o *Object) SetRotation(rotation mmath.Quaternion) {
	o.rotation = rotation
}

// ApplyRotation は回転を頂点またはボーンへ焼き込み、回転を単位回転へ戻す。
func (o *Object) ApplyRotation() {
	if o.rotation.IsIdent(0) {
		return
	}
	for i, v := range o.Vertices {
		o.Vertices[i] = o.rotation.MulVec3(v)
	}
	for _, bone := range o.Skeleton.Values() {
		bone.Head = o.rotation.MulVec3(bone.Head)
		bone.Tail = o.rotation.MulVec3(bone.Tail)
	}
	o.rotation = mmath.NewQuaternion()
}

// WorldPoints は回転と位置を反映した頂点またはボーン頭尾の座標を返す。
func (o *Object) WorldPoints() []mmath.Vec3 {
	local := append([]mmath.Vec3{}, o.Vertices...)
	for _, bone := range o.Skeleton.Values() {
		local = append(local, bone.Head, bone.Tail)
	}
	world := make([]mmath.Vec3, 0, len(local))
	for _, v := range local {
		world = append(world, o.rotation.MulVec3(v).Added(o.Location))
	}
	return world
}

// WorldSkeleton は回転と位置を反映したボーン階層の複製を返す。
func (o *Object) WorldSkeleton() *model.Skeleton {
	world := o.Skeleton.Copy()
	for _, bone := range world.Values() {
		bone.Head = o.rotation.MulVec3(bone.Head).Added(o.Location)
		bone.Tail = o.rotation.MulVec3(bone.Tail).Added(o.Location)
	}
	return world
}

// VertexGroups は頂点グループ名一覧の複製を返す。
func (o *Object) VertexGroups() []string {
	return append([]string{}, o.vertexGroups...)
}

// HasVertexGroup は同名の頂点グループがあるか判定する。
func (o *Object) HasVertexGroup(name string) bool {
	for _, group := range o.vertexGroups {
		if group == name {
			return true
		}
	}
	return false
}

// AddVertexGroup は空の頂点グループを追加する。既に存在する場合はfalseを返す。
func (o *Object) AddVertexGroup(name string) bool {
	if name == "" || o.HasVertexGroup(name) {
		return false
	}
	o.vertexGroups = append(o.vertexGroups, name)
	return true
}

// ArmatureTarget はArmatureモディファイアが参照するアーマチュア名を返す。
func (o *Object) ArmatureTarget() (string, bool) {
	for _, modifier := range o.Modifiers {
		if modifier.Name == ARMATURE_MODIFIER_NAME && modifier.Object != "" {
			return modifier.Object, true
		}
	}
	return "", false
}

// LinkArmature はArmatureモディファイアを追加または更新する。
func (o *Object) LinkArmature(armatureName string) {
	for i, modifier := range o.Modifiers {
		if strings.EqualFold(modifier.Type, ARMATURE_MODIFIER_TYPE) && modifier.Name == ARMATURE_MODIFIER_NAME {
			o.Modifiers[i].Object = armatureName
			return
		}
	}
	o.Modifiers = append(o.Modifiers, Modifier{
		Name:   ARMATURE_MODIFIER_NAME,
		Type:   ARMATURE_MODIFIER_TYPE,
		Object: armatureName,
	})
}

// RestoreObject は保存済みの状態からオブジェクトを復元する。
func RestoreObject(name string, objectType ObjectType, rotation mmath.Quaternion, vertexGroups []string) *Object {
	return &Object{
		name:         name,
		objectType:   objectType,
		rotation:     rotation,
		Mode:         MODE_OBJECT,
		vertexGroups: append([]string{}, vertexGroups...),
	}
}

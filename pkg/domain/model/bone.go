// 指示: miu200521358
package model

import "github.com/miu200521358/mu_humanoid/pkg/domain/mmath"

// Bone はスケルトン内の1本のボーンを表す。
// 親子関係はボーン名で保持し、実体はSkeletonが所有する。
type Bone struct {
	name       string
	parentName string
	childNames []string

	Head      mmath.Vec3
	Tail      mmath.Vec3
	Connected bool
}

// NewBone は頭尾が同一点のボーンを生成する。
func NewBone(name string, head mmath.Vec3) *Bone {
	return &Bone{
		name:       name,
		childNames: []string{},
		Head:       head,
		Tail:       head,
	}
}

// Name はボーン名を返す。
func (b *Bone) Name() string {
	return b.name
}

// ParentName は親ボーン名を返す。ルートの場合は空文字。
func (b *Bone) ParentName() string {
	return b.parentName
}

// HasParent は親ボーンを持つか判定する。
func (b *Bone) HasParent() bool {
	return b.parentName != ""
}

// ChildNames は子ボーン名一覧の複製を返す。
func (b *Bone) ChildNames() []string {
	names := make([]string, len(b.childNames))
	copy(names, b.childNames)
	return names
}

// IsLeaf は子ボーンを持たないか判定する。
func (b *Bone) IsLeaf() bool {
	return len(b.childNames) == 0
}

// Length は頭から尾までの長さを返す。
func (b *Bone) Length() float64 {
	return b.Tail.Subed(b.Head).Length()
}

// Translate は頭と尾を同量だけ平行移動する。
func (b *Bone) Translate(offset mmath.Vec3) {
	b.Head = b.Head.Added(offset)
	b.Tail = b.Tail.Added(offset)
}

// 指示: miu200521358
package model

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
)

// BoneSpec はボーン階層構築の入力ノードを表す。
// 取り込みツリーではOffsetは親からの相対位置、テンプレートでは頭から尾へのオフセット。
type BoneSpec struct {
	Name         string
	Offset       *mmath.Vec3
	HeadOverride *mmath.Vec3
	Children     []*BoneSpec
}

// NewBoneSpec はBoneSpecを生成する。子一覧は呼び出しごとに新規確保する。
func NewBoneSpec(name string, offset *mmath.Vec3, children ...*BoneSpec) *BoneSpec {
	spec := &BoneSpec{
		Name:     name,
		Offset:   offset,
		Children: make([]*BoneSpec, 0, len(children)),
	}
	spec.Children = append(spec.Children, children...)
	return spec
}

// Vec3Ptr は成分からVec3ポインタを生成する。
func Vec3Ptr(x, y, z float64) *mmath.Vec3 {
	v := mmath.NewVec3(x, y, z)
	return &v
}

// WithHeadOverride は頭位置の上書きオフセットを設定して自身を返す。
func (s *BoneSpec) WithHeadOverride(override *mmath.Vec3) *BoneSpec {
	s.HeadOverride = override
	return s
}

// IsLeaf は子ノードを持たないか判定する。
func (s *BoneSpec) IsLeaf() bool {
	return len(s.Children) == 0
}

// Count は自身を含むノード数を返す。
func (s *BoneSpec) Count() int {
	if s == nil {
		return 0
	}
	count := 1
	for _, child := range s.Children {
		count += child.Count()
	}
	return count
}

// Walk は深さ優先・先行順でノードを巡回する。ルートの親はnil。
func (s *BoneSpec) Walk(fn func(parent *BoneSpec, node *BoneSpec) error) error {
	if s == nil {
		return nil
	}
	return walkBoneSpec(nil, s, fn)
}

// walkBoneSpec はWalkの再帰本体。
func walkBoneSpec(parent *BoneSpec, node *BoneSpec, fn func(parent *BoneSpec, node *BoneSpec) error) error {
	if node == nil {
		return fmt.Errorf("子ノードが未設定です: parent=%s", parent.Name)
	}
	if err := fn(parent, node); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := walkBoneSpec(node, child, fn); err != nil {
			return err
		}
	}
	return nil
}

// Clone はノードツリーを深く複製する。
func (s *BoneSpec) Clone() (*BoneSpec, error) {
	if s == nil {
		return nil, nil
	}
	cloned := &BoneSpec{}
	if err := deepcopy.Copy(cloned, s); err != nil {
		return nil, fmt.Errorf("ボーン定義の複製に失敗しました: %w", err)
	}
	return cloned, nil
}

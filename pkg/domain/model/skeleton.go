// 指示: miu200521358
package model

import (
	"fmt"
	"math"

	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
)

// Skeleton はボーン名順序付きのボーン階層を表す。
type Skeleton struct {
	names    []string
	bones    map[string]*Bone
	rootName string
}

// NewSkeleton は空のスケルトンを生成する。
func NewSkeleton() *Skeleton {
	return &Skeleton{
		names: []string{},
		bones: map[string]*Bone{},
	}
}

// Append はボーンを追加する。parentNameが空の場合はルートとして登録する。
func (s *Skeleton) Append(bone *Bone, parentName string) error {
	if bone == nil {
		return fmt.Errorf("追加対象ボーンが未設定です")
	}
	if bone.name == "" {
		return fmt.Errorf("ボーン名が空です")
	}
	if _, exists := s.bones[bone.name]; exists {
		return fmt.Errorf("ボーン名が重複しています: %s", bone.name)
	}
	if parentName == "" {
		if s.rootName != "" {
			return fmt.Errorf("ルートボーンは既に登録されています: %s", s.rootName)
		}
		s.rootName = bone.name
	} else {
		parent, exists := s.bones[parentName]
		if !exists {
			return fmt.Errorf("親ボーンが見つかりません: %s", parentName)
		}
		parent.childNames = append(parent.childNames, bone.name)
	}
	bone.parentName = parentName
	s.names = append(s.names, bone.name)
	s.bones[bone.name] = bone
	return nil
}

// Len はボーン数を返す。
func (s *Skeleton) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Get はボーン名からボーンを取得する。
func (s *Skeleton) Get(name string) (*Bone, bool) {
	if s == nil {
		return nil, false
	}
	bone, exists := s.bones[name]
	return bone, exists
}

// Root はルートボーンを返す。
func (s *Skeleton) Root() *Bone {
	if s == nil || s.rootName == "" {
		return nil
	}
	return s.bones[s.rootName]
}

// Parent は親ボーンを返す。
func (s *Skeleton) Parent(bone *Bone) *Bone {
	if s == nil || bone == nil || bone.parentName == "" {
		return nil
	}
	return s.bones[bone.parentName]
}

// Children は子ボーン一覧を追加順で返す。
func (s *Skeleton) Children(bone *Bone) []*Bone {
	if s == nil || bone == nil {
		return nil
	}
	children := make([]*Bone, 0, len(bone.childNames))
	for _, name := range bone.childNames {
		children = append(children, s.bones[name])
	}
	return children
}

// Names はボーン名一覧を追加順で返す。
func (s *Skeleton) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Values はボーン一覧を追加順で返す。
func (s *Skeleton) Values() []*Bone {
	if s == nil {
		return nil
	}
	values := make([]*Bone, 0, len(s.names))
	for _, name := range s.names {
		values = append(values, s.bones[name])
	}
	return values
}

// Translate は全ボーンを同量だけ平行移動する。
func (s *Skeleton) Translate(offset mmath.Vec3) {
	for _, bone := range s.Values() {
		bone.Translate(offset)
	}
}

// MinZ は全ボーンの頭尾のうち最小のZ座標を返す。
func (s *Skeleton) MinZ() float64 {
	if s.Len() == 0 {
		return 0
	}
	minZ := math.Inf(1)
	for _, bone := range s.Values() {
		minZ = math.Min(minZ, math.Min(bone.Head.Z, bone.Tail.Z))
	}
	return minZ
}

// Copy はボーン階層を複製する。
func (s *Skeleton) Copy() *Skeleton {
	copied := NewSkeleton()
	if s == nil {
		return copied
	}
	for _, bone := range s.Values() {
		cloned := &Bone{
			name:       bone.name,
			childNames: []string{},
			Head:       bone.Head,
			Tail:       bone.Tail,
			Connected:  bone.Connected,
		}
		// 追加順は親が先になるため失敗しない
		_ = copied.Append(cloned, bone.parentName)
	}
	return copied
}

// Validate は階層の整合性を検証する。
func (s *Skeleton) Validate() error {
	if s.Len() == 0 {
		return nil
	}
	if s.Root() == nil {
		return fmt.Errorf("ルートボーンが未設定です")
	}
	for _, bone := range s.Values() {
		if bone.name == s.rootName {
			if bone.HasParent() || bone.Connected {
				return fmt.Errorf("ルートボーンが親を持っています: %s", bone.name)
			}
			continue
		}
		parent := s.Parent(bone)
		if parent == nil {
			return fmt.Errorf("親ボーンが見つかりません: %s", bone.name)
		}
		if bone.Connected && bone.Head != parent.Tail {
			return fmt.Errorf("接続ボーンの頭が親の尾と一致しません: %s head=%v parentTail=%v", bone.name, bone.Head, parent.Tail)
		}
	}
	return nil
}

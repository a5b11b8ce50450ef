// 指示: miu200521358
package scene

import (
	"fmt"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
)

// ACTIVE_OBJECT_LABEL はアクティブオブジェクト未設定時のエラー表示名。
const ACTIVE_OBJECT_LABEL = "(active)"

// Scene は名前順序付きのオブジェクト集合と選択状態を表す。
type Scene struct {
	name       string
	names      []string
	objects    map[string]*Object
	activeName string
}

// NewScene は空のシーンを生成する。
func NewScene(name string) *Scene {
	return &Scene{
		name:    name,
		names:   []string{},
		objects: map[string]*Object{},
	}
}

// Name はシーン名を返す。
func (s *Scene) Name() string {
	return s.name
}

// Len はオブジェクト数を返す。
func (s *Scene) Len() int {
	return len(s.names)
}

// UniqueName は重複しないオブジェクト名を返す。重複時は".001"形式の連番を付ける。
func (s *Scene) UniqueName(name string) string {
	if _, exists := s.objects[name]; !exists {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%03d", name, i)
		if _, exists := s.objects[candidate]; !exists {
			return candidate
		}
	}
}

// Link はオブジェクトをシーンへ追加する。名前が重複する場合は連番を付けて追加する。
func (s *Scene) Link(object *Object) *Object {
	object.name = s.UniqueName(object.name)
	s.names = append(s.names, object.name)
	s.objects[object.name] = object
	return object
}

// Unlink はオブジェクトをシーンから取り除く。
func (s *Scene) Unlink(name string) error {
	if _, exists := s.objects[name]; !exists {
		return merrors.NewObjectNotFoundError(name)
	}
	delete(s.objects, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	if s.activeName == name {
		s.activeName = ""
	}
	return nil
}

// Get は名前でオブジェクトを取得する。
func (s *Scene) Get(name string) (*Object, error) {
	object, exists := s.objects[name]
	if !exists {
		return nil, merrors.NewObjectNotFoundError(name)
	}
	return object, nil
}

// GetTyped は種別を確認してオブジェクトを取得する。
func (s *Scene) GetTyped(name string, types ...ObjectType) (*Object, error) {
	object, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	for _, t := range types {
		if object.Type() == t {
			return object, nil
		}
	}
	want := ""
	for i, t := range types {
		if i > 0 {
			want += "|"
		}
		want += string(t)
	}
	return nil, merrors.NewObjectTypeMismatchError(name, want, string(object.Type()))
}

// Objects はオブジェクト一覧を追加順で返す。
func (s *Scene) Objects() []*Object {
	objects := make([]*Object, 0, len(s.names))
	for _, name := range s.names {
		objects = append(objects, s.objects[name])
	}
	return objects
}

// Active はアクティブオブジェクトを返す。
func (s *Scene) Active() *Object {
	if s.activeName == "" {
		return nil
	}
	return s.objects[s.activeName]
}

// SetActive はアクティブオブジェクトを設定する。空文字で解除する。
func (s *Scene) SetActive(name string) error {
	if name == "" {
		s.activeName = ""
		return nil
	}
	if _, exists := s.objects[name]; !exists {
		return merrors.NewObjectNotFoundError(name)
	}
	s.activeName = name
	return nil
}

// DeselectAll は全オブジェクトの選択を解除する。
func (s *Scene) DeselectAll() {
	for _, object := range s.objects {
		object.Selected = false
	}
}

// Select は指定オブジェクトだけを選択してアクティブにする。
func (s *Scene) Select(name string) error {
	object, err := s.Get(name)
	if err != nil {
		return err
	}
	s.DeselectAll()
	object.Selected = true
	s.activeName = name
	return nil
}

// ResolveTarget は名前指定がない場合はアクティブオブジェクトを対象とし、種別を確認して返す。
func (s *Scene) ResolveTarget(name string, types ...ObjectType) (*Object, error) {
	if name == "" {
		active := s.Active()
		if active == nil {
			return nil, merrors.NewObjectNotFoundError(ACTIVE_OBJECT_LABEL)
		}
		name = active.Name()
	}
	return s.GetTyped(name, types...)
}

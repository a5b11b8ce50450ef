// 指示: miu200521358
package scene

// objectState は編集前のオブジェクト状態を表す。
type objectState struct {
	hidden   bool
	selected bool
	mode     Mode
}

// EditSession は一時的な編集状態を表す。Restoreで開始前の状態へ戻す。
type EditSession struct {
	scene      *Scene
	activeName string
	states     map[string]objectState
	restored   bool
}

// BeginEdit は対象オブジェクトを表示・選択・アクティブ化した編集状態を開始する。
// 呼び出し側はエラーの有無にかかわらずdeferでRestoreを呼ぶ。
func (s *Scene) BeginEdit(targets ...string) (*EditSession, error) {
	session := &EditSession{
		scene:      s,
		activeName: s.activeName,
		states:     make(map[string]objectState, len(s.objects)),
	}
	for name, object := range s.objects {
		session.states[name] = objectState{
			hidden:   object.Hidden,
			selected: object.Selected,
			mode:     object.Mode,
		}
	}

	s.DeselectAll()
	for i, name := range targets {
		object, err := s.Get(name)
		if err != nil {
			session.Restore()
			return nil, err
		}
		object.Hidden = false
		object.Selected = true
		object.Mode = MODE_OBJECT
		if i == 0 {
			s.activeName = name
		}
	}
	return session, nil
}

// Restore は開始前の表示・選択・モード・アクティブ状態へ戻す。複数回呼んでも一度だけ戻す。
func (e *EditSession) Restore() {
	if e == nil || e.restored {
		return
	}
	e.restored = true
	for name, object := range e.scene.objects {
		state, exists := e.states[name]
		if !exists {
			object.Selected = false
			continue
		}
		object.Hidden = state.hidden
		object.Selected = state.selected
		object.Mode = state.mode
	}
	if _, exists := e.scene.objects[e.activeName]; exists {
		e.scene.activeName = e.activeName
	} else {
		e.scene.activeName = ""
	}
}

// 指示: miu200521358
package model

import "fmt"

// RenameMode は取り込み時のボーン名変換方式を表す。
type RenameMode string

const (
	// RENAME_NONE は変換しない。
	RENAME_NONE RenameMode = "none"
	// RENAME_SUFFIXED はHumanBodyBones名を接尾辞付き名へ変換する。
	RENAME_SUFFIXED RenameMode = "suffixed"
	// RENAME_UNITY は接尾辞付き名をHumanBodyBones名へ変換する。
	RENAME_UNITY RenameMode = "unity"
)

// IsValid は既知の変換方式か判定する。空文字はRENAME_NONEとして扱う。
func (m RenameMode) IsValid() bool {
	switch m {
	case "", RENAME_NONE, RENAME_SUFFIXED, RENAME_UNITY:
		return true
	}
	return false
}

// Rename は変換方式に従ってボーン名を変換する。変換表にない名前はそのまま返しfalseを返す。
func (m RenameMode) Rename(name string) (string, bool) {
	switch m {
	case RENAME_SUFFIXED:
		if converted, ok := UnityToSuffixedName(name); ok {
			return converted, true
		}
		_, known := SuffixedToUnityName(name)
		return name, known
	case RENAME_UNITY:
		if converted, ok := SuffixedToUnityName(name); ok {
			return converted, true
		}
		_, known := UnityToSuffixedName(name)
		return name, known
	}
	return name, true
}

// RenameSpec はボーンツリーを複製し、全ノード名を変換する。
// 変換表にない名前は変換せず、警告として返す。
func RenameSpec(spec *BoneSpec, mode RenameMode) (*BoneSpec, []RigWarning, error) {
	cloned, err := spec.Clone()
	if err != nil {
		return nil, nil, err
	}
	if mode == "" || mode == RENAME_NONE {
		return cloned, nil, nil
	}
	warnings := make([]RigWarning, 0)
	err = cloned.Walk(func(_ *BoneSpec, node *BoneSpec) error {
		renamed, ok := mode.Rename(node.Name)
		if !ok {
			warnings = append(warnings, RigWarning{ID: RigWarningUnknownHumanoidName, Target: node.Name})
		}
		node.Name = renamed
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("ボーン名を変換できません: %w", err)
	}
	return cloned, warnings, nil
}

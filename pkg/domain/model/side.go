// 指示: miu200521358
package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Side はボーン名が示す左右を表す。
type Side int

const (
	// SideNone は左右指定なし。
	SideNone Side = iota
	// SideLeft は左。
	SideLeft
	// SideRight は右。
	SideRight
)

// String は表示用文字列を返す。
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite は反対側を返す。
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// SideRule はボーン名から左右を判定する規則を表す。
type SideRule struct {
	// LeftPrefixes は左を示す接頭辞(大文字小文字区別、直後は大文字か区切り文字)。
	LeftPrefixes []string
	// RightPrefixes は右を示す接頭辞。
	RightPrefixes []string
	// LeftSuffixes は左を示す接尾辞(大文字小文字無視)。
	LeftSuffixes []string
	// RightSuffixes は右を示す接尾辞。
	RightSuffixes []string
	// Strict が真の場合、左右指定のある子は左右指定のない親にも接続しない。
	Strict bool
}

// DefaultSideRule はUnity Humanoid名と接尾辞付き名の両方を扱う既定規則を返す。
func DefaultSideRule() SideRule {
	return SideRule{
		LeftPrefixes:  []string{"Left"},
		RightPrefixes: []string{"Right"},
		LeftSuffixes:  []string{".L", "_L"},
		RightSuffixes: []string{".R", "_R"},
	}
}

// Detect はボーン名の左右を判定する。
func (r SideRule) Detect(name string) Side {
	side, _ := r.detect(name)
	return side
}

// StripMarker は左右マーカーを除いたボーン名を返す。
func (r SideRule) StripMarker(name string) string {
	_, stripped := r.detect(name)
	return stripped
}

// detect は左右とマーカー除去後の名前を返す。
func (r SideRule) detect(name string) (Side, string) {
	if stripped, ok := trimSuffixFold(name, r.LeftSuffixes); ok {
		return SideLeft, stripped
	}
	if stripped, ok := trimSuffixFold(name, r.RightSuffixes); ok {
		return SideRight, stripped
	}
	if stripped, ok := trimMarkerPrefix(name, r.LeftPrefixes); ok {
		return SideLeft, stripped
	}
	if stripped, ok := trimMarkerPrefix(name, r.RightPrefixes); ok {
		return SideRight, stripped
	}
	return SideNone, name
}

// CanConnect は子ボーンを親ボーンの尾へ接続してよいか判定する。
func (r SideRule) CanConnect(childName string, parentName string) bool {
	childSide := r.Detect(childName)
	parentSide := r.Detect(parentName)
	if parentSide != SideNone {
		return childSide == parentSide
	}
	if childSide == SideNone {
		return true
	}
	return !r.Strict
}

// trimSuffixFold は大文字小文字を無視して接尾辞を取り除く。
func trimSuffixFold(name string, suffixes []string) (string, bool) {
	for _, suffix := range suffixes {
		if suffix == "" || len(name) <= len(suffix) {
			continue
		}
		tail := name[len(name)-len(suffix):]
		if strings.EqualFold(tail, suffix) {
			return name[:len(name)-len(suffix)], true
		}
	}
	return name, false
}

// trimMarkerPrefix は接頭辞の直後が大文字か区切り文字の場合のみ接頭辞を取り除く。
func trimMarkerPrefix(name string, prefixes []string) (string, bool) {
	for _, prefix := range prefixes {
		if prefix == "" || len(name) <= len(prefix) || !strings.HasPrefix(name, prefix) {
			continue
		}
		rest := name[len(prefix):]
		next, _ := utf8.DecodeRuneInString(rest)
		if unicode.IsUpper(next) {
			return rest, true
		}
		if next == '_' || next == '.' || next == ' ' {
			return rest[1:], true
		}
	}
	return name, false
}

// MirrorName は左右マーカーを反対側へ置き換えた名前を返す。左右指定がない場合はそのまま返す。
func (r SideRule) MirrorName(name string) string {
	if stripped, ok := trimSuffixFold(name, r.LeftSuffixes); ok {
		return stripped + mirrorSuffix(name[len(stripped):], r.LeftSuffixes, r.RightSuffixes)
	}
	if stripped, ok := trimSuffixFold(name, r.RightSuffixes); ok {
		return stripped + mirrorSuffix(name[len(stripped):], r.RightSuffixes, r.LeftSuffixes)
	}
	for i, prefix := range r.LeftPrefixes {
		if _, ok := trimMarkerPrefix(name, []string{prefix}); ok && i < len(r.RightPrefixes) {
			return r.RightPrefixes[i] + name[len(prefix):]
		}
	}
	for i, prefix := range r.RightPrefixes {
		if _, ok := trimMarkerPrefix(name, []string{prefix}); ok && i < len(r.LeftPrefixes) {
			return r.LeftPrefixes[i] + name[len(prefix):]
		}
	}
	return name
}

// mirrorSuffix は同じ位置の反対側接尾辞を元の大文字小文字に合わせて返す。
func mirrorSuffix(current string, from []string, to []string) string {
	for i, suffix := range from {
		if !strings.EqualFold(current, suffix) || i >= len(to) {
			continue
		}
		mirrored := to[i]
		if current == strings.ToLower(current) {
			return strings.ToLower(mirrored)
		}
		return mirrored
	}
	return current
}

// TipRule は指先・つま先など末端ボーンの判定規則を表す。
type TipRule struct {
	// BaseNames は左右マーカー除去後の名前の接尾辞(大文字小文字無視)。
	BaseNames []string
}

// DefaultTipRule はつま先を末端ボーンとして扱う既定規則を返す。
func DefaultTipRule() TipRule {
	return TipRule{BaseNames: []string{"Toes", "Toe"}}
}

// IsTip は末端ボーン名か判定する。
func (r TipRule) IsTip(name string, sideRule SideRule) bool {
	stripped := strings.ToLower(sideRule.StripMarker(name))
	for _, base := range r.BaseNames {
		if base != "" && strings.HasSuffix(stripped, strings.ToLower(base)) {
			return true
		}
	}
	return false
}

// MirrorSuffixNames は左右接尾辞(大文字小文字無視)で終わる名前だけを返す。
func (r SideRule) MirrorSuffixNames(names []string) []string {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := trimSuffixFold(name, r.LeftSuffixes); ok {
			filtered = append(filtered, name)
			continue
		}
		if _, ok := trimSuffixFold(name, r.RightSuffixes); ok {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// 指示: miu200521358
package model

import "strings"

// HumanoidBone はUnity Humanoidボーン1種類の命名を表す。
type HumanoidBone struct {
	// UnityTemplate はHumanBodyBones名のテンプレート。{Side}はLeft/Rightへ置換する。
	UnityTemplate string
	// SuffixedTemplate は接尾辞付き名のテンプレート。{S}はL/Rへ置換する。
	SuffixedTemplate string
	// VrmTemplate はVRM humanoid名のテンプレート。{side}はleft/rightへ置換する。
	VrmTemplate string
}

// Sided は左右を持つボーンか判定する。
func (b HumanoidBone) Sided() bool {
	return strings.Contains(b.UnityTemplate, "{Side}")
}

// UnityName は左右を指定してHumanBodyBones名を返す。
func (b HumanoidBone) UnityName(side Side) string {
	return strings.ReplaceAll(b.UnityTemplate, "{Side}", unitySideWord(side))
}

// SuffixedName は左右を指定して接尾辞付き名を返す。
func (b HumanoidBone) SuffixedName(side Side) string {
	return strings.ReplaceAll(b.SuffixedTemplate, "{S}", suffixSideLetter(side))
}

// VrmName は左右を指定してVRM humanoid名を返す。
func (b HumanoidBone) VrmName(side Side) string {
	return strings.ReplaceAll(b.VrmTemplate, "{side}", strings.ToLower(unitySideWord(side)))
}

// unitySideWord はHumanBodyBones名の左右語を返す。
func unitySideWord(side Side) string {
	if side == SideRight {
		return "Right"
	}
	return "Left"
}

// suffixSideLetter は接尾辞の左右文字を返す。
func suffixSideLetter(side Side) string {
	if side == SideRight {
		return "R"
	}
	return "L"
}

// humanoidBones はUnity Humanoidボーンの命名一覧を保持する。
var humanoidBones = []HumanoidBone{
	{UnityTemplate: "Hips", SuffixedTemplate: "Hips", VrmTemplate: "hips"},
	{UnityTemplate: "Spine", SuffixedTemplate: "Spine", VrmTemplate: "spine"},
	{UnityTemplate: "Chest", SuffixedTemplate: "Chest", VrmTemplate: "chest"},
	{UnityTemplate: "UpperChest", SuffixedTemplate: "UpperChest", VrmTemplate: "upperChest"},
	{UnityTemplate: "Neck", SuffixedTemplate: "Neck", VrmTemplate: "neck"},
	{UnityTemplate: "Head", SuffixedTemplate: "Head", VrmTemplate: "head"},
	{UnityTemplate: "Jaw", SuffixedTemplate: "Jaw", VrmTemplate: "jaw"},
	{UnityTemplate: "{Side}Eye", SuffixedTemplate: "Eye.{S}", VrmTemplate: "{side}Eye"},
	{UnityTemplate: "{Side}Shoulder", SuffixedTemplate: "Shoulder.{S}", VrmTemplate: "{side}Shoulder"},
	{UnityTemplate: "{Side}UpperArm", SuffixedTemplate: "UpperArm.{S}", VrmTemplate: "{side}UpperArm"},
	{UnityTemplate: "{Side}LowerArm", SuffixedTemplate: "LowerArm.{S}", VrmTemplate: "{side}LowerArm"},
	{UnityTemplate: "{Side}Hand", SuffixedTemplate: "Hand.{S}", VrmTemplate: "{side}Hand"},
	{UnityTemplate: "{Side}ThumbProximal", SuffixedTemplate: "ThumbProximal.{S}", VrmTemplate: "{side}ThumbProximal"},
	{UnityTemplate: "{Side}ThumbIntermediate", SuffixedTemplate: "ThumbIntermediate.{S}", VrmTemplate: "{side}ThumbIntermediate"},
	{UnityTemplate: "{Side}ThumbDistal", SuffixedTemplate: "ThumbDistal.{S}", VrmTemplate: "{side}ThumbDistal"},
	{UnityTemplate: "{Side}IndexProximal", SuffixedTemplate: "IndexProximal.{S}", VrmTemplate: "{side}IndexProximal"},
	{UnityTemplate: "{Side}IndexIntermediate", SuffixedTemplate: "IndexIntermediate.{S}", VrmTemplate: "{side}IndexIntermediate"},
	{UnityTemplate: "{Side}IndexDistal", SuffixedTemplate: "IndexDistal.{S}", VrmTemplate: "{side}IndexDistal"},
	{UnityTemplate: "{Side}MiddleProximal", SuffixedTemplate: "MiddleProximal.{S}", VrmTemplate: "{side}MiddleProximal"},
	{UnityTemplate: "{Side}MiddleIntermediate", SuffixedTemplate: "MiddleIntermediate.{S}", VrmTemplate: "{side}MiddleIntermediate"},
	{UnityTemplate: "{Side}MiddleDistal", SuffixedTemplate: "MiddleDistal.{S}", VrmTemplate: "{side}MiddleDistal"},
	{UnityTemplate: "{Side}RingProximal", SuffixedTemplate: "RingProximal.{S}", VrmTemplate: "{side}RingProximal"},
	{UnityTemplate: "{Side}RingIntermediate", SuffixedTemplate: "RingIntermediate.{S}", VrmTemplate: "{side}RingIntermediate"},
	{UnityTemplate: "{Side}RingDistal", SuffixedTemplate: "RingDistal.{S}", VrmTemplate: "{side}RingDistal"},
	{UnityTemplate: "{Side}LittleProximal", SuffixedTemplate: "LittleProximal.{S}", VrmTemplate: "{side}LittleProximal"},
	{UnityTemplate: "{Side}LittleIntermediate", SuffixedTemplate: "LittleIntermediate.{S}", VrmTemplate: "{side}LittleIntermediate"},
	{UnityTemplate: "{Side}LittleDistal", SuffixedTemplate: "LittleDistal.{S}", VrmTemplate: "{side}LittleDistal"},
	{UnityTemplate: "{Side}UpperLeg", SuffixedTemplate: "UpperLeg.{S}", VrmTemplate: "{side}UpperLeg"},
	{UnityTemplate: "{Side}LowerLeg", SuffixedTemplate: "LowerLeg.{S}", VrmTemplate: "{side}LowerLeg"},
	{UnityTemplate: "{Side}Foot", SuffixedTemplate: "Foot.{S}", VrmTemplate: "{side}Foot"},
	{UnityTemplate: "{Side}Toes", SuffixedTemplate: "Toe.{S}", VrmTemplate: "{side}Toes"},
}

// unityToSuffixed はHumanBodyBones名から接尾辞付き名への辞書を保持する。
var unityToSuffixed = buildHumanoidNameIndex(func(b HumanoidBone, side Side) (string, string) {
	return b.UnityName(side), b.SuffixedName(side)
})

// suffixedToUnity は接尾辞付き名からHumanBodyBones名への辞書を保持する。
var suffixedToUnity = buildHumanoidNameIndex(func(b HumanoidBone, side Side) (string, string) {
	return b.SuffixedName(side), b.UnityName(side)
})

// vrmToUnity はVRM humanoid名からHumanBodyBones名への辞書を保持する。
var vrmToUnity = buildHumanoidNameIndex(func(b HumanoidBone, side Side) (string, string) {
	return b.VrmName(side), b.UnityName(side)
})

// buildHumanoidNameIndex は左右展開済みの名前辞書を構築する。
func buildHumanoidNameIndex(pair func(b HumanoidBone, side Side) (string, string)) map[string]string {
	index := map[string]string{}
	for _, bone := range humanoidBones {
		sides := []Side{SideNone}
		if bone.Sided() {
			sides = []Side{SideLeft, SideRight}
		}
		for _, side := range sides {
			from, to := pair(bone, side)
			index[from] = to
		}
	}
	return index
}

// HumanoidBones はUnity Humanoidボーンの命名一覧の複製を返す。
func HumanoidBones() []HumanoidBone {
	bones := make([]HumanoidBone, len(humanoidBones))
	copy(bones, humanoidBones)
	return bones
}

// UnityToSuffixedName はHumanBodyBones名を接尾辞付き名へ変換する。
func UnityToSuffixedName(name string) (string, bool) {
	converted, ok := unityToSuffixed[name]
	return converted, ok
}

// SuffixedToUnityName は接尾辞付き名をHumanBodyBones名へ変換する。
func SuffixedToUnityName(name string) (string, bool) {
	converted, ok := suffixedToUnity[name]
	return converted, ok
}

// VrmToUnityName はVRM humanoid名をHumanBodyBones名へ変換する。
func VrmToUnityName(name string) (string, bool) {
	converted, ok := vrmToUnity[name]
	return converted, ok
}

// HumanoidNode はHumanBodyBones名による固定階層の1ノードを表す。
type HumanoidNode struct {
	Name     string
	Children []*HumanoidNode
}

// newHumanoidNode はHumanoidNodeを生成する。
func newHumanoidNode(name string, children ...*HumanoidNode) *HumanoidNode {
	return &HumanoidNode{Name: name, Children: append([]*HumanoidNode{}, children...)}
}

// UnityHumanoidHierarchy はHumanBodyBones名による両側の固定階層を新規生成して返す。
func UnityHumanoidHierarchy() *HumanoidNode {
	return newHumanoidNode("Hips",
		newHumanoidNode("Spine",
			newHumanoidNode("Chest",
				newHumanoidNode("UpperChest",
					newHumanoidNode("Neck",
						newHumanoidNode("Head",
							newHumanoidNode("LeftEye"),
							newHumanoidNode("RightEye"),
							newHumanoidNode("Jaw"),
						),
					),
					humanoidArm(SideLeft),
					humanoidArm(SideRight),
				),
			),
		),
		humanoidLeg(SideLeft),
		humanoidLeg(SideRight),
	)
}

// humanoidArm は片側の肩から指先までの階層を生成する。
func humanoidArm(side Side) *HumanoidNode {
	s := unitySideWord(side)
	fingers := make([]*HumanoidNode, 0, 5)
	for _, finger := range []string{"Thumb", "Index", "Middle", "Ring", "Little"} {
		fingers = append(fingers, newHumanoidNode(s+finger+"Proximal",
			newHumanoidNode(s+finger+"Intermediate",
				newHumanoidNode(s+finger+"Distal"),
			),
		))
	}
	return newHumanoidNode(s+"Shoulder",
		newHumanoidNode(s+"UpperArm",
			newHumanoidNode(s+"LowerArm",
				newHumanoidNode(s+"Hand", fingers...),
			),
		),
	)
}

// humanoidLeg は片側の脚からつま先までの階層を生成する。
func humanoidLeg(side Side) *HumanoidNode {
	s := unitySideWord(side)
	return newHumanoidNode(s+"UpperLeg",
		newHumanoidNode(s+"LowerLeg",
			newHumanoidNode(s+"Foot",
				newHumanoidNode(s+"Toes"),
			),
		),
	)
}

// 指示: miu200521358
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanoidNameConversions(t *testing.T) {
	tests := []struct {
		unity    string
		suffixed string
		vrm      string
	}{
		{unity: "Hips", suffixed: "Hips", vrm: "hips"},
		{unity: "LeftUpperArm", suffixed: "UpperArm.L", vrm: "leftUpperArm"},
		{unity: "RightHand", suffixed: "Hand.R", vrm: "rightHand"},
		{unity: "LeftToes", suffixed: "Toe.L", vrm: "leftToes"},
		{unity: "RightLittleDistal", suffixed: "LittleDistal.R", vrm: "rightLittleDistal"},
		{unity: "UpperChest", suffixed: "UpperChest", vrm: "upperChest"},
	}

	for _, tt := range tests {
		t.Run(tt.unity, func(t *testing.T) {
			suffixed, ok := UnityToSuffixedName(tt.unity)
			require.True(t, ok)
			assert.Equal(t, tt.suffixed, suffixed)

			unity, ok := SuffixedToUnityName(tt.suffixed)
			require.True(t, ok)
			assert.Equal(t, tt.unity, unity)

			fromVrm, ok := VrmToUnityName(tt.vrm)
			require.True(t, ok)
			assert.Equal(t, tt.unity, fromVrm)
		})
	}

	_, ok := UnityToSuffixedName("Tail")
	assert.False(t, ok)
}

func TestUnityHumanoidHierarchyCoversCatalog(t *testing.T) {
	names := map[string]int{}
	var visit func(node *HumanoidNode)
	visit = func(node *HumanoidNode) {
		names[node.Name]++
		for _, child := range node.Children {
			visit(child)
		}
	}
	visit(UnityHumanoidHierarchy())

	expected := 0
	for _, bone := range HumanoidBones() {
		if bone.Sided() {
			expected += 2
			assert.Equal(t, 1, names[bone.UnityName(SideLeft)], bone.UnityName(SideLeft))
			assert.Equal(t, 1, names[bone.UnityName(SideRight)], bone.UnityName(SideRight))
			continue
		}
		expected++
		assert.Equal(t, 1, names[bone.UnityName(SideNone)], bone.UnityName(SideNone))
	}
	assert.Len(t, names, expected)
}

func TestUnityHumanoidHierarchyReturnsFreshTree(t *testing.T) {
	a := UnityHumanoidHierarchy()
	b := UnityHumanoidHierarchy()
	a.Children = nil

	assert.NotEmpty(t, b.Children)
}

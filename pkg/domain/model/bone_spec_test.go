// 指示: miu200521358
package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoneSpecCountAndWalkOrder(t *testing.T) {
	root := NewBoneSpec("Hips", nil,
		NewBoneSpec("Spine", Vec3Ptr(0, 0, 0.3),
			NewBoneSpec("Chest", Vec3Ptr(0, 0, 0.3)),
		),
		NewBoneSpec("LeftUpperLeg", Vec3Ptr(0.1, -0.1, 0)),
	)

	assert.Equal(t, 4, root.Count())

	visited := []string{}
	parents := []string{}
	require.NoError(t, root.Walk(func(parent *BoneSpec, node *BoneSpec) error {
		visited = append(visited, node.Name)
		if parent == nil {
			parents = append(parents, "")
		} else {
			parents = append(parents, parent.Name)
		}
		return nil
	}))
	assert.Equal(t, []string{"Hips", "Spine", "Chest", "LeftUpperLeg"}, visited)
	assert.Equal(t, []string{"", "Hips", "Spine", "Hips"}, parents)
}

func TestBoneSpecWalkStopsOnError(t *testing.T) {
	root := NewBoneSpec("Hips", nil, NewBoneSpec("Spine", nil), NewBoneSpec("Leg", nil))
	stop := errors.New("stop")

	count := 0
	err := root.Walk(func(_ *BoneSpec, node *BoneSpec) error {
		count++
		if node.Name == "Spine" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, count)
}

func TestBoneSpecChildrenAreNotShared(t *testing.T) {
	a := NewBoneSpec("A", nil)
	b := NewBoneSpec("B", nil)
	a.Children = append(a.Children, NewBoneSpec("C", nil))

	assert.Len(t, a.Children, 1)
	assert.Empty(t, b.Children)
}

func TestBoneSpecClone(t *testing.T) {
	root := NewBoneSpec("Hips", nil,
		NewBoneSpec("UpperLeg.L", Vec3Ptr(0, 0, -1)).WithHeadOverride(Vec3Ptr(0.3, 0, -0.2)),
	)

	cloned, err := root.Clone()
	require.NoError(t, err)
	require.Len(t, cloned.Children, 1)

	cloned.Children[0].Name = "Renamed"
	cloned.Children[0].Offset.X = 5

	assert.Equal(t, "UpperLeg.L", root.Children[0].Name)
	assert.Equal(t, 0.0, root.Children[0].Offset.X)
	require.NotNil(t, cloned.Children[0].HeadOverride)
	assert.Equal(t, 0.3, cloned.Children[0].HeadOverride.X)
}

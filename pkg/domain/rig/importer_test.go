// 指示: miu200521358
package rig

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
)

const testEpsilon = 1e-6

func TestImporterBuildHipsSpine(t *testing.T) {
	spec := model.NewBoneSpec("Hips", nil,
		model.NewBoneSpec("Spine", model.Vec3Ptr(0, 0, 0.3)),
	)

	skeleton, err := NewImporter(DefaultImportOptions()).Build(spec)
	require.NoError(t, err)
	require.Equal(t, 2, skeleton.Len())

	hips, ok := skeleton.Get("Hips")
	require.True(t, ok)
	spine, ok := skeleton.Get("Spine")
	require.True(t, ok)

	assert.True(t, spine.Connected)
	assert.False(t, hips.Connected)
	assert.Equal(t, "Hips", spine.ParentName())
	assert.True(t, hips.Head.NearEquals(mmath.ZERO_VEC3, testEpsilon))
	assert.True(t, hips.Tail.NearEquals(mmath.NewVec3(0, -0.3, 0), testEpsilon))
	assert.Equal(t, hips.Tail, spine.Head)
	assert.True(t, spine.Tail.NearEquals(mmath.NewVec3(0, -0.35, 0), testEpsilon))
	assert.InDelta(t, 0.0, skeleton.MinZ(), testEpsilon)
	require.NoError(t, skeleton.Validate())
}

func TestImporterBuildRootOnly(t *testing.T) {
	skeleton, err := NewImporter(DefaultImportOptions()).Build(model.NewBoneSpec("Root", model.Vec3Ptr(1, 2, 3)))
	require.NoError(t, err)
	require.Equal(t, 1, skeleton.Len())

	root := skeleton.Root()
	require.NotNil(t, root)
	assert.Equal(t, mmath.ZERO_VEC3, root.Head)
	assert.Equal(t, mmath.ZERO_VEC3, root.Tail)
}

// importLegTree は接地確認用の脚付きツリーを返す。
func importLegTree() *model.BoneSpec {
	return model.NewBoneSpec("Hips", nil,
		model.NewBoneSpec("Spine", model.Vec3Ptr(0, 0, 0.3),
			model.NewBoneSpec("Chest", model.Vec3Ptr(0, 0.02, 0.3),
				model.NewBoneSpec("Shoulder.L", model.Vec3Ptr(-0.1, 0, 0.2),
					model.NewBoneSpec("UpperArm.L", model.Vec3Ptr(-0.2, 0, 0)),
				),
				model.NewBoneSpec("Head", model.Vec3Ptr(0, 0, 0.4),
					model.NewBoneSpec("Eye.L", model.Vec3Ptr(-0.05, 0.1, 0.05)),
				),
			),
		),
		model.NewBoneSpec("UpperLeg.L", model.Vec3Ptr(0.1, -0.5, 0),
			model.NewBoneSpec("LowerLeg.L", model.Vec3Ptr(0, -0.4, 0),
				model.NewBoneSpec("Toe.L", model.Vec3Ptr(0, -0.05, 0.1)),
			),
		),
		model.NewBoneSpec("UpperLeg.R", model.Vec3Ptr(-0.1, -0.5, 0),
			model.NewBoneSpec("LowerLeg.R", model.Vec3Ptr(0, -0.4, 0),
				model.NewBoneSpec("Heel.R", model.Vec3Ptr(0, -0.1, 0)),
			),
		),
	)
}

func TestImporterBuildKeepsTreeShape(t *testing.T) {
	spec := importLegTree()
	skeleton, err := NewImporter(DefaultImportOptions()).Build(spec)
	require.NoError(t, err)

	assert.Equal(t, spec.Count(), skeleton.Len())
	require.NoError(t, spec.Walk(func(parent *model.BoneSpec, node *model.BoneSpec) error {
		bone, ok := skeleton.Get(node.Name)
		require.True(t, ok, node.Name)
		if parent == nil {
			assert.False(t, bone.HasParent())
			return nil
		}
		assert.Equal(t, parent.Name, bone.ParentName(), node.Name)
		return nil
	}))
	require.NoError(t, skeleton.Validate())
}

func TestImporterBuildAlignsFloor(t *testing.T) {
	skeleton, err := NewImporter(DefaultImportOptions()).Build(importLegTree())
	require.NoError(t, err)

	assert.InDelta(t, 0.0, skeleton.MinZ(), testEpsilon)

	// 踵は下向きの末端なので尾が最下点になる
	heel, ok := skeleton.Get("Heel.R")
	require.True(t, ok)
	assert.InDelta(t, 0.0, heel.Tail.Z, testEpsilon)
	assert.Greater(t, heel.Head.Z, heel.Tail.Z)

	hips := skeleton.Root()
	assert.InDelta(t, 1.05, hips.Head.Z, testEpsilon)
}

func TestImporterBuildLevelsToe(t *testing.T) {
	skeleton, err := NewImporter(DefaultImportOptions()).Build(importLegTree())
	require.NoError(t, err)

	toe, ok := skeleton.Get("Toe.L")
	require.True(t, ok)
	lowerLeg, ok := skeleton.Get("LowerLeg.L")
	require.True(t, ok)

	assert.NotEqual(t, lowerLeg.Head.Z, toe.Head.Z)
	assert.InDelta(t, toe.Head.Z, toe.Tail.Z, testEpsilon)
	assert.InDelta(t, DefaultLeafLength, toe.Length(), testEpsilon)
	assert.True(t, toe.Tail.Subed(toe.Head).NearEquals(mmath.NewVec3(0, -DefaultLeafLength, 0), testEpsilon))
}

func TestImporterBuildConnectivity(t *testing.T) {
	tests := []struct {
		name      string
		parent    string
		child     string
		strict    bool
		connected bool
	}{
		{name: "same side", parent: "Shoulder.L", child: "UpperArm.L", connected: true},
		{name: "axial", parent: "Hips", child: "Spine", connected: true},
		{name: "marked child under axial", parent: "Hips", child: "UpperArm.L", connected: true},
		{name: "eye under head", parent: "Head", child: "Eye.L", connected: true},
		{name: "opposite side", parent: "Something.L", child: "Something.R", connected: false},
		{name: "axial child under marked", parent: "Shoulder.L", child: "Spine", connected: false},
		{name: "strict marked child under axial", parent: "Head", child: "Eye.L", strict: true, connected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := DefaultImportOptions()
			options.SideRule.Strict = tt.strict
			spec := model.NewBoneSpec("Root", nil,
				model.NewBoneSpec(tt.parent, model.Vec3Ptr(0, 0, 1),
					model.NewBoneSpec(tt.child, model.Vec3Ptr(0, 0, 0.5)),
				),
			)

			skeleton, err := NewImporter(options).Build(spec)
			require.NoError(t, err)

			parent, _ := skeleton.Get(tt.parent)
			child, _ := skeleton.Get(tt.child)
			assert.Equal(t, tt.connected, child.Connected)
			if tt.connected {
				assert.Equal(t, parent.Tail, child.Head)
			} else {
				assert.Equal(t, parent.Head, parent.Tail)
			}
		})
	}
}

func TestImporterBuildFirstConnectableChildClaimsTail(t *testing.T) {
	spec := model.NewBoneSpec("Hips", nil,
		model.NewBoneSpec("Spine", model.Vec3Ptr(0, 0, 0.3)),
		model.NewBoneSpec("Tail", model.Vec3Ptr(0, 0.2, -0.1)),
	)

	skeleton, err := NewImporter(DefaultImportOptions()).Build(spec)
	require.NoError(t, err)

	hips := skeleton.Root()
	spine, _ := skeleton.Get("Spine")
	tail, _ := skeleton.Get("Tail")
	assert.True(t, spine.Connected)
	assert.False(t, tail.Connected)
	assert.Equal(t, spine.Head, hips.Tail)
	require.NoError(t, skeleton.Validate())
}

func TestImporterBuildErrors(t *testing.T) {
	t.Run("missing offset", func(t *testing.T) {
		spec := model.NewBoneSpec("Hips", nil, model.NewBoneSpec("Spine", nil))
		skeleton, err := NewImporter(DefaultImportOptions()).Build(spec)
		require.Error(t, err)
		assert.Nil(t, skeleton)
		assert.Equal(t, merrors.InvalidTreeErrorID, merrors.ExtractErrorID(err))

		var treeErr *merrors.InvalidTreeError
		require.True(t, errors.As(err, &treeErr))
		assert.Equal(t, "Spine", treeErr.BoneName)
	})

	t.Run("degenerate leaf", func(t *testing.T) {
		spec := model.NewBoneSpec("Hips", nil,
			model.NewBoneSpec("Spine", model.Vec3Ptr(0, 0, 0.3),
				model.NewBoneSpec("Chest", model.Vec3Ptr(0, 0, 0)),
			),
		)
		skeleton, err := NewImporter(DefaultImportOptions()).Build(spec)
		require.Error(t, err)
		assert.Nil(t, skeleton)

		var degenerate *merrors.DegenerateVectorError
		assert.True(t, errors.As(err, &degenerate))
		assert.Equal(t, merrors.InvalidTreeErrorID, merrors.ExtractErrorID(err))
	})

	t.Run("level toe straight below parent", func(t *testing.T) {
		spec := model.NewBoneSpec("Foot.L", nil, model.NewBoneSpec("Toe.L", model.Vec3Ptr(0, 0.1, 0)))
		_, err := NewImporter(DefaultImportOptions()).Build(spec)
		require.Error(t, err)
	})

	t.Run("duplicate name", func(t *testing.T) {
		spec := model.NewBoneSpec("Hips", nil,
			model.NewBoneSpec("Spine", model.Vec3Ptr(0, 0, 0.3)),
			model.NewBoneSpec("Spine", model.Vec3Ptr(0, 0, 0.4)),
		)
		_, err := NewImporter(DefaultImportOptions()).Build(spec)
		require.Error(t, err)
		assert.Equal(t, merrors.InvalidTreeErrorID, merrors.ExtractErrorID(err))
	})

	t.Run("nil tree", func(t *testing.T) {
		_, err := NewImporter(DefaultImportOptions()).Build(nil)
		require.Error(t, err)
	})
}

func TestImporterBuildConfigurableTipAndLength(t *testing.T) {
	options := DefaultImportOptions()
	options.TipRule = model.TipRule{BaseNames: []string{"Tip"}}
	options.LeafLength = 0.1
	spec := model.NewBoneSpec("Hand.L", nil,
		model.NewBoneSpec("IndexTip.L", model.Vec3Ptr(0, -0.1, 0.1)),
	)

	skeleton, err := NewImporter(options).Build(spec)
	require.NoError(t, err)

	tip, _ := skeleton.Get("IndexTip.L")
	assert.InDelta(t, tip.Head.Z, tip.Tail.Z, testEpsilon)
	assert.InDelta(t, 0.1, tip.Length(), testEpsilon)
}

func TestRemapSourceOffsetRoundTrip(t *testing.T) {
	v := mmath.NewVec3(0.1, -0.2, 0.3)
	remapped := RemapSourceOffset(v)

	assert.Equal(t, mmath.NewVec3(-0.1, -0.3, -0.2), remapped)
	assert.True(t, UnmapSourceOffset(remapped).NearEquals(v, 0))
	assert.False(t, math.IsNaN(remapped.X))
}

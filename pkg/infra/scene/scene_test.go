// 指示: miu200521358
package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
)

// newTestSkeleton は2本のボーンを持つ骨格を生成する。
func newTestSkeleton(t *testing.T) *model.Skeleton {
	t.Helper()
	skeleton := model.NewSkeleton()
	hips := model.NewBone("Hips", mmath.ZERO_VEC3)
	hips.Tail = mmath.NewVec3(0, 0, 1)
	require.NoError(t, skeleton.Append(hips, ""))
	spine := model.NewBone("Spine", mmath.NewVec3(0, 0, 1))
	spine.Tail = mmath.NewVec3(0, 0, 2)
	require.NoError(t, skeleton.Append(spine, "Hips"))
	return skeleton
}

func TestLinkAssignsUniqueNames(t *testing.T) {
	s := NewScene("main")
	first := s.Link(NewArmatureObject("PastedHumanoid", newTestSkeleton(t)))
	second := s.Link(NewArmatureObject("PastedHumanoid", newTestSkeleton(t)))
	third := s.Link(NewArmatureObject("PastedHumanoid", newTestSkeleton(t)))

	assert.Equal(t, "PastedHumanoid", first.Name())
	assert.Equal(t, "PastedHumanoid.001", second.Name())
	assert.Equal(t, "PastedHumanoid.002", third.Name())
	assert.Equal(t, 3, s.Len())

	require.NoError(t, s.Unlink("PastedHumanoid.001"))
	assert.Equal(t, "PastedHumanoid.001", s.UniqueName("PastedHumanoid"))

	names := []string{}
	for _, object := range s.Objects() {
		names = append(names, object.Name())
	}
	assert.Equal(t, []string{"PastedHumanoid", "PastedHumanoid.002"}, names)
}

func TestGetErrors(t *testing.T) {
	s := NewScene("main")
	s.Link(NewMeshObject("Body", nil))

	_, err := s.Get("Missing")
	assert.Equal(t, merrors.ObjectNotFoundErrorID, merrors.ExtractErrorID(err))

	_, err = s.GetTyped("Body", OBJECT_TYPE_ARMATURE)
	assert.Equal(t, merrors.ObjectTypeMismatchErrorID, merrors.ExtractErrorID(err))

	object, err := s.GetTyped("Body", OBJECT_TYPE_ARMATURE, OBJECT_TYPE_MESH)
	require.NoError(t, err)
	assert.True(t, object.IsMesh())

	assert.Equal(t, merrors.ObjectNotFoundErrorID, merrors.ExtractErrorID(s.SetActive("Missing")))
	assert.Equal(t, merrors.ObjectNotFoundErrorID, merrors.ExtractErrorID(s.Unlink("Missing")))
}

func TestActiveAndSelection(t *testing.T) {
	s := NewScene("main")
	s.Link(NewMeshObject("Body", nil))
	s.Link(NewArmatureObject("Armature", newTestSkeleton(t)))

	assert.Nil(t, s.Active())
	require.NoError(t, s.Select("Armature"))
	assert.Equal(t, "Armature", s.Active().Name())
	body, err := s.Get("Body")
	require.NoError(t, err)
	assert.False(t, body.Selected)

	require.NoError(t, s.Select("Body"))
	armature, err := s.Get("Armature")
	require.NoError(t, err)
	assert.False(t, armature.Selected)
	assert.True(t, body.Selected)

	require.NoError(t, s.Unlink("Body"))
	assert.Nil(t, s.Active())
	assert.Equal(t, 1, s.Len())
}

func TestVertexGroupsAndModifier(t *testing.T) {
	mesh := NewMeshObject("Body", nil)
	assert.True(t, mesh.AddVertexGroup("Hips"))
	assert.False(t, mesh.AddVertexGroup("Hips"))
	assert.False(t, mesh.AddVertexGroup(""))
	assert.Equal(t, []string{"Hips"}, mesh.VertexGroups())

	_, ok := mesh.ArmatureTarget()
	assert.False(t, ok)

	mesh.LinkArmature("Armature")
	mesh.LinkArmature("ArmatureHumanoid")
	require.Len(t, mesh.Modifiers, 1)
	target, ok := mesh.ArmatureTarget()
	assert.True(t, ok)
	assert.Equal(t, "ArmatureHumanoid", target)
}

func TestApplyRotationBakesGeometry(t *testing.T) {
	armature := NewArmatureObject("Armature", newTestSkeleton(t))
	armature.SetRotation(mmath.NewQuaternionFromAxisAngle(mmath.UNIT_X_VEC3, -math.Pi/2))
	before := armature.WorldPoints()

	armature.ApplyRotation()
	assert.True(t, armature.Rotation().IsIdent(1e-12))

	spine, ok := armature.Skeleton.Get("Spine")
	require.True(t, ok)
	assert.True(t, spine.Tail.NearEquals(mmath.NewVec3(0, 2, 0), 1e-9), spine.Tail.String())

	after := armature.WorldPoints()
	require.Len(t, after, len(before))
	for i := range before {
		assert.True(t, before[i].NearEquals(after[i], 1e-9))
	}

	mesh := NewMeshObject("Body", []mmath.Vec3{mmath.NewVec3(0, 0, 1)})
	mesh.SetRotation(mmath.NewQuaternionFromAxisAngle(mmath.UNIT_X_VEC3, -math.Pi/2))
	mesh.ApplyRotation()
	assert.True(t, mesh.Vertices[0].NearEquals(mmath.NewVec3(0, 1, 0), 1e-9))
}

func TestEditSessionRestoresState(t *testing.T) {
	s := NewScene("main")
	body := s.Link(NewMeshObject("Body", nil))
	armature := s.Link(NewArmatureObject("Armature", newTestSkeleton(t)))
	other := s.Link(NewMeshObject("Other", nil))

	armature.Hidden = true
	armature.Mode = MODE_EDIT
	other.Selected = true
	require.NoError(t, s.SetActive("Other"))

	session, err := s.BeginEdit("Body", "Armature")
	require.NoError(t, err)
	assert.Equal(t, "Body", s.Active().Name())
	assert.True(t, body.Selected)
	assert.False(t, armature.Hidden)
	assert.Equal(t, MODE_OBJECT, armature.Mode)
	assert.False(t, other.Selected)

	session.Restore()
	session.Restore()
	assert.Equal(t, "Other", s.Active().Name())
	assert.False(t, body.Selected)
	assert.True(t, armature.Hidden)
	assert.Equal(t, MODE_EDIT, armature.Mode)
	assert.True(t, other.Selected)
}

func TestEditSessionRestoresOnFailure(t *testing.T) {
	s := NewScene("main")
	body := s.Link(NewMeshObject("Body", nil))
	body.Hidden = true
	require.NoError(t, s.SetActive("Body"))

	session, err := s.BeginEdit("Body", "Missing")
	assert.Nil(t, session)
	assert.Equal(t, merrors.ObjectNotFoundErrorID, merrors.ExtractErrorID(err))
	assert.True(t, body.Hidden)
	assert.Equal(t, "Body", s.Active().Name())
}

func TestEditSessionRestoresAfterPanic(t *testing.T) {
	s := NewScene("main")
	body := s.Link(NewMeshObject("Body", nil))
	body.Hidden = true

	func() {
		defer func() { _ = recover() }()
		session, err := s.BeginEdit("Body")
		require.NoError(t, err)
		defer session.Restore()
		panic("failed")
	}()

	assert.True(t, body.Hidden)
	assert.Nil(t, s.Active())
}

func TestResolveTarget(t *testing.T) {
	s := NewScene("main")
	s.Link(NewMeshObject("Body", nil))

	_, err := s.ResolveTarget("", OBJECT_TYPE_MESH)
	assert.Equal(t, merrors.ObjectNotFoundErrorID, merrors.ExtractErrorID(err))

	require.NoError(t, s.SetActive("Body"))
	object, err := s.ResolveTarget("", OBJECT_TYPE_MESH)
	require.NoError(t, err)
	assert.Equal(t, "Body", object.Name())

	_, err = s.ResolveTarget("Body", OBJECT_TYPE_ARMATURE)
	assert.Equal(t, merrors.ObjectTypeMismatchErrorID, merrors.ExtractErrorID(err))
}

func TestWorldSkeleton(t *testing.T) {
	armature := NewArmatureObject("Armature", newTestSkeleton(t))
	armature.SetRotation(mmath.NewQuaternionFromAxisAngle(mmath.UNIT_X_VEC3, -math.Pi/2))
	armature.Location = mmath.NewVec3(1, 0, 0)

	world := armature.WorldSkeleton()
	spine, ok := world.Get("Spine")
	require.True(t, ok)
	assert.True(t, spine.Tail.NearEquals(mmath.NewVec3(1, 2, 0), 1e-9), spine.Tail.String())

	local, _ := armature.Skeleton.Get("Spine")
	assert.True(t, local.Tail.NearEquals(mmath.NewVec3(0, 0, 2), 1e-12))
}

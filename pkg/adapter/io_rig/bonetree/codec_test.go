// 指示: miu200521358
package bonetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/domain/rig"
)

// unityExport は書き出し側と同じ整形のボーンツリー。
const unityExport = `{
  "name": "Hips"
  , "pos": [0, 0.9, 0]
  , "children": [
  {
    "name": "Spine"
    , "pos": [0, 0.1, 0.01]
  }
, {
    "name": "LeftUpperLeg"
    , "pos": [-0.08, -0.05, 0]
    , "children": [
    {
      "name": "LeftLowerLeg"
      , "pos": [0, -0.4, 0]
    }
    ]
  }
  ]
}
`

func TestDecodeUnityExport(t *testing.T) {
	spec, err := Decode(unityExport)
	require.NoError(t, err)

	assert.Equal(t, "Hips", spec.Name)
	require.NotNil(t, spec.Offset)
	assert.Equal(t, mmath.NewVec3(0, 0.9, 0), *spec.Offset)
	require.Len(t, spec.Children, 2)
	assert.Equal(t, "Spine", spec.Children[0].Name)
	assert.True(t, spec.Children[0].IsLeaf())
	require.Len(t, spec.Children[1].Children, 1)
	assert.Equal(t, mmath.NewVec3(0, -0.4, 0), *spec.Children[1].Children[0].Offset)
}

func TestDecodeRootWithoutPos(t *testing.T) {
	spec, err := Decode("\ufeff" + `{"name":"Hips","children":[{"name":"Spine","pos":[0,0,0.3],"children":[]}]}`)
	require.NoError(t, err)

	assert.Nil(t, spec.Offset)
	require.Len(t, spec.Children, 1)
	assert.Empty(t, spec.Children[0].Children)

	skeleton, err := rig.NewImporter(rig.DefaultImportOptions()).Build(spec)
	require.NoError(t, err)
	assert.Equal(t, 2, skeleton.Len())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: "  \n"},
		{name: "not json", text: "Hips"},
		{name: "short pos", text: `{"name":"Hips","children":[{"name":"Spine","pos":[0,1]}]}`},
		{name: "null child", text: `{"name":"Hips","children":[null]}`},
		{name: "trailing", text: `{"name":"Hips"} {"name":"Spine"}`},
		{name: "pos not numbers", text: `{"name":"Hips","pos":["a","b","c"]}`},
		{name: "invalid utf8", text: "{\"name\":\"Hips\",\"children\":[{\"name\":\"Spi\xffne\",\"pos\":[0,0,0.3]}]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Decode(tt.text)
			require.Error(t, err)
			assert.Nil(t, spec)
			assert.Equal(t, merrors.DecodeErrorID, merrors.ExtractErrorID(err))
		})
	}
}

func TestEncodeRoundTripThroughImporter(t *testing.T) {
	spec, err := Decode(unityExport)
	require.NoError(t, err)
	importer := rig.NewImporter(rig.DefaultImportOptions())
	skeleton, err := importer.Build(spec)
	require.NoError(t, err)

	text, err := Encode(skeleton)
	require.NoError(t, err)

	decoded, err := Decode(text)
	require.NoError(t, err)
	assert.Nil(t, decoded.Offset)
	assert.Equal(t, spec.Count(), decoded.Count())

	rebuilt, err := importer.Build(decoded)
	require.NoError(t, err)
	require.Equal(t, skeleton.Names(), rebuilt.Names())
	for _, bone := range skeleton.Values() {
		other, _ := rebuilt.Get(bone.Name())
		assert.True(t, bone.Head.NearEquals(other.Head, 1e-9), bone.Name())
		assert.True(t, bone.Tail.NearEquals(other.Tail, 1e-9), bone.Name())
		assert.Equal(t, bone.Connected, other.Connected, bone.Name())
	}
}

func TestSkeletonToSpecUsesSourceOffsets(t *testing.T) {
	spec, err := Decode(unityExport)
	require.NoError(t, err)
	skeleton, err := rig.NewImporter(rig.DefaultImportOptions()).Build(spec)
	require.NoError(t, err)

	encoded, err := SkeletonToSpec(skeleton)
	require.NoError(t, err)
	require.Len(t, encoded.Children, 2)
	assert.True(t, encoded.Children[0].Offset.NearEquals(*spec.Children[0].Offset, 1e-12))
	assert.True(t, encoded.Children[1].Offset.NearEquals(*spec.Children[1].Offset, 1e-12))
}

func TestEncodeSpecKeepsRootPos(t *testing.T) {
	spec, err := Decode(`{"name":"Hips","pos":[1,2,3]}`)
	require.NoError(t, err)

	text, err := EncodeSpec(spec)
	require.NoError(t, err)
	assert.Contains(t, text, `"name": "Hips"`)
	assert.Contains(t, text, `"pos"`)
	assert.NotContains(t, text, `"children"`)
}

// 指示: miu200521358
// Package vrm はVRMファイルからHumanoidボーンツリーを取り出す。
package vrm

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
	"github.com/miu200521358/mu_humanoid/pkg/shared/logging"
)

const (
	glbHeaderLength   = 12
	glbChunkHeadSize  = 8
	glbMagic          = 0x46546C67
	glbJSONChunkType  = 0x4E4F534A
	glbMinValidLength = glbHeaderLength + glbChunkHeadSize
)

// VrmVersion はVRM仕様バージョンを表す。
type VrmVersion string

const (
	// VRM_VERSION_0 はVRM0.x。
	VRM_VERSION_0 VrmVersion = "0.x"
	// VRM_VERSION_1 はVRM1.0。
	VRM_VERSION_1 VrmVersion = "1.0"
)

// vrm1ThumbAliases はVRM1の親指名をVRM0相当の名前へ読み替える。
var vrm1ThumbAliases = map[string]string{
	"leftThumbMetacarpal":  "leftThumbProximal",
	"leftThumbProximal":    "leftThumbIntermediate",
	"rightThumbMetacarpal": "rightThumbProximal",
	"rightThumbProximal":   "rightThumbIntermediate",
}

// HumanoidResult はVRMから取り出したボーンツリーを表す。
type HumanoidResult struct {
	Name     string
	Version  VrmVersion
	Spec     *model.BoneSpec
	Warnings []model.RigWarning
}

// HumanoidRepository はVRMのHumanoid定義を読み込む。
type HumanoidRepository struct{}

// NewHumanoidRepository はHumanoidRepositoryを生成する。
func NewHumanoidRepository() *HumanoidRepository {
	return &HumanoidRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *HumanoidRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".vrm")
}

// InferName はパスから表示名を推定する。
func (r *HumanoidRepository) InferName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load はVRMファイルからボーンツリーを読み込む。
func (r *HumanoidRepository) Load(path string) (*HumanoidResult, error) {
	if !r.CanLoad(path) {
		return nil, merrors.NewDecodeError(nil, "VRM以外のファイルは読み込めません: %s", path)
	}
	logVrmInfo("VRM読込開始: file=%s", filepath.Base(path))

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, merrors.NewDecodeError(err, "VRMファイルの読み取りに失敗しました")
	}
	result, err := r.LoadBytes(b)
	if err != nil {
		return nil, err
	}
	result.Name = r.InferName(path)
	logVrmInfo("VRM読込完了: file=%s version=%s bones=%d", filepath.Base(path), result.Version, result.Spec.Count())
	return result, nil
}

// LoadBytes はGLBバイナリからボーンツリーを読み込む。
func (r *HumanoidRepository) LoadBytes(b []byte) (*HumanoidResult, error) {
	jsonChunk, err := parseGLBJSONChunk(b)
	if err != nil {
		return nil, err
	}
	doc := gltfDocument{}
	if err := json.Unmarshal(jsonChunk, &doc); err != nil {
		return nil, merrors.NewDecodeError(err, "VRM JSONチャンクの解析に失敗しました")
	}
	logVrmDebug("VRM JSON解析完了: nodes=%d", len(doc.Nodes))

	parents, err := buildNodeParentIndexes(doc.Nodes)
	if err != nil {
		return nil, err
	}
	worldPositions, err := buildNodeWorldPositions(doc.Nodes, parents)
	if err != nil {
		return nil, err
	}

	version, humanBones, err := parseHumanBones(&doc)
	if err != nil {
		return nil, err
	}
	positions := map[string]mmath.Vec3{}
	for vrmName, nodeIndex := range humanBones {
		unityName, ok := model.VrmToUnityName(vrmName)
		if !ok {
			logVrmDebug("未対応のHumanoidボーンを無視します: %s", vrmName)
			continue
		}
		if nodeIndex < 0 || nodeIndex >= len(doc.Nodes) {
			return nil, merrors.NewDecodeError(nil, "humanBonesのnode indexが不正です: %s=%d", vrmName, nodeIndex)
		}
		positions[unityName] = toUnityPosition(worldPositions[nodeIndex], version)
	}

	builder := &humanoidTreeBuilder{positions: positions}
	spec, err := builder.build(model.UnityHumanoidHierarchy())
	if err != nil {
		return nil, err
	}
	return &HumanoidResult{Version: version, Spec: spec, Warnings: builder.warnings}, nil
}

// toUnityPosition はglTF座標をUnity座標へ変換する。
// VRM0は180度回転した向きで格納されるためZを、VRM1はXを反転する。
func toUnityPosition(v mmath.Vec3, version VrmVersion) mmath.Vec3 {
	if version == VRM_VERSION_0 {
		return mmath.NewVec3(v.X, v.Y, -v.Z)
	}
	return mmath.NewVec3(-v.X, v.Y, v.Z)
}

// humanoidTreeBuilder は固定階層に沿って存在するボーンだけのツリーを組み立てる。
type humanoidTreeBuilder struct {
	positions map[string]mmath.Vec3
	warnings  []model.RigWarning
}

// build はHipsを根とするBoneSpecを生成する。
func (b *humanoidTreeBuilder) build(root *model.HumanoidNode) (*model.BoneSpec, error) {
	hips, ok := b.positions[root.Name]
	if !ok {
		return nil, merrors.NewDecodeError(nil, "Hipsボーンが割り当てられていません")
	}
	spec := model.NewBoneSpec(root.Name, &hips)
	for _, child := range root.Children {
		spec.Children = append(spec.Children, b.collect(child, hips)...)
	}
	return spec, nil
}

// collect はノードを変換する。ボーンが欠けている場合は子孫を最も近い祖先へ付け替える。
func (b *humanoidTreeBuilder) collect(node *model.HumanoidNode, ancestor mmath.Vec3) []*model.BoneSpec {
	position, ok := b.positions[node.Name]
	if !ok {
		b.warnings = append(b.warnings, model.RigWarning{ID: model.RigWarningHumanoidBoneMissing, Target: node.Name})
		collected := make([]*model.BoneSpec, 0)
		for _, child := range node.Children {
			collected = append(collected, b.collect(child, ancestor)...)
		}
		return collected
	}

	offset := position.Subed(ancestor)
	spec := model.NewBoneSpec(node.Name, &offset)
	for _, child := range node.Children {
		spec.Children = append(spec.Children, b.collect(child, position)...)
	}
	return []*model.BoneSpec{spec}
}

// gltfDocument はHumanoid抽出に必要なglTFトップレベル要素を表す。
type gltfDocument struct {
	Nodes      []gltfNode                 `json:"nodes"`
	Extensions map[string]json.RawMessage `json:"extensions"`
}

// gltfNode はglTF node要素を表す。
type gltfNode struct {
	Name        string    `json:"name"`
	Children    []int     `json:"children"`
	Matrix      []float64 `json:"matrix"`
	Translation []float64 `json:"translation"`
	Rotation    []float64 `json:"rotation"`
	Scale       []float64 `json:"scale"`
}

// vrm0Extension はVRM0拡張の必要要素を表す。
type vrm0Extension struct {
	Humanoid struct {
		HumanBones []struct {
			Bone string `json:"bone"`
			Node int    `json:"node"`
		} `json:"humanBones"`
	} `json:"humanoid"`
}

// vrm1Extension はVRM1拡張の必要要素を表す。
type vrm1Extension struct {
	Humanoid struct {
		HumanBones map[string]struct {
			Node *int `json:"node"`
		} `json:"humanBones"`
	} `json:"humanoid"`
}

// parseGLBJSONChunk はGLBバイナリからJSONチャンクを取り出す。
func parseGLBJSONChunk(b []byte) ([]byte, error) {
	if len(b) < glbMinValidLength {
		return nil, merrors.NewDecodeError(nil, "VRMヘッダが不足しています")
	}
	if binary.LittleEndian.Uint32(b[0:4]) != glbMagic {
		return nil, merrors.NewDecodeError(nil, "GLBマジックが不正です")
	}
	if version := binary.LittleEndian.Uint32(b[4:8]); version != 2 {
		return nil, merrors.NewDecodeError(nil, "GLBバージョンが未対応です: %d", version)
	}
	if totalLength := binary.LittleEndian.Uint32(b[8:12]); totalLength > uint32(len(b)) {
		return nil, merrors.NewDecodeError(nil, "GLB全体長が不正です")
	}

	offset := glbHeaderLength
	for offset+glbChunkHeadSize <= len(b) {
		chunkLength := int(binary.LittleEndian.Uint32(b[offset : offset+4]))
		chunkType := binary.LittleEndian.Uint32(b[offset+4 : offset+8])
		chunkStart := offset + glbChunkHeadSize
		chunkEnd := chunkStart + chunkLength
		if chunkLength < 0 || chunkEnd > len(b) {
			return nil, merrors.NewDecodeError(nil, "GLBチャンク長が不正です")
		}
		if chunkType == glbJSONChunkType {
			return b[chunkStart:chunkEnd], nil
		}
		offset = chunkEnd
	}
	return nil, merrors.NewDecodeError(nil, "GLB JSONチャンクが見つかりません")
}

// buildNodeParentIndexes はnode配列から親インデックス配列を生成する。
func buildNodeParentIndexes(nodes []gltfNode) ([]int, error) {
	parentIndexes := make([]int, len(nodes))
	for i := range parentIndexes {
		parentIndexes[i] = -1
	}
	for parentIndex, node := range nodes {
		for _, childIndex := range node.Children {
			if childIndex < 0 || childIndex >= len(nodes) {
				return nil, merrors.NewDecodeError(nil, "node.children のindexが不正です: %d", childIndex)
			}
			if parentIndexes[childIndex] == -1 {
				parentIndexes[childIndex] = parentIndex
			}
		}
	}
	return parentIndexes, nil
}

// buildNodeWorldPositions はnodeのローカル変換からワールド座標を算出する。
func buildNodeWorldPositions(nodes []gltfNode, parents []int) ([]mmath.Vec3, error) {
	worldMats := make([]mgl64.Mat4, len(nodes))
	worldPositions := make([]mmath.Vec3, len(nodes))
	state := make([]int, len(nodes))

	for i := range nodes {
		if err := resolveNodeWorldMatrix(nodes, parents, i, state, worldMats, worldPositions); err != nil {
			return nil, err
		}
	}
	return worldPositions, nil
}

// resolveNodeWorldMatrix はnodeのワールド行列を再帰的に解決する。
func resolveNodeWorldMatrix(
	nodes []gltfNode,
	parents []int,
	nodeIndex int,
	state []int,
	worldMats []mgl64.Mat4,
	worldPositions []mmath.Vec3,
) error {
	if state[nodeIndex] == 2 {
		return nil
	}
	if state[nodeIndex] == 1 {
		return merrors.NewDecodeError(nil, "node親子関係に循環があります: %d", nodeIndex)
	}
	state[nodeIndex] = 1
	local, err := nodeLocalMatrix(nodes[nodeIndex])
	if err != nil {
		return err
	}
	parentIndex := parents[nodeIndex]
	if parentIndex >= 0 {
		if err := resolveNodeWorldMatrix(nodes, parents, parentIndex, state, worldMats, worldPositions); err != nil {
			return err
		}
		worldMats[nodeIndex] = worldMats[parentIndex].Mul4(local)
	} else {
		worldMats[nodeIndex] = local
	}
	worldPositions[nodeIndex] = mmath.NewVec3FromMgl(worldMats[nodeIndex].Col(3).Vec3())
	state[nodeIndex] = 2
	return nil
}

// nodeLocalMatrix はnode要素からローカル行列を生成する。
func nodeLocalMatrix(node gltfNode) (mgl64.Mat4, error) {
	if len(node.Matrix) > 0 {
		if len(node.Matrix) != 16 {
			return mgl64.Ident4(), merrors.NewDecodeError(nil, "node.matrix の要素数が不正です: %d", len(node.Matrix))
		}
		mat := mgl64.Mat4{}
		copy(mat[:], node.Matrix)
		return mat, nil
	}

	translation, err := parseVec3(node.Translation, mmath.ZERO_VEC3, "node.translation")
	if err != nil {
		return mgl64.Ident4(), err
	}
	scale, err := parseVec3(node.Scale, mmath.NewVec3(1, 1, 1), "node.scale")
	if err != nil {
		return mgl64.Ident4(), err
	}
	rotation, err := parseQuaternion(node.Rotation)
	if err != nil {
		return mgl64.Ident4(), err
	}

	return mgl64.Translate3D(translation.X, translation.Y, translation.Z).
		Mul4(rotation.ToMat4()).
		Mul4(mgl64.Scale3D(scale.X, scale.Y, scale.Z)), nil
}

// parseVec3 はスライスをVec3へ変換する。
func parseVec3(values []float64, defaultValue mmath.Vec3, label string) (mmath.Vec3, error) {
	if len(values) == 0 {
		return defaultValue, nil
	}
	v, err := mmath.NewVec3FromSlice(values)
	if err != nil {
		return mmath.ZERO_VEC3, merrors.NewDecodeError(err, "%s の要素数が不正です", label)
	}
	return v, nil
}

// parseQuaternion はスライスをQuaternionへ変換する。
func parseQuaternion(values []float64) (mmath.Quaternion, error) {
	if len(values) == 0 {
		return mmath.NewQuaternion(), nil
	}
	if len(values) != 4 {
		return mmath.NewQuaternion(), merrors.NewDecodeError(nil, "node.rotation の要素数が不正です: %d", len(values))
	}
	return mmath.NewQuaternionByValues(values[0], values[1], values[2], values[3]).Normalized(), nil
}

// parseHumanBones は拡張からVRM0相当のHumanoid名とnode indexの対応を取り出す。
func parseHumanBones(doc *gltfDocument) (VrmVersion, map[string]int, error) {
	version := detectVrmVersion(doc)
	humanBones := map[string]int{}
	switch version {
	case VRM_VERSION_1:
		ext := vrm1Extension{}
		if err := json.Unmarshal(doc.Extensions["VRMC_vrm"], &ext); err != nil {
			return "", nil, merrors.NewDecodeError(err, "VRM1拡張のJSON解析に失敗しました")
		}
		for key, bone := range ext.Humanoid.HumanBones {
			if bone.Node == nil {
				continue
			}
			if alias, ok := vrm1ThumbAliases[key]; ok {
				key = alias
			}
			humanBones[key] = *bone.Node
		}
	case VRM_VERSION_0:
		ext := vrm0Extension{}
		if err := json.Unmarshal(doc.Extensions["VRM"], &ext); err != nil {
			return "", nil, merrors.NewDecodeError(err, "VRM0拡張のJSON解析に失敗しました")
		}
		for _, bone := range ext.Humanoid.HumanBones {
			humanBones[bone.Bone] = bone.Node
		}
	default:
		return "", nil, merrors.NewDecodeError(nil, "VRM拡張が見つかりません")
	}
	return version, humanBones, nil
}

// detectVrmVersion は拡張宣言から優先バージョンを判定する。VRM0/1同時宣言時はVRM1を優先する。
func detectVrmVersion(doc *gltfDocument) VrmVersion {
	if _, ok := doc.Extensions["VRMC_vrm"]; ok {
		return VRM_VERSION_1
	}
	if _, ok := doc.Extensions["VRM"]; ok {
		return VRM_VERSION_0
	}
	return ""
}

// logVrmInfo はVRM読込のINFOログを出力する。
func logVrmInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}

// logVrmDebug はVRM読込のデバッグログを出力する。
func logVrmDebug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Debug(format, params...)
}

// LoadHumanoid はVRMファイルからボーンツリーと警告を読み込む。
func (r *HumanoidRepository) LoadHumanoid(path string) (*model.BoneSpec, []model.RigWarning, error) {
	result, err := r.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return result.Spec, result.Warnings, nil
}

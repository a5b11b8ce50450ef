// 指示: miu200521358
// Package rig はHumanoidボーン階層の構築と座標系変換を提供する。
package rig

import (
	"math"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
	"github.com/miu200521358/mu_humanoid/pkg/shared/logging"
)

const (
	// DefaultLeafLength は末端ボーンの尾の長さ。
	DefaultLeafLength = 0.05
)

// ImportOptions は取り込みツリー構築の規則を表す。
type ImportOptions struct {
	SideRule   model.SideRule
	TipRule    model.TipRule
	LeafLength float64
	Epsilon    float64
}

// DefaultImportOptions は既定の取り込み規則を返す。
func DefaultImportOptions() ImportOptions {
	return ImportOptions{
		SideRule:   model.DefaultSideRule(),
		TipRule:    model.DefaultTipRule(),
		LeafLength: DefaultLeafLength,
		Epsilon:    mmath.NormalizeEpsilon,
	}
}

// Importer は位置のみのボーンツリーからボーン階層を構築する。
type Importer struct {
	options ImportOptions
}

// NewImporter はImporterを生成する。
func NewImporter(options ImportOptions) *Importer {
	if options.LeafLength <= 0 {
		options.LeafLength = DefaultLeafLength
	}
	if options.Epsilon <= 0 {
		options.Epsilon = mmath.NormalizeEpsilon
	}
	return &Importer{options: options}
}

// RemapSourceOffset はZ-up右手系の取り込みオフセットを作業座標系へ変換する。
func RemapSourceOffset(v mmath.Vec3) mmath.Vec3 {
	return mmath.NewVec3(-v.X, -v.Z, v.Y)
}

// UnmapSourceOffset はRemapSourceOffsetの逆変換を返す。
func UnmapSourceOffset(v mmath.Vec3) mmath.Vec3 {
	return mmath.NewVec3(-v.X, v.Z, -v.Y)
}

// importState は1回の構築で共有する状態を表す。
type importState struct {
	skeleton *model.Skeleton
	// claimed は尾を子に確定済みの親ボーン名。
	claimed map[string]struct{}
}

// Build はspecの最上位ノードをルートとしてボーン階層を構築する。
// 失敗時は構築途中のスケルトンを返さない。
func (im *Importer) Build(spec *model.BoneSpec) (*model.Skeleton, error) {
	if spec == nil {
		return nil, merrors.NewInvalidTreeError("", nil, "取り込みツリーが空です")
	}
	if spec.Name == "" {
		return nil, merrors.NewInvalidTreeError("", nil, "ルートボーン名が空です")
	}
	logRigDebug("取り込み構築開始: root=%s nodes=%d", spec.Name, spec.Count())

	state := &importState{
		skeleton: model.NewSkeleton(),
		claimed:  map[string]struct{}{},
	}
	root := model.NewBone(spec.Name, mmath.ZERO_VEC3)
	if err := state.skeleton.Append(root, ""); err != nil {
		return nil, merrors.NewInvalidTreeError(spec.Name, err, "ルートボーンを追加できません")
	}

	floor := root.Head.Z
	for _, child := range spec.Children {
		var err error
		floor, err = im.buildNode(state, root, child, floor)
		if err != nil {
			return nil, err
		}
	}

	state.skeleton.Translate(mmath.NewVec3(0, 0, -floor))
	logRigDebug("取り込み構築完了: bones=%d floor=%.6f", state.skeleton.Len(), floor)
	return state.skeleton, nil
}

// buildNode は1ノードと子孫を構築し、更新後の床高さを返す。
func (im *Importer) buildNode(
	state *importState,
	parent *model.Bone,
	node *model.BoneSpec,
	floor float64,
) (float64, error) {
	if node == nil {
		return floor, merrors.NewInvalidTreeError(parent.Name(), nil, "子ノードが未設定です: parent=%s", parent.Name())
	}
	if node.Name == "" {
		return floor, merrors.NewInvalidTreeError("", nil, "ボーン名が空です: parent=%s", parent.Name())
	}
	if node.Offset == nil {
		return floor, merrors.NewInvalidTreeError(node.Name, nil, "ルート以外のノードに位置がありません: %s", node.Name)
	}

	bone := model.NewBone(node.Name, parent.Head.Added(RemapSourceOffset(*node.Offset)))
	if err := state.skeleton.Append(bone, parent.Name()); err != nil {
		return floor, merrors.NewInvalidTreeError(node.Name, err, "ボーンを追加できません: %s", node.Name)
	}
	if im.connect(state, parent, bone) {
		logRigDebug("接続: %s -> %s", parent.Name(), bone.Name())
	}
	floor = math.Min(floor, bone.Head.Z)

	if node.IsLeaf() {
		tail, err := im.leafTail(parent, bone)
		if err != nil {
			return floor, err
		}
		bone.Tail = tail
		return math.Min(floor, tail.Z), nil
	}

	for _, child := range node.Children {
		var err error
		floor, err = im.buildNode(state, bone, child, floor)
		if err != nil {
			return floor, err
		}
	}
	return floor, nil
}

// connect は左右規則を満たし、親の尾が未確定の場合に子を親の尾へ接続する。
func (im *Importer) connect(state *importState, parent *model.Bone, bone *model.Bone) bool {
	if _, claimed := state.claimed[parent.Name()]; claimed {
		return false
	}
	if !im.options.SideRule.CanConnect(bone.Name(), parent.Name()) {
		return false
	}
	parent.Tail = bone.Head
	bone.Connected = true
	state.claimed[parent.Name()] = struct{}{}
	return true
}

// leafTail は親から子への方向で末端ボーンの尾を求める。
// つま先はZ成分を落として地面と水平にする。
func (im *Importer) leafTail(parent *model.Bone, bone *model.Bone) (mmath.Vec3, error) {
	direction := bone.Head.Subed(parent.Head)
	if im.options.TipRule.IsTip(bone.Name(), im.options.SideRule) {
		direction.Z = 0
	}
	normalized, err := direction.NormalizedWithEpsilon(im.options.Epsilon)
	if err != nil {
		return mmath.ZERO_VEC3, merrors.NewInvalidTreeError(
			bone.Name(), err, "末端ボーンの方向を決定できません: %s", bone.Name())
	}
	return bone.Head.Added(normalized.MuledScalar(im.options.LeafLength)), nil
}

// logRigDebug はリグ構築のデバッグログを出力する。
func logRigDebug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Debug(format, params...)
}

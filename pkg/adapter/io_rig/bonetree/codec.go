// 指示: miu200521358
// Package bonetree は取り込み用ボーンツリーJSONの読み書きを提供する。
package bonetree

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
	"github.com/miu200521358/mu_humanoid/pkg/domain/rig"
)

// node はボーンツリーJSONの1ノードを表す。
type node struct {
	Name     string    `json:"name"`
	Pos      []float64 `json:"pos,omitempty"`
	Children []*node   `json:"children,omitempty"`
}

// Decode はボーンツリーJSONを取り込み用BoneSpecへ変換する。
func Decode(text string) (*model.BoneSpec, error) {
	if !utf8.ValidString(text) {
		return nil, merrors.NewDecodeError(nil, "取り込みテキストがUTF-8ではありません")
	}
	trimmed := strings.TrimSpace(strings.TrimPrefix(text, "\ufeff"))
	if trimmed == "" {
		return nil, merrors.NewDecodeError(nil, "取り込みテキストが空です")
	}
	var root node
	decoder := json.NewDecoder(strings.NewReader(trimmed))
	if err := decoder.Decode(&root); err != nil {
		return nil, merrors.NewDecodeError(err, "ボーンツリーJSONの解析に失敗しました")
	}
	if decoder.More() {
		return nil, merrors.NewDecodeError(nil, "ボーンツリーJSONの後ろに余分なデータがあります")
	}
	return toBoneSpec(&root, "")
}

// toBoneSpec はJSONノードをBoneSpecへ変換する。
func toBoneSpec(n *node, parentName string) (*model.BoneSpec, error) {
	if n == nil {
		return nil, merrors.NewDecodeError(nil, "子ノードがnullです: parent=%s", parentName)
	}
	var offset *mmath.Vec3
	if n.Pos != nil {
		pos, err := mmath.NewVec3FromSlice(n.Pos)
		if err != nil {
			return nil, merrors.NewDecodeError(err, "posが不正です: %s", n.Name)
		}
		offset = &pos
	}
	spec := model.NewBoneSpec(n.Name, offset)
	for _, child := range n.Children {
		childSpec, err := toBoneSpec(child, n.Name)
		if err != nil {
			return nil, err
		}
		spec.Children = append(spec.Children, childSpec)
	}
	return spec, nil
}

// EncodeSpec はBoneSpecをボーンツリーJSONへ変換する。
func EncodeSpec(spec *model.BoneSpec) (string, error) {
	if spec == nil {
		return "", merrors.NewInvalidTreeError("", nil, "ボーンツリーが空です")
	}
	return marshal(fromBoneSpec(spec))
}

// fromBoneSpec はBoneSpecをJSONノードへ変換する。
func fromBoneSpec(spec *model.BoneSpec) *node {
	n := &node{Name: spec.Name}
	if spec.Offset != nil {
		n.Pos = spec.Offset.Slice()
	}
	for _, child := range spec.Children {
		n.Children = append(n.Children, fromBoneSpec(child))
	}
	return n
}

// Encode はボーン階層を取り込み元座標系の相対位置でボーンツリーJSONへ変換する。
func Encode(skeleton *model.Skeleton) (string, error) {
	spec, err := SkeletonToSpec(skeleton)
	if err != nil {
		return "", err
	}
	return EncodeSpec(spec)
}

// SkeletonToSpec はボーン階層を取り込み元座標系の相対位置ツリーへ変換する。
func SkeletonToSpec(skeleton *model.Skeleton) (*model.BoneSpec, error) {
	root := skeleton.Root()
	if root == nil {
		return nil, merrors.NewInvalidTreeError("", nil, "ルートボーンがありません")
	}
	return skeletonNode(skeleton, root), nil
}

// skeletonNode はボーンと子孫をBoneSpecへ変換する。
func skeletonNode(skeleton *model.Skeleton, bone *model.Bone) *model.BoneSpec {
	var offset *mmath.Vec3
	if parent := skeleton.Parent(bone); parent != nil {
		relative := rig.UnmapSourceOffset(bone.Head.Subed(parent.Head))
		offset = &relative
	}
	spec := model.NewBoneSpec(bone.Name(), offset)
	for _, child := range skeleton.Children(bone) {
		spec.Children = append(spec.Children, skeletonNode(skeleton, child))
	}
	return spec
}

// marshal はインデント付きJSONを生成する。
func marshal(n *node) (string, error) {
	buf := new(bytes.Buffer)
	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(n); err != nil {
		return "", merrors.NewWriteError(err, "ボーンツリーJSONの生成に失敗しました")
	}
	return buf.String(), nil
}

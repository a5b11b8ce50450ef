// 指示: miu200521358
package rig

import (
	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
)

const (
	// DefaultHipHeight はテンプレートの腰の高さ。
	DefaultHipHeight = 2.1
)

// Generator は相対オフセットのテンプレートからボーン階層を生成する。
type Generator struct{}

// NewGenerator はGeneratorを生成する。
func NewGenerator() *Generator {
	return &Generator{}
}

// Build はテンプレートの最上位ノードをルートとしてボーン階層を生成する。
// 左右対称化や拡縮は行わない。
func (g *Generator) Build(template *model.BoneSpec) (*model.Skeleton, error) {
	if template == nil {
		return nil, merrors.NewInvalidTreeError("", nil, "テンプレートが空です")
	}
	logRigDebug("テンプレート生成開始: root=%s nodes=%d", template.Name, template.Count())

	skeleton := model.NewSkeleton()
	if err := g.buildNode(skeleton, nil, template); err != nil {
		return nil, err
	}
	logRigDebug("テンプレート生成完了: bones=%d", skeleton.Len())
	return skeleton, nil
}

// buildNode は1ノードと子孫を生成する。
func (g *Generator) buildNode(skeleton *model.Skeleton, parent *model.Bone, node *model.BoneSpec) error {
	if node == nil {
		parentName := ""
		if parent != nil {
			parentName = parent.Name()
		}
		return merrors.NewInvalidTreeError(parentName, nil, "子ノードが未設定です: parent=%s", parentName)
	}
	if node.Name == "" {
		return merrors.NewInvalidTreeError("", nil, "ボーン名が空です")
	}

	head := mmath.ZERO_VEC3
	parentName := ""
	if parent != nil {
		head = parent.Tail
		parentName = parent.Name()
		if node.Offset == nil {
			return merrors.NewInvalidTreeError(node.Name, nil, "ルート以外のノードに尾のオフセットがありません: %s", node.Name)
		}
	}
	if node.HeadOverride != nil {
		head = head.Added(*node.HeadOverride)
	}

	bone := model.NewBone(node.Name, head)
	if node.Offset != nil {
		bone.Tail = head.Added(*node.Offset)
	}
	bone.Connected = parent != nil && node.HeadOverride == nil
	if err := skeleton.Append(bone, parentName); err != nil {
		return merrors.NewInvalidTreeError(node.Name, err, "ボーンを追加できません: %s", node.Name)
	}

	for _, child := range node.Children {
		if err := g.buildNode(skeleton, bone, child); err != nil {
			return err
		}
	}
	return nil
}

// DefaultTemplate は片側(.L)のUnity Humanoidテンプレートを毎回新しく生成する。
func DefaultTemplate(hipHeight float64) *model.BoneSpec {
	if hipHeight <= 0 {
		hipHeight = DefaultHipHeight
	}
	v := model.Vec3Ptr
	n := model.NewBoneSpec

	head := n("Head", v(0, 0, 0.5),
		n("Eye.L", v(0.1, -0.3, 0)),
		n("Jaw", v(0, -0.3, -0.2)),
	)
	hand := n("Hand.L", v(0.1, 0, 0),
		templateDigit("Thumb", v(0.03, -0.03, 0), v(0.03, -0.03, 0), v(0.03, -0.03, 0)),
		templateDigit("Index", v(0.08, -0.03, 0), v(0.06, 0, 0), v(0.06, 0, 0)),
		templateDigit("Middle", v(0.08, -0.01, 0), v(0.06, 0, 0), v(0.06, 0, 0)),
		templateDigit("Ring", v(0.08, 0.01, 0), v(0.06, 0, 0), v(0.06, 0, 0)),
		templateDigit("Little", v(0.07, 0.03, 0), v(0.05, 0, 0), v(0.05, 0, 0)),
	)
	arm := n("Shoulder.L", v(0.3, 0, 0),
		n("UpperArm.L", v(0.5, 0, 0),
			n("LowerArm.L", v(0.5, 0, 0), hand),
		),
	)
	chest := n("Chest", v(0, 0, 0.3),
		n("Neck", v(0, 0, 0.3), head),
		arm,
	)
	leg := n("UpperLeg.L", v(0, 0, -1),
		n("LowerLeg.L", v(0, 0, -1),
			n("Foot.L", v(0, -0.3, -0.2),
				n("Toe.L", v(0, -0.1, 0)),
			),
		),
	).WithHeadOverride(v(0.3, 0, -0.2))

	return n("Hips", v(0, 0, 0.3),
		n("Spine", v(0, 0, 0.3), chest),
		leg,
	).WithHeadOverride(v(0, 0, hipHeight))
}

// templateDigit は3関節の指チェーンを生成する。
func templateDigit(base string, proximal, intermediate, distal *mmath.Vec3) *model.BoneSpec {
	return model.NewBoneSpec(base+"Proximal.L", proximal,
		model.NewBoneSpec(base+"Intermediate.L", intermediate,
			model.NewBoneSpec(base+"Distal.L", distal),
		),
	)
}

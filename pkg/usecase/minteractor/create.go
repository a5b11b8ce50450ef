// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
	"github.com/miu200521358/mu_humanoid/pkg/domain/rig"
	"github.com/miu200521358/mu_humanoid/pkg/infra/scene"
)

// CreateHumanoid はテンプレートからアーマチュアを生成し、左右対称化と拡縮を行ってシーンへ配置する。
func (uc *HumanoidUsecase) CreateHumanoid(s *scene.Scene, request CreateRequest) (*CreateResult, error) {
	skeleton, err := rig.NewGenerator().Build(rig.DefaultTemplate(request.HipHeight))
	if err != nil {
		return nil, err
	}

	warnings := make([]model.RigWarning, 0)
	if request.Symmetrize {
		mirrored, mirrorWarnings, err := rig.Symmetrize(skeleton, uc.sideRule())
		if err != nil {
			return nil, err
		}
		skeleton = mirrored
		warnings = append(warnings, mirrorWarnings...)
	}
	if request.Scale > 0 && request.Scale != 1 {
		skeleton = rig.Scale(skeleton, request.Scale)
	}

	objectName := strings.TrimSpace(request.ObjectName)
	if objectName == "" {
		objectName = CREATED_ARMATURE_NAME
	}
	object := s.Link(scene.NewArmatureObject(objectName, skeleton))
	if err := s.Select(object.Name()); err != nil {
		return nil, err
	}
	logHumanoidInfo("テンプレート生成完了: object=%s bones=%d symmetrize=%t scale=%.3f",
		object.Name(), skeleton.Len(), request.Symmetrize, request.Scale)
	return &CreateResult{Object: object, Warnings: warnings}, nil
}

// sideRule は左右判定規則を返す。未設定の場合は既定規則を使う。
func (uc *HumanoidUsecase) sideRule() model.SideRule {
	rule := uc.importOptions.SideRule
	if len(rule.LeftSuffixes) == 0 && len(rule.RightSuffixes) == 0 &&
		len(rule.LeftPrefixes) == 0 && len(rule.RightPrefixes) == 0 {
		return model.DefaultSideRule()
	}
	return rule
}

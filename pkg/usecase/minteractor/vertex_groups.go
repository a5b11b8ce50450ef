// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
	"github.com/miu200521358/mu_humanoid/pkg/infra/scene"
)

// AddMirrorVertexGroups はメッシュのArmatureモディファイアが指すアーマチュアから、
// 左右接尾辞付きボーン名の空頂点グループをメッシュへ追加する。既存グループは重複させない。
func (uc *HumanoidUsecase) AddMirrorVertexGroups(s *scene.Scene, request VertexGroupRequest) (*VertexGroupResult, error) {
	mesh, err := s.ResolveTarget(request.ObjectName, scene.OBJECT_TYPE_MESH)
	if err != nil {
		return nil, err
	}
	armatureName, ok := mesh.ArmatureTarget()
	if !ok {
		return nil, merrors.NewObjectNotFoundError(mesh.Name() + "/" + scene.ARMATURE_MODIFIER_NAME)
	}
	armature, err := s.GetTyped(armatureName, scene.OBJECT_TYPE_ARMATURE)
	if err != nil {
		return nil, err
	}

	result := &VertexGroupResult{
		Mesh:     mesh,
		Armature: armature,
		Added:    make([]string, 0),
		Warnings: make([]model.RigWarning, 0),
	}
	for _, name := range uc.sideRule().MirrorSuffixNames(armature.Skeleton.Names()) {
		if !mesh.AddVertexGroup(name) {
			result.Warnings = append(result.Warnings, model.RigWarning{ID: model.RigWarningVertexGroupExists, Target: name})
			continue
		}
		result.Added = append(result.Added, name)
	}
	logHumanoidInfo("頂点グループ追加完了: mesh=%s armature=%s added=%d skipped=%d",
		mesh.Name(), armature.Name(), len(result.Added), len(result.Warnings))
	return result, nil
}

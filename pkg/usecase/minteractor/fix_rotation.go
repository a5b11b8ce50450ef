// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
	"github.com/miu200521358/mu_humanoid/pkg/domain/rig"
	"github.com/miu200521358/mu_humanoid/pkg/infra/scene"
)

// FixRotation は対象オブジェクトの形状データを変換先の座標系へ焼き込み、見た目の向きは保つ。
// メッシュの場合はArmatureモディファイアが指すアーマチュアも同じ変換を行う。
func (uc *HumanoidUsecase) FixRotation(s *scene.Scene, request FixRotationRequest) (*FixRotationResult, error) {
	target, err := s.ResolveTarget(request.ObjectName, scene.OBJECT_TYPE_MESH, scene.OBJECT_TYPE_ARMATURE)
	if err != nil {
		return nil, err
	}
	source, destination := request.Source, request.Target
	if source == (rig.Convention{}) {
		source = rig.AUTHORING_CONVENTION
	}
	if destination == (rig.Convention{}) {
		destination = rig.ENGINE_CONVENTION
	}
	rotation, err := rig.ComputeConversion(source.Up, source.Handedness, destination.Up, destination.Handedness)
	if err != nil {
		return nil, err
	}

	objects := []*scene.Object{target}
	warnings := make([]model.RigWarning, 0)
	if target.IsMesh() {
		if armatureName, ok := target.ArmatureTarget(); ok {
			armature, err := s.GetTyped(armatureName, scene.OBJECT_TYPE_ARMATURE)
			if err != nil {
				return nil, err
			}
			objects = append(objects, armature)
		} else {
			warnings = append(warnings, model.RigWarning{ID: model.RigWarningArmatureModifierMissing, Target: target.Name()})
		}
	}

	names := make([]string, 0, len(objects))
	for _, object := range objects {
		names = append(names, object.Name())
	}
	session, err := s.BeginEdit(names...)
	if err != nil {
		return nil, err
	}
	defer session.Restore()

	for _, object := range objects {
		rotation.ApplyToTransform(object)
		logHumanoidDebug("回転焼き込み: object=%s %s -> %s", object.Name(), source, destination)
	}
	logHumanoidInfo("座標系変換完了: objects=%d %s -> %s", len(objects), source, destination)
	return &FixRotationResult{Rotation: rotation, Objects: objects, Warnings: warnings}, nil
}

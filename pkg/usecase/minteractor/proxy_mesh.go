// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/infra/scene"
)

// CreateProxyMesh はアーマチュアのボーン頭尾を頂点とするメッシュを生成し、Armatureモディファイアで結ぶ。
func (uc *HumanoidUsecase) CreateProxyMesh(s *scene.Scene, request ProxyMeshRequest) (*ProxyMeshResult, error) {
	armature, err := s.ResolveTarget(request.ArmatureName, scene.OBJECT_TYPE_ARMATURE)
	if err != nil {
		return nil, err
	}

	vertices := make([]mmath.Vec3, 0, armature.Skeleton.Len()*2)
	for _, bone := range armature.Skeleton.Values() {
		vertices = append(vertices, bone.Head)
		if bone.IsLeaf() {
			vertices = append(vertices, bone.Tail)
		}
	}

	objectName := strings.TrimSpace(request.ObjectName)
	if objectName == "" {
		objectName = armature.Name() + PROXY_MESH_SUFFIX
	}
	mesh := scene.NewMeshObject(objectName, vertices)
	mesh.Location = armature.Location
	mesh.SetRotation(armature.Rotation())
	mesh.LinkArmature(armature.Name())
	mesh = s.Link(mesh)
	if err := s.Select(mesh.Name()); err != nil {
		return nil, err
	}
	logHumanoidInfo("代理メッシュ生成完了: mesh=%s armature=%s vertices=%d", mesh.Name(), armature.Name(), len(vertices))
	return &ProxyMeshResult{Mesh: mesh, Armature: armature}, nil
}

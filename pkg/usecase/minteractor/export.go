// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_humanoid/pkg/adapter/io_rig/bonetree"
	"github.com/miu200521358/mu_humanoid/pkg/domain/rig"
	"github.com/miu200521358/mu_humanoid/pkg/infra/scene"
)

// ExportRig はアーマチュアのワールド座標のボーン階層を指定座標系でファイルへ書き出す。
func (uc *HumanoidUsecase) ExportRig(s *scene.Scene, request ExportRequest) (result *ExportResult, err error) {
	if uc.rigWriter == nil {
		return nil, fmt.Errorf("リグ書き出しリポジトリが設定されていません")
	}
	armature, err := s.ResolveTarget(request.ObjectName, scene.OBJECT_TYPE_ARMATURE)
	if err != nil {
		return nil, err
	}

	convention := request.Convention
	if convention == (rig.Convention{}) {
		convention = rig.AUTHORING_CONVENTION
	}
	rotation, err := rig.ComputeConversion(
		rig.AUTHORING_CONVENTION.Up, rig.AUTHORING_CONVENTION.Handedness,
		convention.Up, convention.Handedness,
	)
	if err != nil {
		return nil, err
	}
	skeleton := rotation.ConvertSkeleton(armature.WorldSkeleton())

	outputPath := strings.TrimSpace(request.OutputPath)
	if outputPath == "" {
		outputPath = BuildDefaultOutputPath(".", armature.Name(), uc.rigWriter.Format())
	}
	if outputPath == "" {
		return nil, fmt.Errorf("保存先パスが未指定です")
	}

	file, err := createOutputFile(outputPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			result = nil
			err = fmt.Errorf("保存先ファイルを閉じられません: %w", closeErr)
		}
	}()
	if err := uc.rigWriter.WriteRig(file, armature.Name(), convention.String(), skeleton); err != nil {
		return nil, err
	}
	logHumanoidInfo("リグ書き出し完了: object=%s path=%s convention=%s", armature.Name(), outputPath, convention)
	return &ExportResult{OutputPath: outputPath, BoneCount: skeleton.Len()}, nil
}

// CopyBoneTree はアーマチュアのボーン階層を取り込み形式のテキストへ変換し、出力先へ書き込む。
func (uc *HumanoidUsecase) CopyBoneTree(s *scene.Scene, request CopyRequest) (*CopyResult, error) {
	armature, err := s.ResolveTarget(request.ObjectName, scene.OBJECT_TYPE_ARMATURE)
	if err != nil {
		return nil, err
	}
	text, err := bonetree.Encode(armature.Skeleton)
	if err != nil {
		return nil, err
	}
	if request.Sink != nil {
		if err := request.Sink.WriteText(text); err != nil {
			return nil, err
		}
		logHumanoidInfo("ボーンツリー書き出し完了: object=%s dest=%s", armature.Name(), request.Sink.Describe())
	}
	return &CopyResult{Text: text, BoneCount: armature.Skeleton.Len()}, nil
}

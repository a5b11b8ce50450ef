// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_humanoid/pkg/adapter/io_rig/bonetree"
	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
	"github.com/miu200521358/mu_humanoid/pkg/domain/rig"
	"github.com/miu200521358/mu_humanoid/pkg/infra/scene"
	"github.com/miu200521358/mu_humanoid/pkg/shared/logging"
)

// PasteHumanoid は取り込みテキストまたはモデルファイルのボーンツリーからアーマチュアを生成し、シーンへ配置する。
// 失敗した場合はシーンを変更しない。
func (uc *HumanoidUsecase) PasteHumanoid(s *scene.Scene, request PasteRequest) (*PasteResult, error) {
	if s == nil {
		return nil, fmt.Errorf("配置先シーンが未設定です")
	}
	spec, warnings, err := uc.readBoneSpec(request)
	if err != nil {
		return nil, err
	}
	reportHumanoidProgress(request.ProgressReporter, HumanoidEvent{
		Type:      HumanoidEventTypeTreeDecoded,
		BoneCount: spec.Count(),
	})

	renamed, renameWarnings, err := model.RenameSpec(spec, request.Rename)
	if err != nil {
		return nil, fmt.Errorf("ボーン名変換に失敗しました: %w", err)
	}
	warnings = append(warnings, renameWarnings...)
	reportHumanoidProgress(request.ProgressReporter, HumanoidEvent{
		Type:      HumanoidEventTypeNamesRenamed,
		BoneCount: renamed.Count(),
	})

	skeleton, err := rig.NewImporter(uc.importOptions).Build(renamed)
	if err != nil {
		return nil, err
	}
	reportHumanoidProgress(request.ProgressReporter, HumanoidEvent{
		Type:      HumanoidEventTypeSkeletonBuilt,
		BoneCount: skeleton.Len(),
	})

	objectName := strings.TrimSpace(request.ObjectName)
	if objectName == "" {
		objectName = PASTED_ARMATURE_NAME
	}
	if request.Replace {
		if err := replaceArmature(s, objectName); err != nil {
			return nil, err
		}
	}
	object := s.Link(scene.NewArmatureObject(objectName, skeleton))
	if err := s.Select(object.Name()); err != nil {
		return nil, err
	}
	reportHumanoidProgress(request.ProgressReporter, HumanoidEvent{
		Type:      HumanoidEventTypeObjectLinked,
		BoneCount: skeleton.Len(),
	})
	for _, warning := range warnings {
		logHumanoidWarn("貼り付け警告: %s target=%s", warning.ID, warning.Target)
	}
	logHumanoidInfo("貼り付け完了: object=%s bones=%d", object.Name(), skeleton.Len())
	return &PasteResult{Object: object, Warnings: warnings}, nil
}

// replaceArmature は同名のアーマチュアがあればシーンから取り除く。
func replaceArmature(s *scene.Scene, objectName string) error {
	if _, err := s.Get(objectName); err != nil {
		return nil
	}
	if _, err := s.GetTyped(objectName, scene.OBJECT_TYPE_ARMATURE); err != nil {
		return err
	}
	logHumanoidDebug("同名アーマチュアを置換: object=%s", objectName)
	return s.Unlink(objectName)
}

// readBoneSpec は要求に応じた入力元からボーンツリーを読み込む。
func (uc *HumanoidUsecase) readBoneSpec(request PasteRequest) (*model.BoneSpec, []model.RigWarning, error) {
	if path := strings.TrimSpace(request.ModelPath); path != "" {
		if uc.humanoidReader == nil {
			return nil, nil, fmt.Errorf("モデル読み込みリポジトリが設定されていません")
		}
		if !uc.humanoidReader.CanLoad(path) {
			return nil, nil, merrors.NewDecodeError(nil, "読み込めないモデル形式です: %s", path)
		}
		spec, warnings, err := uc.humanoidReader.LoadHumanoid(path)
		if err != nil {
			return nil, nil, err
		}
		if spec == nil {
			return nil, nil, merrors.NewInvalidTreeError("", nil, "Humanoidボーンが見つかりません: %s", path)
		}
		reportHumanoidProgress(request.ProgressReporter, HumanoidEvent{Type: HumanoidEventTypeSourceRead})
		return spec, append([]model.RigWarning{}, warnings...), nil
	}

	if request.Source == nil {
		return nil, nil, fmt.Errorf("取り込み元が未設定です")
	}
	text, err := request.Source.ReadText()
	if err != nil {
		return nil, nil, err
	}
	reportHumanoidProgress(request.ProgressReporter, HumanoidEvent{Type: HumanoidEventTypeSourceRead})
	logHumanoidDebug("取り込み元読込: source=%s bytes=%d", request.Source.Describe(), len(text))

	spec, err := bonetree.Decode(text)
	if err != nil {
		return nil, nil, err
	}
	return spec, []model.RigWarning{}, nil
}

// logHumanoidInfo はユースケースの情報ログを出力する。
func logHumanoidInfo(format string, params ...any) {
	logging.DefaultLogger().Info(format, params...)
}

// logHumanoidDebug はユースケースの詳細ログを出力する。
func logHumanoidDebug(format string, params ...any) {
	logging.DefaultLogger().Debug(format, params...)
}

// logHumanoidWarn はユースケースの警告ログを出力する。
func logHumanoidWarn(format string, params ...any) {
	logging.DefaultLogger().Warn(format, params...)
}

// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
	"github.com/miu200521358/mu_humanoid/pkg/domain/rig"
	"github.com/miu200521358/mu_humanoid/pkg/infra/scene"
	"github.com/miu200521358/mu_humanoid/pkg/usecase/port/moutput"
)

const (
	// PASTED_ARMATURE_NAME は貼り付けたアーマチュアのオブジェクト名。
	PASTED_ARMATURE_NAME = "PastedHumanoid"
	// CREATED_ARMATURE_NAME はテンプレートから生成したアーマチュアのオブジェクト名。
	CREATED_ARMATURE_NAME = "ArmatureHumanoid"
	// PROXY_MESH_SUFFIX は代理メッシュ名の接尾辞。
	PROXY_MESH_SUFFIX = "_Mesh"
)

// HumanoidEventType はユースケース進捗イベント種別を表す。
type HumanoidEventType string

const (
	// HumanoidEventTypeSourceRead は入力読み込み完了イベントを表す。
	HumanoidEventTypeSourceRead HumanoidEventType = "source_read"
	// HumanoidEventTypeTreeDecoded はボーンツリー解析完了イベントを表す。
	HumanoidEventTypeTreeDecoded HumanoidEventType = "tree_decoded"
	// HumanoidEventTypeNamesRenamed はボーン名変換完了イベントを表す。
	HumanoidEventTypeNamesRenamed HumanoidEventType = "names_renamed"
	// HumanoidEventTypeSkeletonBuilt はボーン階層構築完了イベントを表す。
	HumanoidEventTypeSkeletonBuilt HumanoidEventType = "skeleton_built"
	// HumanoidEventTypeObjectLinked はシーン配置完了イベントを表す。
	HumanoidEventTypeObjectLinked HumanoidEventType = "object_linked"
)

// HumanoidEvent はユースケース進捗イベントを表す。
type HumanoidEvent struct {
	Type      HumanoidEventType
	BoneCount int
}

// IHumanoidProgressReporter は進捗通知契約を表す。
type IHumanoidProgressReporter interface {
	// ReportHumanoidProgress は進捗を通知する。
	ReportHumanoidProgress(event HumanoidEvent)
}

// PasteRequest は取り込みテキストまたはモデルファイルからの貼り付け要求を表す。
type PasteRequest struct {
	// Source は取り込みテキストの入力元。ModelPathが指定された場合は使わない。
	Source moutput.ITextSource
	// ModelPath はボーンツリーを取り出すモデルファイルのパス。
	ModelPath        string
	Rename           model.RenameMode
	ObjectName       string
	// Replace は同名のアーマチュアを取り除いてから配置する。
	Replace          bool
	ProgressReporter IHumanoidProgressReporter
}

// PasteResult は貼り付け結果を表す。
type PasteResult struct {
	Object   *scene.Object
	Warnings []model.RigWarning
}

// CreateRequest はテンプレート生成要求を表す。
type CreateRequest struct {
	HipHeight  float64
	Scale      float64
	Symmetrize bool
	ObjectName string
}

// CreateResult はテンプレート生成結果を表す。
type CreateResult struct {
	Object   *scene.Object
	Warnings []model.RigWarning
}

// VertexGroupRequest はミラー頂点グループ追加要求を表す。
type VertexGroupRequest struct {
	// ObjectName は対象メッシュ名。空の場合はアクティブオブジェクト。
	ObjectName string
}

// VertexGroupResult はミラー頂点グループ追加結果を表す。
type VertexGroupResult struct {
	Mesh     *scene.Object
	Armature *scene.Object
	Added    []string
	Warnings []model.RigWarning
}

// FixRotationRequest は座標系変換要求を表す。
type FixRotationRequest struct {
	// ObjectName は対象メッシュまたはアーマチュア名。空の場合はアクティブオブジェクト。
	ObjectName string
	Source     rig.Convention
	Target     rig.Convention
}

// FixRotationResult は座標系変換結果を表す。
type FixRotationResult struct {
	Rotation rig.RotationSpec
	Objects  []*scene.Object
	Warnings []model.RigWarning
}

// ProxyMeshRequest は代理メッシュ生成要求を表す。
type ProxyMeshRequest struct {
	// ArmatureName は対象アーマチュア名。空の場合はアクティブオブジェクト。
	ArmatureName string
	ObjectName   string
}

// ProxyMeshResult は代理メッシュ生成結果を表す。
type ProxyMeshResult struct {
	Mesh     *scene.Object
	Armature *scene.Object
}

// ExportRequest はボーン階層の書き出し要求を表す。
type ExportRequest struct {
	// ObjectName は対象アーマチュア名。空の場合はアクティブオブジェクト。
	ObjectName string
	OutputPath string
	Convention rig.Convention
}

// ExportResult は書き出し結果を表す。
type ExportResult struct {
	OutputPath string
	BoneCount  int
}

// CopyRequest はボーンツリーの取り込み形式への書き出し要求を表す。
type CopyRequest struct {
	// ObjectName は対象アーマチュア名。空の場合はアクティブオブジェクト。
	ObjectName string
	Sink       moutput.ITextSink
}

// CopyResult はボーンツリーの書き出し結果を表す。
type CopyResult struct {
	Text      string
	BoneCount int
}

// reportHumanoidProgress は進捗を通知する。
func reportHumanoidProgress(reporter IHumanoidProgressReporter, event HumanoidEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportHumanoidProgress(event)
}

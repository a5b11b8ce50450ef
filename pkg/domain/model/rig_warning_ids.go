// 指示: miu200521358
package model

const (
	// RigWarningUnknownHumanoidName はHumanoid名変換表にないボーン名を変換しなかった警告。
	RigWarningUnknownHumanoidName = "RigWarningUnknownHumanoidName"
	// RigWarningHumanoidBoneMissing はVRMにHumanoidボーンが割り当てられていない警告。
	RigWarningHumanoidBoneMissing = "RigWarningHumanoidBoneMissing"
	// RigWarningVertexGroupExists は同名の頂点グループが既に存在した警告。
	RigWarningVertexGroupExists = "RigWarningVertexGroupExists"
	// RigWarningMirrorBoneExists はミラー先ボーンが既に存在した警告。
	RigWarningMirrorBoneExists = "RigWarningMirrorBoneExists"
	// RigWarningMirrorNameUnresolved は反対側のボーン名を決められなかった警告。
	RigWarningMirrorNameUnresolved = "RigWarningMirrorNameUnresolved"
	// RigWarningArmatureModifierMissing はメッシュにArmatureモディファイアがない警告。
	RigWarningArmatureModifierMissing = "RigWarningArmatureModifierMissing"
)

// RigWarning は処理中に発生した警告1件を表す。
type RigWarning struct {
	ID     string
	Target string
}

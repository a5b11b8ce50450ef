// 指示: miu200521358
package rig

import (
	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
)

// Symmetrize は左側ボーンをX反転して右側へ複製した新しいスケルトンを返す。
// 親が左側ボーンの場合は複製先の親も右側へ付け替える。既に右側ボーンがある場合は複製せず警告を返す。
func Symmetrize(skeleton *model.Skeleton, sideRule model.SideRule) (*model.Skeleton, []model.RigWarning, error) {
	mirrored := skeleton.Copy()
	warnings := make([]model.RigWarning, 0)
	for _, bone := range skeleton.Values() {
		side := sideRule.Detect(bone.Name())
		if side != model.SideLeft {
			continue
		}
		mirrorName := sideRule.MirrorName(bone.Name())
		if sideRule.Detect(mirrorName) != side.Opposite() {
			warnings = append(warnings, model.RigWarning{ID: model.RigWarningMirrorNameUnresolved, Target: bone.Name()})
			continue
		}
		if _, exists := mirrored.Get(mirrorName); exists {
			warnings = append(warnings, model.RigWarning{ID: model.RigWarningMirrorBoneExists, Target: mirrorName})
			continue
		}
		parentName := bone.ParentName()
		if sideRule.Detect(parentName) == model.SideLeft {
			parentName = sideRule.MirrorName(parentName)
		}
		copied := model.NewBone(mirrorName, bone.Head.MirroredX())
		copied.Tail = bone.Tail.MirroredX()
		copied.Connected = bone.Connected
		if err := mirrored.Append(copied, parentName); err != nil {
			return nil, nil, merrors.NewInvalidTreeError(mirrorName, err, "ミラーボーンを追加できません: %s", mirrorName)
		}
	}
	logRigDebug("左右対称化: bones=%d -> %d", skeleton.Len(), mirrored.Len())
	return mirrored, warnings, nil
}

// Scale は原点を中心に全ボーンを拡縮した新しいスケルトンを返す。
func Scale(skeleton *model.Skeleton, factor float64) *model.Skeleton {
	scaled := skeleton.Copy()
	for _, bone := range scaled.Values() {
		bone.Head = bone.Head.MuledScalar(factor)
		bone.Tail = bone.Tail.MuledScalar(factor)
	}
	return scaled
}

// 指示: miu200521358
// Package minteractor はヒューマノイドリグ操作のユースケースを提供する。
package minteractor

import (
	"github.com/miu200521358/mu_humanoid/pkg/domain/rig"
	"github.com/miu200521358/mu_humanoid/pkg/usecase/port/moutput"
)

// HumanoidUsecaseDeps はヒューマノイドユースケースの依存を表す。
type HumanoidUsecaseDeps struct {
	HumanoidReader moutput.IHumanoidReader
	RigWriter      moutput.IRigWriter
	ImportOptions  rig.ImportOptions
}

// HumanoidUsecase はリグの取り込み・生成・変換をまとめたユースケースを表す。
type HumanoidUsecase struct {
	humanoidReader moutput.IHumanoidReader
	rigWriter      moutput.IRigWriter
	importOptions  rig.ImportOptions
}

// NewHumanoidUsecase はヒューマノイドユースケースを生成する。
func NewHumanoidUsecase(deps HumanoidUsecaseDeps) *HumanoidUsecase {
	return &HumanoidUsecase{
		humanoidReader: deps.HumanoidReader,
		rigWriter:      deps.RigWriter,
		importOptions:  deps.ImportOptions,
	}
}

// ImportOptions は取り込み設定を返す。
func (uc *HumanoidUsecase) ImportOptions() rig.ImportOptions {
	return uc.importOptions
}

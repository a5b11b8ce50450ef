// 指示: miu200521358
package moutput

import (
	"io"

	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
)

// ITextSource は取り込みテキストの読み込み契約を表す。
type ITextSource interface {
	ReadText() (string, error)
	Describe() string
}

// ITextSink はテキストの書き込み契約を表す。
type ITextSink interface {
	WriteText(text string) error
	Describe() string
}

// IHumanoidReader はモデルファイルからボーンツリーを読み込む契約を表す。
type IHumanoidReader interface {
	CanLoad(path string) bool
	LoadHumanoid(path string) (*model.BoneSpec, []model.RigWarning, error)
}

// IRigWriter はボーン階層の書き出し契約を表す。
type IRigWriter interface {
	Format() string
	WriteRig(w io.Writer, name string, convention string, skeleton *model.Skeleton) error
}

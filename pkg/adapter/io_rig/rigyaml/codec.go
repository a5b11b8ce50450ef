// 指示: miu200521358
// Package rigyaml はボーン階層のYAML入出力を提供する。
package rigyaml

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
)

// Codec はボーン階層のYAMLコーデックを表す。
type Codec struct{}

// NewCodec はCodecを生成する。
func NewCodec() *Codec {
	return &Codec{}
}

// Format はコーデックの形式名を返す。
func (c *Codec) Format() string {
	return "yaml"
}

// yamlSkeleton はYAML文書の構造を表す。
type yamlSkeleton struct {
	Name       string     `yaml:"name,omitempty"`
	Convention string     `yaml:"convention,omitempty"`
	Bones      []yamlBone `yaml:"bones"`
}

// yamlBone はYAML上の1ボーンを表す。
type yamlBone struct {
	Name      string    `yaml:"name"`
	Parent    string    `yaml:"parent,omitempty"`
	Head      []float64 `yaml:"head,flow"`
	Tail      []float64 `yaml:"tail,flow"`
	Connected bool      `yaml:"connected,omitempty"`
}

// Document はYAML入出力の単位を表す。
type Document struct {
	Name       string
	Convention string
	Skeleton   *model.Skeleton
}

// Export はボーン階層をYAMLで書き出す。
func (c *Codec) Export(doc Document, w io.Writer) error {
	ys := yamlSkeleton{
		Name:       doc.Name,
		Convention: doc.Convention,
		Bones:      make([]yamlBone, 0, doc.Skeleton.Len()),
	}
	for _, bone := range doc.Skeleton.Values() {
		ys.Bones = append(ys.Bones, yamlBone{
			Name:      bone.Name(),
			Parent:    bone.ParentName(),
			Head:      bone.Head.Slice(),
			Tail:      bone.Tail.Slice(),
			Connected: bone.Connected,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&ys); err != nil {
		return merrors.NewWriteError(err, "YAMLの書き出しに失敗しました")
	}
	return nil
}

// WriteRig はボーン階層を名前と座標系付きで書き出す。
func (c *Codec) WriteRig(w io.Writer, name string, convention string, skeleton *model.Skeleton) error {
	return c.Export(Document{Name: name, Convention: convention, Skeleton: skeleton}, w)
}

// Parse はYAMLからボーン階層を読み込む。
func (c *Codec) Parse(r io.Reader) (*Document, error) {
	var ys yamlSkeleton
	if err := yaml.NewDecoder(r).Decode(&ys); err != nil {
		return nil, merrors.NewDecodeError(err, "YAMLの解析に失敗しました")
	}

	skeleton := model.NewSkeleton()
	for _, yb := range ys.Bones {
		head, err := mmath.NewVec3FromSlice(yb.Head)
		if err != nil {
			return nil, merrors.NewDecodeError(err, "headが不正です: %s", yb.Name)
		}
		tail, err := mmath.NewVec3FromSlice(yb.Tail)
		if err != nil {
			return nil, merrors.NewDecodeError(err, "tailが不正です: %s", yb.Name)
		}
		bone := model.NewBone(yb.Name, head)
		bone.Tail = tail
		bone.Connected = yb.Connected
		if err := skeleton.Append(bone, yb.Parent); err != nil {
			return nil, merrors.NewInvalidTreeError(yb.Name, err, "ボーンを追加できません: %s", yb.Name)
		}
	}
	if err := skeleton.Validate(); err != nil {
		return nil, merrors.NewInvalidTreeError("", err, "ボーン階層が不正です")
	}

	return &Document{Name: ys.Name, Convention: ys.Convention, Skeleton: skeleton}, nil
}

// 指示: miu200521358
// Package config はTOML設定ファイルの読み書きを提供する。
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
	"github.com/miu200521358/mu_humanoid/pkg/domain/rig"
)

const (
	// AppDirName は設定とライブラリを置くホーム配下のディレクトリ名。
	AppDirName = ".mu_humanoid"
	// FileName は設定ファイル名。
	FileName = "config.toml"
	// DatabaseFileName はリグライブラリのファイル名。
	DatabaseFileName = "rigs.db"
)

// ImportConfig は取り込み設定を表す。
type ImportConfig struct {
	LeftPrefixes  []string         `toml:"left_prefixes"`
	RightPrefixes []string         `toml:"right_prefixes"`
	LeftSuffixes  []string         `toml:"left_suffixes"`
	RightSuffixes []string         `toml:"right_suffixes"`
	StrictSides   bool             `toml:"strict_sides"`
	TipNames      []string         `toml:"tip_names"`
	LeafLength    float64          `toml:"leaf_length"`
	Epsilon       float64          `toml:"epsilon"`
	Rename        model.RenameMode `toml:"rename"`
}

// TemplateConfig はテンプレート生成設定を表す。
type TemplateConfig struct {
	HipHeight  float64 `toml:"hip_height"`
	Scale      float64 `toml:"scale"`
	Symmetrize bool    `toml:"symmetrize"`
}

// ConventionConfig は座標系変換設定を表す。
type ConventionConfig struct {
	Source string `toml:"source"`
	Target string `toml:"target"`
}

// StorageConfig はリグライブラリ設定を表す。
type StorageConfig struct {
	Path string `toml:"path"`
}

// Config は設定全体を表す。
type Config struct {
	Import     ImportConfig     `toml:"import"`
	Template   TemplateConfig   `toml:"template"`
	Convention ConventionConfig `toml:"convention"`
	Storage    StorageConfig    `toml:"storage"`
}

// Default は既定設定を返す。
func Default() *Config {
	sideRule := model.DefaultSideRule()
	return &Config{
		Import: ImportConfig{
			LeftPrefixes:  sideRule.LeftPrefixes,
			RightPrefixes: sideRule.RightPrefixes,
			LeftSuffixes:  sideRule.LeftSuffixes,
			RightSuffixes: sideRule.RightSuffixes,
			TipNames:      model.DefaultTipRule().BaseNames,
			LeafLength:    rig.DefaultLeafLength,
			Epsilon:       mmath.NormalizeEpsilon,
			Rename:        model.RENAME_NONE,
		},
		Template: TemplateConfig{
			HipHeight:  rig.DefaultHipHeight,
			Scale:      0.5,
			Symmetrize: true,
		},
		Convention: ConventionConfig{
			Source: "z-right",
			Target: "y-left",
		},
	}
}

// DefaultDir はホーム配下の既定ディレクトリを返す。
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, AppDirName), nil
}

// DefaultPath は既定の設定ファイルパスを返す。
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load は設定ファイルを読み込む。ファイルがない場合は既定設定を返す。
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, merrors.NewConfigError("", err, "ホームディレクトリを取得できません")
		}
		path = defaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, merrors.NewConfigError("", err, "設定ファイルを読み込めません: %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, merrors.NewConfigError("", err, "設定ファイルの解析に失敗しました: %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save は設定ファイルを書き出す。
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return merrors.NewConfigError("", err, "設定の書き出しに失敗しました")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return merrors.NewConfigError("", err, "設定ディレクトリを作成できません")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return merrors.NewConfigError("", err, "設定ファイルを書き込めません: %s", path)
	}
	return nil
}

// Validate は設定値を検証する。
func (c *Config) Validate() error {
	if c.Import.LeafLength <= 0 {
		return merrors.NewConfigError("import.leaf_length", nil, "末端ボーン長は正の値にしてください: %v", c.Import.LeafLength)
	}
	if c.Import.Epsilon <= 0 {
		return merrors.NewConfigError("import.epsilon", nil, "正規化閾値は正の値にしてください: %v", c.Import.Epsilon)
	}
	if !c.Import.Rename.IsValid() {
		return merrors.NewConfigError("import.rename", nil, "名前変換方式が不正です: %s", c.Import.Rename)
	}
	if c.Import.Rename == "" {
		c.Import.Rename = model.RENAME_NONE
	}
	if c.Template.HipHeight <= 0 {
		return merrors.NewConfigError("template.hip_height", nil, "腰の高さは正の値にしてください: %v", c.Template.HipHeight)
	}
	if c.Template.Scale <= 0 {
		return merrors.NewConfigError("template.scale", nil, "拡縮率は正の値にしてください: %v", c.Template.Scale)
	}
	if _, err := rig.ParseConvention(c.Convention.Source); err != nil {
		return merrors.NewConfigError("convention.source", err, "変換元座標系が不正です")
	}
	if _, err := rig.ParseConvention(c.Convention.Target); err != nil {
		return merrors.NewConfigError("convention.target", err, "変換先座標系が不正です")
	}
	return nil
}

// ImportOptions は取り込み設定からImportOptionsを生成する。
func (c *Config) ImportOptions() rig.ImportOptions {
	return rig.ImportOptions{
		SideRule: model.SideRule{
			LeftPrefixes:  append([]string{}, c.Import.LeftPrefixes...),
			RightPrefixes: append([]string{}, c.Import.RightPrefixes...),
			LeftSuffixes:  append([]string{}, c.Import.LeftSuffixes...),
			RightSuffixes: append([]string{}, c.Import.RightSuffixes...),
			Strict:        c.Import.StrictSides,
		},
		TipRule:    model.TipRule{BaseNames: append([]string{}, c.Import.TipNames...)},
		LeafLength: c.Import.LeafLength,
		Epsilon:    c.Import.Epsilon,
	}
}

// Conventions は変換元と変換先の座標系を返す。
func (c *Config) Conventions() (rig.Convention, rig.Convention, error) {
	source, err := rig.ParseConvention(c.Convention.Source)
	if err != nil {
		return rig.Convention{}, rig.Convention{}, merrors.NewConfigError("convention.source", err, "変換元座標系が不正です")
	}
	target, err := rig.ParseConvention(c.Convention.Target)
	if err != nil {
		return rig.Convention{}, rig.Convention{}, merrors.NewConfigError("convention.target", err, "変換先座標系が不正です")
	}
	return source, target, nil
}

// DatabasePath はリグライブラリのパスを返す。
func (c *Config) DatabasePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", merrors.NewConfigError("storage.path", err, "ホームディレクトリを取得できません")
	}
	return filepath.Join(dir, DatabaseFileName), nil
}

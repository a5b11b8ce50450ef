// 指示: miu200521358
package minteractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	outputDirFileMode = 0o755
)

var nowFunc = time.Now

// BuildDefaultOutputPath は出力ディレクトリとオブジェクト名から既定の書き出しパスを生成する。
func BuildDefaultOutputPath(dir string, objectName string, format string) string {
	return buildDefaultOutputPathAt(dir, objectName, format, nowFunc())
}

// buildDefaultOutputPathAt は指定時刻で既定の書き出しパスを生成する。
func buildDefaultOutputPathAt(dir string, objectName string, format string, now time.Time) string {
	base := sanitizeFileBase(objectName)
	if base == "" {
		return ""
	}
	stamp := now.Format("20060102150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", base, stamp, strings.TrimPrefix(format, ".")))
}

// sanitizeFileBase はファイル名に使えない文字を置き換える。
func sanitizeFileBase(name string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_",
	)
	return strings.TrimSpace(replacer.Replace(name))
}

// createOutputFile は出力ディレクトリを作成して書き出し先ファイルを開く。
func createOutputFile(outputPath string) (*os.File, error) {
	outputDir := filepath.Dir(outputPath)
	if outputDir == "" {
		return nil, fmt.Errorf("保存先ディレクトリの解決に失敗しました")
	}
	if err := os.MkdirAll(outputDir, outputDirFileMode); err != nil {
		return nil, fmt.Errorf("保存先ディレクトリの作成に失敗しました: %w", err)
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("保存先ファイルを作成できません: %w", err)
	}
	return file, nil
}

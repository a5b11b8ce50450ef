// 指示: miu200521358
// Package textsource は取り込みテキストの入出力先を提供する。
package textsource

import (
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
)

const (
	// CLIPBOARD_SOURCE はクリップボードを表す入力指定。
	CLIPBOARD_SOURCE = "clipboard"
	// STDIN_SOURCE は標準入力を表す入力指定。
	STDIN_SOURCE = "-"
)

// ITextSource はテキスト入力元を表す。
type ITextSource interface {
	ReadText() (string, error)
	Describe() string
}

// ITextSink はテキスト出力先を表す。
type ITextSink interface {
	WriteText(text string) error
	Describe() string
}

// ClipboardSource はシステムクリップボードの入出力を表す。
type ClipboardSource struct {
	readAll  func() (string, error)
	writeAll func(text string) error
	system   bool
}

// NewClipboardSource はシステムクリップボードを使う入出力を生成する。
func NewClipboardSource() *ClipboardSource {
	return &ClipboardSource{
		readAll:  clipboard.ReadAll,
		writeAll: clipboard.WriteAll,
		system:   true,
	}
}

// ReadText はクリップボードの文字列を読み込む。
func (c *ClipboardSource) ReadText() (string, error) {
	if c.system && clipboard.Unsupported {
		return "", merrors.NewDecodeError(nil, "この環境ではクリップボードを利用できません")
	}
	text, err := c.readAll()
	if err != nil {
		return "", merrors.NewDecodeError(err, "クリップボードの読み込みに失敗しました")
	}
	return text, nil
}

// WriteText はクリップボードへ文字列を書き込む。
func (c *ClipboardSource) WriteText(text string) error {
	if c.system && clipboard.Unsupported {
		return merrors.NewWriteError(nil, "この環境ではクリップボードを利用できません")
	}
	if err := c.writeAll(text); err != nil {
		return merrors.NewWriteError(err, "クリップボードへの書き込みに失敗しました")
	}
	return nil
}

// Describe は入出力先の説明を返す。
func (c *ClipboardSource) Describe() string {
	return CLIPBOARD_SOURCE
}

// FileSource はファイルの入出力を表す。
type FileSource struct {
	path string
}

// NewFileSource はファイル入出力を生成する。
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// ReadText はファイルの文字列を読み込む。
func (f *FileSource) ReadText() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", merrors.NewDecodeError(err, "ファイルを読み込めません: %s", f.path)
	}
	return string(data), nil
}

// WriteText はファイルへ文字列を書き込む。
func (f *FileSource) WriteText(text string) error {
	if err := os.WriteFile(f.path, []byte(text), 0o644); err != nil {
		return merrors.NewWriteError(err, "ファイルを書き込めません: %s", f.path)
	}
	return nil
}

// Describe は入出力先の説明を返す。
func (f *FileSource) Describe() string {
	return f.path
}

// Path はファイルパスを返す。
func (f *FileSource) Path() string {
	return f.path
}

// StreamSource は標準入出力などのストリームを表す。
type StreamSource struct {
	reader io.Reader
	writer io.Writer
}

// NewStreamSource はストリーム入出力を生成する。
func NewStreamSource(reader io.Reader, writer io.Writer) *StreamSource {
	return &StreamSource{reader: reader, writer: writer}
}

// ReadText はストリームの残りをすべて読み込む。
func (s *StreamSource) ReadText() (string, error) {
	if s.reader == nil {
		return "", merrors.NewDecodeError(nil, "入力ストリームが未設定です")
	}
	data, err := io.ReadAll(s.reader)
	if err != nil {
		return "", merrors.NewDecodeError(err, "入力ストリームの読み込みに失敗しました")
	}
	return string(data), nil
}

// WriteText はストリームへ文字列を書き込む。
func (s *StreamSource) WriteText(text string) error {
	if s.writer == nil {
		return merrors.NewWriteError(nil, "出力ストリームが未設定です")
	}
	if _, err := io.WriteString(s.writer, text); err != nil {
		return merrors.NewWriteError(err, "出力ストリームへの書き込みに失敗しました")
	}
	return nil
}

// Describe は入出力先の説明を返す。
func (s *StreamSource) Describe() string {
	return "stdio"
}

// Resolve は入力指定から入力元を決定する。空文字とclipboardはクリップボード、"-"はストリームを表す。
func Resolve(name string, stdin io.Reader) ITextSource {
	switch strings.TrimSpace(name) {
	case "", CLIPBOARD_SOURCE:
		return NewClipboardSource()
	case STDIN_SOURCE:
		return NewStreamSource(stdin, nil)
	default:
		return NewFileSource(name)
	}
}

// ResolveSink は出力指定から出力先を決定する。空文字とclipboardはクリップボード、"-"はストリームを表す。
func ResolveSink(name string, stdout io.Writer) ITextSink {
	switch strings.TrimSpace(name) {
	case "", CLIPBOARD_SOURCE:
		return NewClipboardSource()
	case STDIN_SOURCE:
		return NewStreamSource(nil, stdout)
	default:
		return NewFileSource(name)
	}
}

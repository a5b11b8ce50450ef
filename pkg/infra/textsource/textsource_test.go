// 指示: miu200521358
package textsource

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
)

func TestClipboardSourceUsesInjectedFunctions(t *testing.T) {
	stored := ""
	source := &ClipboardSource{
		readAll:  func() (string, error) { return stored, nil },
		writeAll: func(text string) error { stored = text; return nil },
	}

	require.NoError(t, source.WriteText(`{"name":"Hips"}`))
	text, err := source.ReadText()
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Hips"}`, text)
	assert.Equal(t, CLIPBOARD_SOURCE, source.Describe())
}

func TestClipboardSourceWrapsErrors(t *testing.T) {
	source := &ClipboardSource{
		readAll:  func() (string, error) { return "", errors.New("xsel not found") },
		writeAll: func(string) error { return errors.New("xsel not found") },
	}

	_, err := source.ReadText()
	assert.Equal(t, merrors.DecodeErrorID, merrors.ExtractErrorID(err))
	assert.Equal(t, merrors.WriteFailedErrorID, merrors.ExtractErrorID(source.WriteText("x")))
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	source := NewFileSource(path)

	_, err := source.ReadText()
	assert.Equal(t, merrors.DecodeErrorID, merrors.ExtractErrorID(err))

	require.NoError(t, source.WriteText("hello"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	text, err := source.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, path, source.Describe())

	dirSink := NewFileSource(t.TempDir())
	assert.Equal(t, merrors.WriteFailedErrorID, merrors.ExtractErrorID(dirSink.WriteText("hello")))
}

func TestStreamSource(t *testing.T) {
	var out bytes.Buffer
	source := NewStreamSource(strings.NewReader("input"), &out)

	text, err := source.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "input", text)

	require.NoError(t, source.WriteText("output"))
	assert.Equal(t, "output", out.String())

	_, err = NewStreamSource(nil, nil).ReadText()
	assert.Error(t, err)
	assert.Equal(t, merrors.WriteFailedErrorID, merrors.ExtractErrorID(NewStreamSource(nil, nil).WriteText("x")))
	assert.Equal(t, merrors.WriteFailedErrorID, merrors.ExtractErrorID(NewStreamSource(nil, failingWriter{}).WriteText("x")))
}

func TestResolve(t *testing.T) {
	assert.IsType(t, &ClipboardSource{}, Resolve("", nil))
	assert.IsType(t, &ClipboardSource{}, Resolve("clipboard", nil))
	assert.IsType(t, &StreamSource{}, Resolve("-", strings.NewReader("")))
	assert.IsType(t, &FileSource{}, Resolve("tree.json", nil))

	assert.IsType(t, &ClipboardSource{}, ResolveSink("", nil))
	assert.IsType(t, &StreamSource{}, ResolveSink("-", &bytes.Buffer{}))
	assert.IsType(t, &FileSource{}, ResolveSink("out.json", nil))
}

// failingWriter は常に書き込みに失敗する。
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

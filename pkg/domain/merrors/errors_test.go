// 指示: miu200521358
package merrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIDsAreNonEmptyAndUnique(t *testing.T) {
	ids := []string{
		InvalidTreeErrorID,
		DegenerateVectorErrorID,
		DecodeErrorID,
		WriteFailedErrorID,
		UnsupportedConventionErrorID,
		ObjectNotFoundErrorID,
		ObjectTypeMismatchErrorID,
		ConfigInvalidErrorID,
	}

	seen := map[string]struct{}{}
	for _, id := range ids {
		require.NotEmpty(t, id)
		_, exists := seen[id]
		require.False(t, exists, "error id should be unique: %s", id)
		seen[id] = struct{}{}
	}
}

func TestExtractErrorIDThroughWrapping(t *testing.T) {
	degenerate := NewDegenerateVectorError(0)
	invalid := NewInvalidTreeError("Toe.L", degenerate, "末端ボーンの方向を決定できません: %s", "Toe.L")
	wrapped := fmt.Errorf("貼り付けに失敗しました: %w", invalid)

	assert.Equal(t, InvalidTreeErrorID, ExtractErrorID(wrapped))

	var treeErr *InvalidTreeError
	require.True(t, errors.As(wrapped, &treeErr))
	assert.Equal(t, "Toe.L", treeErr.BoneName)

	var vecErr *DegenerateVectorError
	assert.True(t, errors.As(wrapped, &vecErr))
	assert.Contains(t, wrapped.Error(), "正規化できません")
}

func TestExtractErrorIDReturnsEmptyForPlainError(t *testing.T) {
	assert.Equal(t, "", ExtractErrorID(errors.New("plain")))
	assert.Equal(t, "", ExtractErrorID(nil))
}

func TestHostErrorIDs(t *testing.T) {
	assert.Equal(t, ObjectNotFoundErrorID, ExtractErrorID(NewObjectNotFoundError("Cube")))
	assert.Equal(t, ObjectTypeMismatchErrorID, ExtractErrorID(NewObjectTypeMismatchError("Cube", "MESH", "ARMATURE")))
	assert.Equal(t, UnsupportedConventionErrorID, ExtractErrorID(NewUnsupportedConventionError("z-up", "x-up")))
	assert.Equal(t, DecodeErrorID, ExtractErrorID(NewDecodeError(nil, "bad")))
	assert.Equal(t, WriteFailedErrorID, ExtractErrorID(NewWriteError(errors.New("disk full"), "bad")))
	assert.Equal(t, ConfigInvalidErrorID, ExtractErrorID(NewConfigError("import.leaf_length", nil, "bad")))
}

// 指示: miu200521358
package minteractor

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultOutputPathAt(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 30, 5, 0, time.UTC)

	testCases := []struct {
		name       string
		objectName string
		format     string
		want       string
	}{
		{name: "plain", objectName: "ArmatureHumanoid", format: "yaml", want: filepath.Join("out", "ArmatureHumanoid_20261019083005.yaml")},
		{name: "dotted format", objectName: "PastedHumanoid.001", format: ".json", want: filepath.Join("out", "PastedHumanoid.001_20261019083005.json")},
		{name: "separator", objectName: "rig/left", format: "yaml", want: filepath.Join("out", "rig_left_20261019083005.yaml")},
		{name: "blank", objectName: "  ", format: "yaml", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, buildDefaultOutputPathAt("out", tc.objectName, tc.format, now))
		})
	}
}

func TestCreateOutputFileMakesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "rig.yaml")
	file, err := createOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, file.Close())
	assert.FileExists(t, path)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workspace

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/png2pdf/pkg/types"
)

var namePattern = regexp.MustCompile(`^tmp_\d{8}_\d{6}_\d+$`)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		pid  int
		want string
	}{
		{
			name: "zero padded fields",
			now:  time.Date(2021, time.March, 5, 7, 8, 9, 0, time.Local),
			pid:  42,
			want: "tmp_20210305_070809_42",
		},
		{
			name: "two digit fields",
			now:  time.Date(2026, time.December, 31, 23, 59, 58, 999, time.Local),
			pid:  123456,
			want: "tmp_20261231_235958_123456",
		},
		{
			name: "four digit year padding",
			now:  time.Date(999, time.January, 1, 0, 0, 0, 0, time.UTC),
			pid:  1,
			want: "tmp_09990101_000000_1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Name(tt.now, tt.pid)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, namePattern, got)
		})
	}
}

func TestCreate(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "root")
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)

	dir, err := Create(root, now, os.Getpid())
	require.NoError(t, err)
	assert.Equal(t, root, filepath.Dir(dir))
	assert.Regexp(t, namePattern, filepath.Base(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	again, err := Create(root, now, os.Getpid())
	require.NoError(t, err, "existing workspace must be reused")
	assert.Equal(t, dir, again)
}

func TestCreate_RootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))

	_, err := Create(root, time.Now(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating workspace")
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := &types.Manifest{
		PID:       7,
		Workspace: dir,
		Inputs:    []string{"a.png", "b.txt"},
		Artifacts: []types.Artifact{{Source: "a.png", TIFF: dir + "/a.tiff", PDF: dir + "/a.pdf"}},
		Output:    "test.pdf",
		Merged:    true,
		Commands: []types.CommandRecord{
			{Args: []string{"convert", "a.png", dir + "/a.tiff"}},
			{Args: []string{"tiff2pdf", "-o", dir + "/a.pdf", dir + "/a.tiff"}, ExitCode: 1},
		},
	}

	path, err := WriteManifest(m)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ManifestFile), path)

	got, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, m.Artifacts, got.Artifacts)
	assert.Equal(t, m.Commands, got.Commands)
	assert.Equal(t, 1, got.Failures())
}

func TestReadManifest_Missing(t *testing.T) {
	_, err := ReadManifest(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

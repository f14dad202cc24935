package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pders01/vernomic/internal/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIdentifier = "model_25_Indigo_Duck_1428"

func testMetadata() models.Metadata {
	return models.Metadata{
		Identifier:         testIdentifier,
		FileName:           testIdentifier + ".h5",
		RootName:           "model",
		FileExtension:      "h5",
		Timestamp:          "2025-07-22T14:28:00Z",
		Year:               2025,
		Month:              7,
		Day:                22,
		Hour:               14,
		Minute:             28,
		DayOfYear:          203,
		CycleNumber:        8,
		DayOfCycle:         7,
		CycleName:          "Indigo",
		DayName:            "Duck",
		YearShort:          "25",
		DayLabel:           "Indigo_Duck",
		VersionTime:        "1428",
		DivideChar:         "_",
		DisplayVersionTime: true,
	}
}

func TestResolvePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("existing", 0755))
	require.NoError(t, afero.WriteFile(fs, "plain", []byte("x"), 0644))

	tests := []struct {
		name string
		dest string
		want string
	}{
		{"empty destination", "", testIdentifier + ".yaml"},
		{"trailing separator", "metadata/", filepath.Join("metadata", testIdentifier+".yaml")},
		{"nested trailing separator", "a/b/c/", filepath.Join("a/b/c", testIdentifier+".yaml")},
		{"existing directory", "existing", filepath.Join("existing", testIdentifier+".yaml")},
		{"explicit file", "out/run", "out/run.yaml"},
		{"explicit yaml file", "out/run.yaml", "out/run.yaml"},
		{"explicit yml file", "out/run.yml", "out/run.yml"},
		{"existing plain file", "plain", "plain.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(fs, tt.dest, testIdentifier)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteAndRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("metadata", "nested", testIdentifier+".yaml")

	meta := testMetadata()
	require.NoError(t, Write(fs, path, meta))

	got, err := Read(fs, path)
	require.NoError(t, err)
	if diff := cmp.Diff(meta, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	entries, err := afero.ReadDir(fs, filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteKeyOrder(t *testing.T) {
	data, err := Marshal(testMetadata())
	require.NoError(t, err)

	var keys []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		key, _, found := strings.Cut(line, ":")
		require.True(t, found, line)
		keys = append(keys, key)
	}

	want := []string{
		"identifier", "file_name", "root_name", "file_extension",
		"timestamp", "year", "month", "day", "hour", "minute", "second",
		"day_of_year", "cycle_number", "day_of_cycle", "cycle_name", "day_name",
		"year_short", "day_label", "version_time",
		"divide_char", "display_version_time",
	}
	assert.Equal(t, want, keys)
}

func TestWriteOmitsAbsentOptionalFields(t *testing.T) {
	meta := testMetadata()
	meta.FileExtension = ""
	meta.FileName = meta.Identifier

	data, err := Marshal(meta)
	require.NoError(t, err)
	doc := string(data)

	assert.NotContains(t, doc, "suffix_name")
	assert.NotContains(t, doc, "file_extension")
	assert.NotContains(t, doc, "description")
	assert.NotContains(t, doc, "null")

	meta.Description = "trained on the full set"
	meta.SuffixName = "v1"
	data, err = Marshal(meta)
	require.NoError(t, err)
	assert.Contains(t, string(data), "description: trained on the full set")
	assert.Contains(t, string(data), "suffix_name: v1")
}

func TestWriteKeepsStringTypes(t *testing.T) {
	meta := testMetadata()
	meta.YearShort = "05"
	meta.VersionTime = "0007"

	fs := afero.NewMemMapFs()
	require.NoError(t, Write(fs, "m.yaml", meta))

	got, err := Read(fs, "m.yaml")
	require.NoError(t, err)
	assert.Equal(t, "05", got.YearShort)
	assert.Equal(t, "0007", got.VersionTime)
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "out/run.yaml", []byte("stale: true\n"), 0644))

	meta := testMetadata()
	require.NoError(t, Write(fs, "out/run.yaml", meta))

	got, err := Read(fs, "out/run.yaml")
	require.NoError(t, err)
	assert.Equal(t, meta.Identifier, got.Identifier)
}

func TestWriteOnDisk(t *testing.T) {
	dir := t.TempDir()
	fs := afero.NewOsFs()
	path := filepath.Join(dir, "deep", "tree", "run.yaml")

	require.NoError(t, Write(fs, path, testMetadata()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFailures(t *testing.T) {
	t.Run("read only filesystem", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
		err := Write(fs, "metadata/run.yaml", testMetadata())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIO)

		var exportErr *Error
		require.True(t, errors.As(err, &exportErr))
		assert.NotEmpty(t, exportErr.Op)
	})

	t.Run("parent is a file", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		err := Write(afero.NewOsFs(), filepath.Join(blocker, "run.yaml"), testMetadata())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIO)
	})
}

func TestReadFailures(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Read(fs, "missing.yaml")
	assert.ErrorIs(t, err, ErrIO)

	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte("identifier: [unterminated\n"), 0644))
	_, err = Read(fs, "bad.yaml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIO)

	require.NoError(t, afero.WriteFile(fs, "unknown.yaml", []byte("identifier: x\nbogus: 1\n"), 0644))
	_, err = Read(fs, "unknown.yaml")
	require.Error(t, err)
}

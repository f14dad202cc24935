package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pders01/vernomic/internal/models"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrIO marks filesystem failures while resolving, writing or reading a document
var ErrIO = errors.New("io error")

// Error records a failed filesystem operation on a metadata document
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes every *Error match ErrIO
func (e *Error) Is(target error) bool { return target == ErrIO }

func ioError(op, path string, err error) error {
	return &Error{Op: op, Path: path, Err: err}
}

// ResolvePath turns an export destination into the document path.
//
// An empty destination, one ending in a path separator, or one naming an
// existing directory receives <identifier>.yaml inside it. Anything else is
// an explicit file path and gets .yaml appended unless it already ends in
// .yaml or .yml.
func ResolvePath(fs afero.Fs, dest, identifier string) (string, error) {
	if dest == "" {
		return models.MetadataFileName(identifier), nil
	}

	if endsWithSeparator(dest) {
		return models.MetadataPath(dest, identifier), nil
	}

	isDir, err := afero.IsDir(fs, dest)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", ioError("stat", dest, err)
	}
	if isDir {
		return models.MetadataPath(dest, identifier), nil
	}

	return models.WithDocumentExt(dest), nil
}

func endsWithSeparator(path string) bool {
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator))
}

// Write serializes meta to path, creating parent directories as needed.
// An existing file at path is replaced. The document is written to a
// temporary file in the same directory and renamed into place.
func Write(fs afero.Fs, path string, meta models.Metadata) error {
	data, err := Marshal(meta)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return ioError("create directory", dir, err)
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return ioError("create temporary file in", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(tmpPath)
		return ioError("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpPath)
		return ioError("close", tmpPath, err)
	}
	if err := fs.Chmod(tmpPath, 0644); err != nil {
		fs.Remove(tmpPath)
		return ioError("chmod", tmpPath, err)
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		fs.Remove(tmpPath)
		return ioError("write metadata", path, err)
	}

	return nil
}

// Marshal encodes meta as a YAML document
func Marshal(meta models.Metadata) ([]byte, error) {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return data, nil
}

// Read parses a previously exported document
func Read(fs afero.Fs, path string) (models.Metadata, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return models.Metadata{}, ioError("read", path, err)
	}

	var meta models.Metadata
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&meta); err != nil {
		return models.Metadata{}, fmt.Errorf("failed to parse metadata %s: %w", path, err)
	}

	return meta, nil
}

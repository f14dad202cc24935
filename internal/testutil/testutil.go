package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// TempWorkspace is a temporary working directory for command tests
type TempWorkspace struct {
	Path string
	T    *testing.T

	oldWd string
}

// NewTempWorkspace creates a temporary directory and changes into it
func NewTempWorkspace(t *testing.T) *TempWorkspace {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "vernomic-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	oldWd, err := os.Getwd()
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to change into temp dir: %v", err)
	}

	return &TempWorkspace{
		Path:  tmpDir,
		T:     t,
		oldWd: oldWd,
	}
}

// Cleanup restores the previous working directory and removes the workspace
func (w *TempWorkspace) Cleanup() {
	w.T.Helper()
	if err := os.Chdir(w.oldWd); err != nil {
		w.T.Errorf("failed to restore working directory: %v", err)
	}
	if err := os.RemoveAll(w.Path); err != nil {
		w.T.Errorf("failed to cleanup temp workspace: %v", err)
	}
}

// Join returns the absolute path of name inside the workspace
func (w *TempWorkspace) Join(name string) string {
	return filepath.Join(w.Path, name)
}

// CreateFile creates a file in the workspace
func (w *TempWorkspace) CreateFile(name, content string) {
	w.T.Helper()
	path := w.Join(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		w.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		w.T.Fatalf("failed to create file: %v", err)
	}
}

// CreateDir creates a directory in the workspace
func (w *TempWorkspace) CreateDir(name string) {
	w.T.Helper()
	if err := os.MkdirAll(w.Join(name), 0755); err != nil {
		w.T.Fatalf("failed to create directory: %v", err)
	}
}

// FileExists checks if a regular file exists in the workspace
func (w *TempWorkspace) FileExists(name string) bool {
	w.T.Helper()
	info, err := os.Stat(w.Join(name))
	return err == nil && !info.IsDir()
}

// ReadFile returns the content of a workspace file
func (w *TempWorkspace) ReadFile(name string) string {
	w.T.Helper()
	data, err := os.ReadFile(w.Join(name))
	if err != nil {
		w.T.Fatalf("failed to read file: %v", err)
	}
	return string(data)
}

// ListFiles returns the sorted names of the entries in a workspace directory
func (w *TempWorkspace) ListFiles(dir string) []string {
	w.T.Helper()
	entries, err := os.ReadDir(w.Join(dir))
	if err != nil {
		w.T.Fatalf("failed to list directory: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

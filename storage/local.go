package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// localDisk writes under a root directory and serves URLs off a static
// route. Development only.
type localDisk struct {
	root    string
	baseURL string
}

func newLocalDisk(root, baseURL string) *localDisk {
	if root == "" {
		root = "uploads"
	}
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	if baseURL == "" {
		baseURL = "http://localhost:8080/uploads"
	}
	return &localDisk{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (d *localDisk) abs(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

func (d *localDisk) Put(_ context.Context, path string, content []byte, _ string) error {
	full := d.abs(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage/local: mkdir: %w", err)
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return fmt.Errorf("storage/local: write %s: %w", path, err)
	}
	return nil
}

func (d *localDisk) Exists(_ context.Context, path string) bool {
	_, err := os.Stat(d.abs(path))
	return err == nil
}

func (d *localDisk) URL(path string) string {
	return d.baseURL + "/" + strings.TrimLeft(filepath.ToSlash(path), "/")
}

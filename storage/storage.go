// Package storage is the blob-store boundary: upload bytes, hand back a
// public URL. Backed by any S3-compatible bucket (AWS, MinIO, R2, Spaces)
// or the local filesystem for development.
package storage

import (
	"context"
	"fmt"
	"sync"
)

// Disk is the narrow contract the rest of the app depends on. No delete or
// versioning semantics — imported product images are write-once.
type Disk interface {
	Put(ctx context.Context, path string, content []byte, contentType string) error
	Exists(ctx context.Context, path string) bool
	URL(path string) string
}

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk = "local"
)

// Connect boots the configured disks. Call once at startup; the S3 disk is
// only registered when a bucket is configured, the local disk always is.
func Connect(cfg Config) error {
	managerMu.Lock()
	defer managerMu.Unlock()

	disks["local"] = newLocalDisk(cfg.LocalRoot, cfg.LocalBaseURL)

	if cfg.S3Bucket != "" {
		d, err := newS3Disk(cfg)
		if err != nil {
			return fmt.Errorf("storage/s3: %w", err)
		}
		disks["s3"] = d
	}

	if cfg.Default != "" {
		if _, ok := disks[cfg.Default]; !ok {
			return fmt.Errorf("storage: disk %q is not configured", cfg.Default)
		}
		defaultDisk = cfg.Default
	}
	return nil
}

// Config collects the env-derived storage settings.
type Config struct {
	Default      string // "local" or "s3"
	LocalRoot    string
	LocalBaseURL string

	S3Bucket   string
	S3Region   string
	S3Key      string
	S3Secret   string
	S3Endpoint string // leave empty for real AWS
	S3BaseURL  string
}

// Default returns the default disk.
func Default() Disk {
	managerMu.RLock()
	defer managerMu.RUnlock()
	return disks[defaultDisk]
}

// Use returns a named disk, or panics on an unconfigured name — that is a
// wiring bug, not a runtime condition.
func Use(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// RegisterDisk plugs in a custom Disk (tests use an in-memory one).
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}

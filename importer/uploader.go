package importer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gaguya-backend/storage"
)

const (
	uploadTimeout = 45 * time.Second
	uploadRetries = 2
)

var uploadBackoff = []time.Duration{400 * time.Millisecond, 800 * time.Millisecond}

// ImageUploader pushes a row's embedded images to the blob store.
type ImageUploader struct {
	Disk       storage.Disk
	PathPrefix string // defaults to "products/import"
}

func NewImageUploader(disk storage.Disk) *ImageUploader {
	return &ImageUploader{Disk: disk, PathPrefix: "products/import"}
}

// UploadRow uploads one row's images concurrently (the row has at most 3,
// so the fan-out is naturally bounded) and joins before returning. URLs come
// back in the images' original order; failures come back as per-image error
// strings and never abort the row.
func (u *ImageUploader) UploadRow(ctx context.Context, rowIndex int, images []ExcelImageData) ([]string, []string) {
	if len(images) == 0 {
		return nil, nil
	}

	urls := make([]string, len(images))
	errs := make([]string, len(images))

	var wg sync.WaitGroup
	for i := range images {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			url, err := u.uploadOne(ctx, images[i])
			if err != nil {
				errs[i] = fmt.Sprintf("행 %d: 이미지 업로드 실패 (%v)", rowIndex, err)
				return
			}
			urls[i] = url
		}(i)
	}
	wg.Wait()

	var okURLs, failures []string
	for i := range images {
		if errs[i] != "" {
			failures = append(failures, errs[i])
		} else {
			okURLs = append(okURLs, urls[i])
		}
	}
	return okURLs, failures
}

// uploadOne tries up to 1+uploadRetries times with a hard per-attempt
// timeout. An "already exists" answer on a retry means the first attempt
// landed and only its response got lost — that counts as success.
func (u *ImageUploader) uploadOne(ctx context.Context, img ExcelImageData) (string, error) {
	prefix := u.PathPrefix
	if prefix == "" {
		prefix = "products/import"
	}
	path := fmt.Sprintf("%s/%s.%s", prefix, uuid.NewString(), img.Ext)
	contentType := contentTypeForExt(img.Ext)

	var lastErr error
	for attempt := 0; attempt <= uploadRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(uploadBackoff[attempt-1]):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
		err := u.Disk.Put(attemptCtx, path, img.Data, contentType)
		cancel()

		if err == nil {
			return u.Disk.URL(path), nil
		}
		if attempt > 0 && isAlreadyExists(err) {
			return u.Disk.URL(path), nil
		}
		lastErr = err
	}
	return "", lastErr
}

func isAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "409") ||
		strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "AlreadyExists")
}

func contentTypeForExt(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	}
	return "application/octet-stream"
}

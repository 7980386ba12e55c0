// Package asset owns the profile-image pipeline: decode → resize → recompress
// → upload, and best-effort deletion of replaced assets.
//
// The pipeline is deliberately lossy and opinionated: whatever comes in
// (PNG, GIF, oversized JPEG) goes out as a JPEG fitting inside 800×800,
// because the only consumer is an <img> tag showing an avatar.
package asset

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/xid"

	"github.com/sakif/account-service/internal/apperror"
	"github.com/sakif/account-service/internal/blob"
)

const (
	// maxBytes is the hard ceiling for a stored asset (50 MB).
	maxBytes = 50 * 1024 * 1024

	// maxDimension is the bounding box for resize (aspect ratio preserved).
	maxDimension = 800

	// reducedQuality is the JPEG quality used when a first encode still
	// exceeds maxBytes.
	reducedQuality = 80

	contentType = "image/jpeg"
)

// Manager resizes images and manages their object-storage lifecycle.
type Manager struct {
	store  blob.ObjectStore
	logger *slog.Logger
}

// NewManager creates a Manager backed by the given object store.
func NewManager(store blob.ObjectStore, logger *slog.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// Store processes raw image bytes and uploads the result, returning the
// asset's public URL.
//
// Processing steps:
//  1. Reject inputs over the 50 MB ceiling outright.
//  2. Decode (apperror.ErrInvalidImage if that fails).
//  3. Downscale to fit 800×800 if larger; smaller images are left alone.
//  4. Encode as JPEG. If the result still exceeds the ceiling, re-encode at
//     quality 80; if even that is too large, apperror.ErrPayloadTooLarge.
//
// The object key is a unique id plus the original filename, so keys never
// collide and the original name stays visible for debugging.
func (m *Manager) Store(ctx context.Context, data []byte, filename string) (string, error) {
	if len(data) > maxBytes {
		return "", apperror.PayloadTooLarge("File size exceeds the 50MB limit")
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", apperror.InvalidImage("could not decode image")
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		return "", fmt.Errorf("asset: encoding image: %w", err)
	}

	if buf.Len() > maxBytes {
		m.logger.Info("image still too large after resize, reducing quality",
			slog.Int("bytes", buf.Len()),
		)
		buf.Reset()
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(reducedQuality)); err != nil {
			return "", fmt.Errorf("asset: re-encoding image: %w", err)
		}
		if buf.Len() > maxBytes {
			return "", apperror.PayloadTooLarge("image exceeds the 50MB limit even after recompression")
		}
	}

	key := objectKey(filename)

	url, err := m.store.Upload(ctx, key, buf.Bytes(), contentType)
	if err != nil {
		return "", fmt.Errorf("asset: uploading %s: %w", key, err)
	}

	m.logger.Info("asset uploaded",
		slog.String("key", key),
		slog.Int("bytes", buf.Len()),
	)

	return url, nil
}

// Delete removes the asset behind a public URL, best-effort.
//
// The record in the database is the source of truth; a stray object in the
// bucket is an accepted leak, a missing database row is not. So failures here
// are logged and swallowed — callers never abort their primary operation over
// an asset cleanup.
func (m *Manager) Delete(ctx context.Context, publicURL string) {
	key := KeyFromURL(publicURL)
	if key == "" {
		return
	}

	if err := m.store.Delete(ctx, key); err != nil {
		m.logger.Warn("failed to delete asset",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	m.logger.Info("asset deleted", slog.String("key", key))
}

// KeyFromURL derives the storage key from a public URL: the final path
// segment. Returns "" for URLs with no usable segment.
func KeyFromURL(publicURL string) string {
	trimmed := strings.TrimRight(publicURL, "/")
	if trimmed == "" {
		return ""
	}
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// objectKey builds a collision-free object name. xid strings are sortable by
// creation time, which keeps bucket listings roughly chronological.
func objectKey(filename string) string {
	name := strings.TrimSpace(filename)
	if name == "" {
		name = "image.jpg"
	}
	// Path separators in a client-supplied filename would nest the object
	// under unexpected prefixes.
	name = strings.ReplaceAll(name, "/", "_")
	return xid.New().String() + "_" + name
}

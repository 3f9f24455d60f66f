// Copyright (c) 2026 Historical Places Explorer. All rights reserved.
// Author: red4golf

/*
Package jsonstore implements the file-backed document store underlying all
record persistence.

Each partition is a plain directory; each document is one pretty-printed
JSON file named <id>.json. There are no transactions and no locking:
concurrent writes to different ids are independent, concurrent writes to
the same id are last-write-wins.

Architecture:

  - Partition: a directory holding one category of document.
  - List: directory scan, extension-gated, corrupt entries skipped.
  - Get/Put/Delete: single-document operations keyed by id.

Documents are written pretty-printed so that the content directory stays
reviewable by hand, which is how the store is administered in practice.
*/
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/red4golf/historical-places-explorer/internal/platform/constants"
	"github.com/red4golf/historical-places-explorer/internal/platform/ctxutil"
)

var (
	// ErrNotFound is returned when no document exists for the requested id.
	ErrNotFound = errors.New("jsonstore: document not found")

	// ErrCorrupt is returned when a document exists but cannot be decoded.
	ErrCorrupt = errors.New("jsonstore: document corrupt")
)

// # Listing

// List decodes every recognized document in the partition directory.
//
// Hidden files and entries without the .json extension are ignored. A
// document that fails to decode is logged and skipped — a single damaged
// record never takes down a listing. A missing partition directory yields
// an empty result, matching a store that has not been written to yet.
//
// Ordering is directory-enumeration order; callers needing a stable order
// must sort the result themselves.
func List[T any](ctx context.Context, dir string) ([]T, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("jsonstore: read partition %s: %w", dir, err)
	}

	log := ctxutil.GetLogger(ctx)
	docs := make([]T, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, constants.DocumentExt) {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn("jsonstore_entry_unreadable", slog.String("file", name), slog.Any("error", err))
			continue
		}

		var doc T
		if err := json.Unmarshal(raw, &doc); err != nil {
			log.Warn("jsonstore_entry_corrupt", slog.String("file", name), slog.Any("error", err))
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// # Single-Document Operations

// Get decodes the document stored under id in the partition directory.
func Get[T any](dir, id string) (T, error) {
	var doc T

	raw, err := os.ReadFile(documentPath(dir, id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, ErrNotFound
		}
		return doc, fmt.Errorf("jsonstore: read %s/%s: %w", dir, id, err)
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("%w: %s/%s: %v", ErrCorrupt, dir, id, err)
	}
	return doc, nil
}

// Put serializes doc and writes it under id, creating the partition
// directory if absent. The whole document is written in one call; there is
// no partial-write visibility from this process, but no cross-process
// atomicity guarantee either.
func Put(dir, id string, doc any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("jsonstore: create partition %s: %w", dir, err)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: encode %s/%s: %w", dir, id, err)
	}

	if err := os.WriteFile(documentPath(dir, id), raw, 0o644); err != nil {
		return fmt.Errorf("jsonstore: write %s/%s: %w", dir, id, err)
	}
	return nil
}

// Delete removes the document stored under id.
func Delete(dir, id string) error {
	err := os.Remove(documentPath(dir, id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("jsonstore: delete %s/%s: %w", dir, id, err)
	}
	return nil
}

// Exists reports whether a document is stored under id.
func Exists(dir, id string) bool {
	_, err := os.Stat(documentPath(dir, id))
	return err == nil
}

// documentPath builds the on-disk path for an id. The id is reduced to its
// base name so a crafted id can never escape the partition directory.
func documentPath(dir, id string) string {
	return filepath.Join(dir, filepath.Base(id)+constants.DocumentExt)
}

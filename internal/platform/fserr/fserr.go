// Copyright (c) 2026 Historical Places Explorer. All rights reserved.
// Author: red4golf

// Package fserr provides a bridge between low-level storage errors and
// higher-level application errors.
package fserr

import (
	"errors"

	"github.com/red4golf/historical-places-explorer/internal/platform/apperr"
	"github.com/red4golf/historical-places-explorer/internal/platform/jsonstore"
)

// Wrap inspects a storage error and wraps it into a meaningful [apperr.AppError].
// It hides internal filesystem details from the client while classifying the
// error type.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, jsonstore.ErrNotFound) {
		return apperr.NotFound(resource)
	}

	// 2. Damaged document mapping
	if errors.Is(err, jsonstore.ErrCorrupt) {
		return apperr.Corrupt(resource, err)
	}

	// 3. Unknown I/O errors become Internal Server Errors
	return apperr.Internal(err)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import "sync"

// The object model reports GL-level failures through a process-wide error
// sink rather than returning errors: storage construction absorbs an
// allocation failure locally (leaving the storage unbacked) and raises
// OUT_OF_MEMORY for the API layer to surface via glGetError.

var (
	errMu     sync.Mutex
	lastError Enum = NoError
	errorSink func(Enum)
)

// RecordError raises a GL error code. If an error sink has been installed
// with SetErrorSink, the code is passed to it; otherwise the code is stored
// and retrievable with LastError. Matching glGetError semantics, only the
// first error since the last LastError call is kept.
//
// Every raise is also logged at Warn level.
func RecordError(code Enum) {
	Logger().Warn("GL error raised", "code", code)

	errMu.Lock()
	defer errMu.Unlock()

	if errorSink != nil {
		errorSink(code)
		return
	}
	if lastError == NoError {
		lastError = code
	}
}

// LastError returns the first error recorded since the previous call and
// clears it, like glGetError. Returns NoError if nothing was recorded.
// When an error sink is installed, errors bypass this store.
func LastError() Enum {
	errMu.Lock()
	defer errMu.Unlock()

	code := lastError
	lastError = NoError
	return code
}

// SetErrorSink routes raised error codes to the given function instead of
// the internal store. The outer API layer installs its per-context error
// state here. Pass nil to restore the default store.
func SetErrorSink(sink func(Enum)) {
	errMu.Lock()
	defer errMu.Unlock()

	errorSink = sink
	lastError = NoError
}

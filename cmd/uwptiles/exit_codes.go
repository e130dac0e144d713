package main

import (
	"errors"
	"os"

	uwptiles "github.com/alnah/go-uwptiles"
	"github.com/alnah/go-uwptiles/internal/config"
	"github.com/alnah/go-uwptiles/internal/fileutil"
)

// Exit codes for the uwptiles CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All files generated
	ExitGeneral = 1 // General error, including failed renders
	ExitUsage   = 2 // Invalid flags, config, or manifest
	ExitIO      = 3 // Source not found, output folder not writable
	ExitDecode  = 4 // Source image cannot be decoded
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, uwptiles.ErrDecodeSource) ||
		errors.Is(err, uwptiles.ErrEmptySource) {
		return ExitDecode
	}

	// Render failures are reported per file; the batch error is general.
	if errors.Is(err, ErrRenderFailed) {
		return ExitGeneral
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, uwptiles.ErrReadSource) ||
		errors.Is(err, uwptiles.ErrWriteOutput) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, fileutil.ErrNotDirectory) {
		return ExitIO
	}

	if errors.Is(err, ErrNoIcon) ||
		errors.Is(err, ErrInvalidBool) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, uwptiles.ErrInvalidManifest) {
		return ExitUsage
	}

	return ExitGeneral
}

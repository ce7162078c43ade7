// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package verify parses the combined PDF with pdfcpu after the merge step
// and counts its pages.
package verify

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// ErrInvalidOutput is returned when the combined PDF is missing or unreadable.
var ErrInvalidOutput = errors.New("combined PDF is invalid")

// pdfcpu must not create or read a user config directory.
func init() {
	api.DisableConfigDir()
}

// Output validates the PDF at path and returns its page count. A page count
// different from wantPages is logged as a warning but is not an error.
func Output(path string, wantPages int, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if info.Size() == 0 {
		return 0, fmt.Errorf("%w: %s is empty", ErrInvalidOutput, path)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidOutput, path, err)
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: counting pages of %s: %v", ErrInvalidOutput, path, err)
	}

	if pages != wantPages {
		log.Warn("page count differs from accepted inputs",
			zap.String("output", path),
			zap.Int("pages", pages),
			zap.Int("inputs", wantPages),
		)
	}
	log.Debug("verified output", zap.String("output", path), zap.Int("pages", pages))
	return pages, nil
}

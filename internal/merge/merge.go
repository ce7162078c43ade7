// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge combines the intermediate single-page PDFs into the final
// document with Ghostscript's pdfwrite device.
package merge

import (
	"context"
	"errors"
)

// Options are the fixed Ghostscript flags used for merging.
var Options = []string{"-dNOPAUSE", "-dBATCH", "-q", "-sDEVICE=pdfwrite"}

// ErrNoInputs is returned when Merge is asked to combine zero PDFs.
var ErrNoInputs = errors.New("no intermediate PDFs to merge")

// Runner executes one external command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Args returns the Ghostscript arguments that write pdfs, in order, to output.
func Args(output string, pdfs []string) []string {
	args := make([]string, 0, len(Options)+1+len(pdfs))
	args = append(args, Options...)
	args = append(args, "-sOutputFile="+output)
	return append(args, pdfs...)
}

// Merge runs gs once over pdfs. It does not check that output was written.
func Merge(ctx context.Context, run Runner, gs, output string, pdfs []string) error {
	if len(pdfs) == 0 {
		return ErrNoInputs
	}
	return run.Run(ctx, gs, Args(output, pdfs)...)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns individual PNG files into single-page PDFs by way of
// an intermediate TIFF: convert (PNG to TIFF) followed by tiff2pdf.
package convert

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/png2pdf/pkg/types"
)

const (
	pngSuffix  = ".png"
	tiffSuffix = ".tiff"
	pdfSuffix  = ".pdf"
)

// ErrNoPNG is returned when none of the inputs carries the .png suffix.
var ErrNoPNG = errors.New("no PNG file to convert")

// Runner executes one external command. toolchain.Runner implements it.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Accepts reports whether path is a PNG input. The check is a case-sensitive
// suffix match; file contents are never inspected.
func Accepts(path string) bool {
	return strings.HasSuffix(path, pngSuffix)
}

// Plan filters inputs to accepted PNGs and derives the intermediate TIFF and
// PDF paths inside dir for each one, preserving input order.
func Plan(inputs []string, dir string) []types.Artifact {
	var artifacts []types.Artifact
	for _, in := range inputs {
		if !Accepts(in) {
			continue
		}
		stem := strings.TrimSuffix(filepath.Base(in), pngSuffix)
		artifacts = append(artifacts, types.Artifact{
			Source: in,
			TIFF:   filepath.Join(dir, stem+tiffSuffix),
			PDF:    filepath.Join(dir, stem+pdfSuffix),
		})
	}
	return artifacts
}

// PDFs returns the intermediate PDF paths of artifacts in order.
func PDFs(artifacts []types.Artifact) []string {
	pdfs := make([]string, len(artifacts))
	for i, a := range artifacts {
		pdfs[i] = a.PDF
	}
	return pdfs
}

// ImageArgs returns the convert arguments for a: <src.png> <dst.tiff>.
func ImageArgs(a types.Artifact) []string {
	return []string{a.Source, a.TIFF}
}

// TIFFArgs returns the tiff2pdf arguments for a: [options...] -o <dst.pdf> <src.tiff>.
func TIFFArgs(options []string, a types.Artifact) []string {
	args := make([]string, 0, len(options)+3)
	args = append(args, options...)
	return append(args, "-o", a.PDF, a.TIFF)
}

// Driver runs the per-file conversion steps.
type Driver struct {
	tools   types.ToolPaths
	options []string
	run     Runner
	log     *zap.Logger
}

// NewDriver returns a Driver that invokes the tools in paths through run.
// options are passed to every tiff2pdf invocation.
func NewDriver(paths types.ToolPaths, options []string, run Runner, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{tools: paths, options: options, run: run, log: log}
}

// ConvertOne runs convert and then tiff2pdf for a single artifact.
func (d *Driver) ConvertOne(ctx context.Context, a types.Artifact) error {
	if err := d.run.Run(ctx, d.tools.Convert, ImageArgs(a)...); err != nil {
		return err
	}
	return d.run.Run(ctx, d.tools.Tiff2PDF, TIFFArgs(d.options, a)...)
}

// ConvertAll converts every accepted PNG in inputs into dir, one at a time in
// input order, and returns the planned artifacts. Non-PNG inputs are skipped
// silently. ErrNoPNG is returned, before anything runs, when nothing is
// accepted.
func (d *Driver) ConvertAll(ctx context.Context, inputs []string, dir string) ([]types.Artifact, error) {
	artifacts := Plan(inputs, dir)
	if len(artifacts) == 0 {
		return nil, ErrNoPNG
	}

	seen := make(map[string]string, len(artifacts))
	for _, a := range artifacts {
		if prev, ok := seen[a.PDF]; ok {
			d.log.Warn("inputs share a basename; intermediate files will be overwritten",
				zap.String("first", prev), zap.String("second", a.Source))
		}
		seen[a.PDF] = a.Source
	}

	for i, a := range artifacts {
		d.log.Debug("converting", zap.Int("index", i+1), zap.Int("total", len(artifacts)), zap.String("source", a.Source))
		if err := d.ConvertOne(ctx, a); err != nil {
			return artifacts[:i], err
		}
	}
	return artifacts, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs a png2pdf conversion end to end:
// locate tools, create the workspace, convert each PNG, merge, and
// optionally verify the result. The stages run strictly in that order and
// nothing is retried.
package pipeline

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/png2pdf/internal/convert"
	"github.com/pdiddy/png2pdf/internal/merge"
	"github.com/pdiddy/png2pdf/internal/verify"
	"github.com/pdiddy/png2pdf/internal/workspace"
	"github.com/pdiddy/png2pdf/pkg/types"
)

// Locator resolves the external tools. toolchain.Locator implements it.
type Locator interface {
	Locate() (types.ToolPaths, error)
}

// Runner executes external commands and remembers what it ran.
// toolchain.Runner implements it.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
	Records() []types.CommandRecord
}

// Deps holds the collaborators of a run.
type Deps struct {
	Locator Locator
	Runner  Runner
	Log     *zap.Logger
	Now     func() time.Time
	PID     int
}

func (d *Deps) defaults() {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.PID == 0 {
		d.PID = os.Getpid()
	}
}

// Run executes the pipeline for cfg. Tool lookup happens before anything
// touches the filesystem, so a missing tool leaves no workspace behind.
//
// Once the workspace exists the returned manifest is non-nil, even on error,
// and has been written into the workspace.
func Run(ctx context.Context, cfg types.Config, d Deps) (*types.Manifest, error) {
	d.defaults()
	if cfg.Output == "" {
		cfg.Output = types.DefaultOutput
	}
	if cfg.TmpRoot == "" {
		cfg.TmpRoot = types.DefaultTmpRoot
	}

	tools, err := d.Locator.Locate()
	if err != nil {
		return nil, err
	}
	d.Log.Debug("located tools",
		zap.String("convert", tools.Convert),
		zap.String("tiff2pdf", tools.Tiff2PDF),
		zap.String("gs", tools.Ghostscript),
	)

	started := d.Now()
	dir, err := workspace.Create(cfg.TmpRoot, started, d.PID)
	if err != nil {
		return nil, err
	}
	d.Log.Debug("created workspace", zap.String("dir", dir))

	m := &types.Manifest{
		StartedAt: started,
		PID:       d.PID,
		Workspace: dir,
		Tools:     tools,
		Inputs:    cfg.Inputs,
		Output:    cfg.Output,
	}
	defer finish(m, d)

	driver := convert.NewDriver(tools, cfg.Tiff2PDFOptions, d.Runner, d.Log)
	artifacts, err := driver.ConvertAll(ctx, cfg.Inputs, dir)
	m.Artifacts = artifacts
	if err != nil {
		return m, err
	}

	if err := merge.Merge(ctx, d.Runner, tools.Ghostscript, cfg.Output, convert.PDFs(artifacts)); err != nil {
		return m, err
	}
	m.Merged = true

	if cfg.Verify {
		pages, err := verify.Output(cfg.Output, len(artifacts), d.Log)
		m.Pages = pages
		if err != nil {
			return m, err
		}
	}
	return m, nil
}

func finish(m *types.Manifest, d Deps) {
	m.Commands = d.Runner.Records()
	m.FinishedAt = d.Now()
	if failures := m.Failures(); failures > 0 {
		d.Log.Warn("some external commands failed", zap.Int("failed", failures), zap.Int("total", len(m.Commands)))
	}
	path, err := workspace.WriteManifest(m)
	if err != nil {
		d.Log.Warn("could not write run manifest", zap.Error(err))
		return
	}
	d.Log.Debug("wrote manifest", zap.String("path", path))
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolchain locates and runs the external programs png2pdf delegates
// all image and PDF work to: ImageMagick convert, libtiff tiff2pdf and
// Ghostscript.
package toolchain

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pdiddy/png2pdf/pkg/types"
)

// Tool describes one required external program.
type Tool struct {
	// Name is the executable looked up on PATH.
	Name string

	// Package is the ports/package name suggested when Name is missing.
	Package string

	// RegularFile requires the resolved path to be a regular file. When false
	// any existing filesystem entry is accepted.
	RegularFile bool
}

var (
	Convert     = Tool{Name: "convert", Package: "graphics/ImageMagick", RegularFile: true}
	Tiff2PDF    = Tool{Name: "tiff2pdf", Package: "graphics/tiff"}
	Ghostscript = Tool{Name: "gs", Package: "print/ghostscript"}
)

// Required lists the tools in the order they are checked.
var Required = []Tool{Convert, Tiff2PDF, Ghostscript}

// executor abstracts process and filesystem access for testing.
type executor interface {
	LookPath(file string) (string, error)
	Stat(name string) (os.FileInfo, error)
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec = &osExecutor{}

// Locator resolves the required tools to filesystem paths.
type Locator struct {
	exec executor
}

// NewLocator returns a Locator that searches the process PATH.
func NewLocator() *Locator {
	return &Locator{exec: defaultExec}
}

// Locate resolves convert, tiff2pdf and gs in that order. The first tool
// that cannot be found stops the search and is reported as a
// *MissingToolError.
func (l *Locator) Locate() (types.ToolPaths, error) {
	var paths types.ToolPaths
	dest := []*string{&paths.Convert, &paths.Tiff2PDF, &paths.Ghostscript}
	for i, t := range Required {
		p, err := l.resolve(t)
		if err != nil {
			return types.ToolPaths{}, err
		}
		*dest[i] = p
	}
	return paths, nil
}

func (l *Locator) resolve(t Tool) (string, error) {
	p, err := l.exec.LookPath(t.Name)
	if err != nil {
		return "", &MissingToolError{Tool: t, Err: err}
	}
	p = strings.TrimSpace(p)

	info, err := l.exec.Stat(p)
	if err != nil {
		return "", &MissingToolError{Tool: t, Path: p, Err: err}
	}
	if t.RegularFile && !info.Mode().IsRegular() {
		return "", &MissingToolError{Tool: t, Path: p}
	}
	return p, nil
}

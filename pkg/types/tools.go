// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data shared between the png2pdf pipeline stages.
package types

// ToolPaths holds the resolved locations of the three external programs the
// pipeline shells out to. It is populated once by the tool locator and never
// modified afterwards.
type ToolPaths struct {
	// Convert is the ImageMagick image converter (PNG to TIFF).
	Convert string `json:"convert" yaml:"convert"`

	// Tiff2PDF is the libtiff TIFF-to-PDF converter.
	Tiff2PDF string `json:"tiff2pdf" yaml:"tiff2pdf"`

	// Ghostscript is the PostScript interpreter used to merge PDFs.
	Ghostscript string `json:"ghostscript" yaml:"ghostscript"`
}

// CommandRecord is one external command executed during a run.
type CommandRecord struct {
	// Args is the full argument vector, program path first.
	Args []string `json:"args" yaml:"args"`

	// ExitCode is the process exit status, or -1 when the program could not
	// be started at all.
	ExitCode int `json:"exit_code" yaml:"exit_code"`
}

// Succeeded reports whether the command exited with status 0.
func (c CommandRecord) Succeeded() bool {
	return c.ExitCode == 0
}

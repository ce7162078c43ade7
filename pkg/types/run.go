// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultOutput is the combined PDF written when no output path is given.
const DefaultOutput = "test.pdf"

// DefaultTmpRoot is the directory under which run workspaces are created.
const DefaultTmpRoot = "/tmp"

// Artifact is the pair of intermediate files produced from one accepted PNG.
// Both live in the run workspace and share the PNG's basename.
type Artifact struct {
	// Source is the input PNG path as given on the command line.
	Source string `json:"source" yaml:"source"`

	// TIFF is the intermediate TIFF written by the image converter.
	TIFF string `json:"tiff" yaml:"tiff"`

	// PDF is the single-page PDF written by tiff2pdf.
	PDF string `json:"pdf" yaml:"pdf"`
}

// Config holds the resolved settings for one conversion run.
type Config struct {
	// Inputs lists the positional file arguments in command-line order.
	Inputs []string `json:"inputs" yaml:"inputs"`

	// Output is the combined PDF path (default "test.pdf").
	Output string `json:"output" yaml:"output"`

	// Tiff2PDFOptions are extra arguments placed before "-o" in every
	// tiff2pdf invocation. Empty by default.
	Tiff2PDFOptions []string `json:"tiff2pdf_options,omitempty" yaml:"tiff2pdf_options,omitempty"`

	// TmpRoot is the parent of the run workspace (default "/tmp").
	TmpRoot string `json:"tmp_root" yaml:"tmp_root"`

	// Strict aborts the run when an external tool exits non-zero instead of
	// logging and continuing.
	Strict bool `json:"strict" yaml:"strict"`

	// Verify inspects the combined PDF with pdfcpu after the merge.
	Verify bool `json:"verify" yaml:"verify"`
}

// Manifest records what a single run did. It is written into the workspace
// next to the intermediate artifacts.
type Manifest struct {
	StartedAt  time.Time       `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time       `json:"finished_at" yaml:"finished_at"`
	PID        int             `json:"pid" yaml:"pid"`
	Workspace  string          `json:"workspace" yaml:"workspace"`
	Tools      ToolPaths       `json:"tools" yaml:"tools"`
	Inputs     []string        `json:"inputs" yaml:"inputs"`
	Artifacts  []Artifact      `json:"artifacts" yaml:"artifacts"`
	Output     string          `json:"output" yaml:"output"`
	Merged     bool            `json:"merged" yaml:"merged"`
	Pages      int             `json:"pages,omitempty" yaml:"pages,omitempty"`
	Commands   []CommandRecord `json:"commands" yaml:"commands"`
}

// Failures returns the number of recorded commands that exited non-zero.
func (m *Manifest) Failures() int {
	n := 0
	for _, c := range m.Commands {
		if !c.Succeeded() {
			n++
		}
	}
	return n
}

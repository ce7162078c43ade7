//go:build mage

// Package main contains Mage build targets for png2pdf developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "png2pdf"
	cmdPkg  = "./cmd/png2pdf"
)

// externalTools lists the programs png2pdf shells out to, with the package
// that provides each.
var externalTools = []struct{ name, pkg string }{
	{"convert", "graphics/ImageMagick"},
	{"tiff2pdf", "graphics/tiff"},
	{"gs", "print/ghostscript"},
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Install builds and then copies the binary into $GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	return sh.RunV("go", "install", cmdPkg)
}

// Doctor reports which of the external conversion tools are on PATH.
func Doctor() error {
	missing := 0
	for _, t := range externalTools {
		p, err := exec.LookPath(t.name)
		if err != nil {
			fmt.Printf("  missing  %-9s (install %s)\n", t.name, t.pkg)
			missing++
			continue
		}
		fmt.Printf("  found    %-9s %s\n", t.name, p)
	}
	if missing > 0 {
		return mg.Fatalf(1, "%d required tool(s) missing", missing)
	}
	fmt.Println("All external tools available.")
	return nil
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

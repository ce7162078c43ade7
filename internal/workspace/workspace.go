// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workspace creates the per-run temporary directory that holds
// intermediate TIFF and PDF files. Workspaces are left on disk after the run
// so failed conversions can be inspected.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Name returns the workspace directory name for a run started at now by
// process pid: tmp_YYYYMMDD_HHMMSS_<pid>, using now's location.
func Name(now time.Time, pid int) string {
	return fmt.Sprintf("tmp_%04d%02d%02d_%02d%02d%02d_%d",
		now.Year(), int(now.Month()), now.Day(),
		now.Hour(), now.Minute(), now.Second(), pid)
}

// Create makes the workspace directory under root, creating missing parents.
// An existing directory of the same name is reused.
func Create(root string, now time.Time, pid int) (string, error) {
	dir := filepath.Join(root, Name(now, pid))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating workspace %s: %w", dir, err)
	}
	return dir, nil
}

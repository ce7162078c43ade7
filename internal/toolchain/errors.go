// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolchain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTool is returned when a required program cannot be located.
	ErrMissingTool = errors.New("required tool not found")

	// ErrToolFailed is returned in strict mode when a program exits non-zero.
	ErrToolFailed = errors.New("external tool failed")
)

// MissingToolError identifies which required tool was not found.
type MissingToolError struct {
	Tool Tool
	// Path is the resolved location, empty when PATH lookup itself failed.
	Path string
	Err  error
}

func (e *MissingToolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrMissingTool, e.Tool.Name, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s is not a regular file", ErrMissingTool, e.Tool.Name, e.Path)
}

func (e *MissingToolError) Unwrap() error { return ErrMissingTool }

// Message returns the user-facing text naming the missing command and the
// package that provides it.
func (e *MissingToolError) Message() string {
	name := e.Path
	if name == "" {
		name = e.Tool.Name
	}
	return fmt.Sprintf("The command %q does not exist.\nInstall %s on your computer!", name, e.Tool.Package)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/png2pdf/pkg/types"
)

// Runner executes external commands as argument vectors, echoing each
// command line to stdout before it starts. Every execution is recorded.
//
// By default a non-zero exit is logged and swallowed so the pipeline keeps
// going; with strict set it is returned wrapped in ErrToolFailed.
type Runner struct {
	exec    executor
	stdout  io.Writer
	stderr  io.Writer
	log     *zap.Logger
	strict  bool
	records []types.CommandRecord
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithOutput sets where the command trace and tool output are written.
func WithOutput(stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger sets the logger used for failure warnings.
func WithLogger(log *zap.Logger) RunnerOption {
	return func(r *Runner) { r.log = log }
}

// WithStrict makes non-zero exits fatal.
func WithStrict(strict bool) RunnerOption {
	return func(r *Runner) { r.strict = strict }
}

// NewRunner returns a Runner that executes real processes.
func NewRunner(opts ...RunnerOption) *Runner {
	return newRunner(defaultExec, opts...)
}

func newRunner(exec executor, opts ...RunnerOption) *Runner {
	r := &Runner{
		exec:   exec,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prints "name args..." and executes it, blocking until it exits.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	argv := append([]string{name}, args...)
	fmt.Fprintln(r.stdout, strings.Join(argv, " "))

	err := r.exec.Run(ctx, name, args, r.stdout, r.stderr)
	code := exitCode(err)
	r.records = append(r.records, types.CommandRecord{Args: argv, ExitCode: code})
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("running %s: %w", name, ctxErr)
	}

	if r.strict {
		return fmt.Errorf("%w: %s exited with status %d: %v", ErrToolFailed, name, code, err)
	}
	r.log.Warn("external tool failed, continuing",
		zap.String("tool", name),
		zap.Int("exit_code", code),
		zap.Error(err),
	)
	return nil
}

// Records returns the commands executed so far, in order.
func (r *Runner) Records() []types.CommandRecord {
	out := make([]types.CommandRecord, len(r.records))
	copy(out, r.records)
	return out
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

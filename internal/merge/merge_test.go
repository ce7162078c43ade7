// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	calls [][]string
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return nil
}

func TestArgs(t *testing.T) {
	got := Args("result.pdf", []string{"/ws/a.pdf", "/ws/c.pdf"})
	assert.Equal(t, []string{
		"-dNOPAUSE", "-dBATCH", "-q", "-sDEVICE=pdfwrite",
		"-sOutputFile=result.pdf",
		"/ws/a.pdf", "/ws/c.pdf",
	}, got)
	assert.Equal(t,
		"-dNOPAUSE -dBATCH -q -sDEVICE=pdfwrite -sOutputFile=result.pdf /ws/a.pdf /ws/c.pdf",
		strings.Join(got, " "))
}

func TestArgs_DoesNotAliasOptions(t *testing.T) {
	a := Args("one.pdf", []string{"x.pdf"})
	a[0] = "mutated"
	assert.Equal(t, "-dNOPAUSE", Options[0])
}

func TestMerge(t *testing.T) {
	run := &recordingRunner{}
	require.NoError(t, Merge(context.Background(), run, "/usr/bin/gs", "test.pdf", []string{"/ws/a.pdf"}))
	require.Len(t, run.calls, 1)
	assert.Equal(t, "/usr/bin/gs", run.calls[0][0])
	assert.Contains(t, run.calls[0], "-sOutputFile=test.pdf")
	assert.Equal(t, "/ws/a.pdf", run.calls[0][len(run.calls[0])-1])
}

func TestMerge_NoInputs(t *testing.T) {
	run := &recordingRunner{}
	err := Merge(context.Background(), run, "gs", "test.pdf", nil)
	require.ErrorIs(t, err, ErrNoInputs)
	assert.Empty(t, run.calls)
}

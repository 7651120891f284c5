package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadwatch/pkg/errors"
)

// writeScript drops a shell script standing in for the detection script so
// the process contract can be exercised without the real model.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analyze.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestAnalyzeParsesScriptOutput(t *testing.T) {
	script := writeScript(t, `echo '{"num_potholes":1,"widths_pixels":[34.2],"confidences":[0.91]}'`)
	a := NewProcessAnalyzer("sh", script, 10)

	out, err := a.Analyze(context.Background(), "in.jpg", "annotated.jpg")
	require.NoError(t, err)
	assert.Equal(t, 1, out.DefectCount)
	assert.Equal(t, []float64{34.2}, out.Widths)
	assert.Equal(t, []float64{0.91}, out.Confidences)
}

func TestAnalyzeNonzeroExitIsFailure(t *testing.T) {
	// Valid payload on stdout must not rescue a nonzero exit.
	script := writeScript(t, `echo '{"num_potholes":0,"widths_pixels":[]}'; exit 3`)
	a := NewProcessAnalyzer("sh", script, 10)

	_, err := a.Analyze(context.Background(), "in.jpg", "annotated.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "ANALYSIS_ERROR"))
}

func TestAnalyzeMalformedOutputIsFailure(t *testing.T) {
	script := writeScript(t, `echo 'not json at all'`)
	a := NewProcessAnalyzer("sh", script, 10)

	_, err := a.Analyze(context.Background(), "in.jpg", "annotated.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "ANALYSIS_ERROR"))
}

func TestAnalyzeErrorPayloadIsFailure(t *testing.T) {
	script := writeScript(t, `echo '{"error":"model file not found"}'`)
	a := NewProcessAnalyzer("sh", script, 10)

	_, err := a.Analyze(context.Background(), "in.jpg", "annotated.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "ANALYSIS_ERROR"))
}

func TestAnalyzeTimesOut(t *testing.T) {
	script := writeScript(t, `sleep 5`)
	a := NewProcessAnalyzer("sh", script, 1)

	_, err := a.Analyze(context.Background(), "in.jpg", "annotated.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "ANALYSIS_ERROR"))
}

func TestAnalyzePassesPathsAsArguments(t *testing.T) {
	script := writeScript(t, `cp "$1" "$2"; echo '{"num_potholes":0,"widths_pixels":[]}'`)
	a := NewProcessAnalyzer("sh", script, 10)

	dir := t.TempDir()
	input := filepath.Join(dir, "in.jpg")
	annotated := filepath.Join(dir, "annotated.jpg")
	require.NoError(t, os.WriteFile(input, []byte("jpeg-bytes"), 0o644))

	_, err := a.Analyze(context.Background(), input, annotated)
	require.NoError(t, err)

	data, err := os.ReadFile(annotated)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

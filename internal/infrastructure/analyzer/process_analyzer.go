package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"time"

	"roadwatch/internal/domain/service"
	"roadwatch/pkg/errors"
	"roadwatch/pkg/logger"
)

// ProcessAnalyzer invokes the detection script as an external process:
//
//	<command> <script> <input image> <annotated output>
//
// stdout carries the JSON result, stderr is diagnostic only, and a nonzero
// exit code is a failure regardless of output content.
type ProcessAnalyzer struct {
	command string
	script  string
	timeout time.Duration
}

func NewProcessAnalyzer(command, script string, timeoutSeconds int64) *ProcessAnalyzer {
	return &ProcessAnalyzer{
		command: command,
		script:  script,
		timeout: time.Duration(timeoutSeconds) * time.Second,
	}
}

var _ service.Analyzer = (*ProcessAnalyzer)(nil)

type scriptOutput struct {
	NumPotholes  int       `json:"num_potholes"`
	WidthsPixels []float64 `json:"widths_pixels"`
	Confidences  []float64 `json:"confidences"`
	Error        string    `json:"error"`
}

func (a *ProcessAnalyzer) Analyze(ctx context.Context, imagePath, annotatedPath string) (*service.AnalysisOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.command, a.script, imagePath, annotatedPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.Analysis("Image analysis timed out", ctx.Err())
		}
		logger.Error("Analyzer process failed: %v, stderr: %s", err, stderr.String())
		return nil, errors.Analysis("Image analysis failed", err)
	}

	var out scriptOutput
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &out); err != nil {
		logger.Error("Analyzer produced malformed output: %v, stdout: %s", err, stdout.String())
		return nil, errors.Analysis("Image analysis produced malformed output", err)
	}

	// The script reports internal errors as {"error": ...} with exit 1, but
	// guard against a zero-exit error payload as well.
	if out.Error != "" {
		return nil, errors.Analysis("Image analysis failed", nil)
	}

	return &service.AnalysisOutput{
		DefectCount: out.NumPotholes,
		Widths:      out.WidthsPixels,
		Confidences: out.Confidences,
	}, nil
}

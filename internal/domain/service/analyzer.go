package service

import (
	"context"
)

// AnalysisOutput is the parsed result of one analyzer invocation.
type AnalysisOutput struct {
	DefectCount int
	Widths      []float64
	Confidences []float64
}

// Analyzer runs defect detection on the image at imagePath and writes the
// annotated image to annotatedPath. Exactly one terminal outcome per
// invocation; the annotated file's lifecycle passes to the caller.
type Analyzer interface {
	Analyze(ctx context.Context, imagePath, annotatedPath string) (*AnalysisOutput, error)
}

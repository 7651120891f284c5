package usecase

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"roadwatch/internal/domain/entity"
	"roadwatch/internal/domain/repository"
	"roadwatch/internal/domain/service"
	"roadwatch/pkg/errors"
	"roadwatch/pkg/logger"
)

type ReportUseCase struct {
	reportRepo repository.ReportRepository
	mediaStore service.MediaStore
	analyzer   service.Analyzer
	workDir    string
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	mediaStore service.MediaStore,
	analyzer service.Analyzer,
	workDir string,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		mediaStore: mediaStore,
		analyzer:   analyzer,
		workDir:    workDir,
	}
}

type SubmitInput struct {
	ReporterID  string
	Description string
	IssueType   string
	Location    entity.GeoPoint
	Image       io.Reader
	ContentType string
	Size        int64
}

// Submit runs the submission pipeline: stage the upload, store the original,
// invoke the analyzer, store the annotated output, persist the report. Any
// failure after the first store deletes the media written so far; cleanup is
// best-effort and never replaces the primary error.
func (uc *ReportUseCase) Submit(ctx context.Context, input SubmitInput) (*entity.Report, error) {
	if input.ReporterID == "" {
		return nil, errors.Unauthorized("Authentication required", nil)
	}
	if !entity.ValidIssueType(input.IssueType) {
		return nil, errors.BadRequest("Invalid issue type", nil)
	}
	if input.Location.Lat < -90 || input.Location.Lat > 90 ||
		input.Location.Lng < -180 || input.Location.Lng > 180 {
		return nil, errors.BadRequest("Invalid location", nil)
	}

	// The external analyzer works on file paths, so the upload is staged to
	// a scratch file regardless of which media backend is configured.
	originalPath, annotatedPath, err := uc.stageUpload(input.Image)
	if err != nil {
		return nil, err
	}
	defer os.Remove(originalPath)
	defer os.Remove(annotatedPath)

	original, err := os.Open(originalPath)
	if err != nil {
		return nil, errors.Storage("Failed to read staged upload", err)
	}
	originalRef, err := uc.mediaStore.Store(ctx, original, input.ContentType, input.Size)
	original.Close()
	if err != nil {
		return nil, err
	}

	analysis, err := uc.analyzer.Analyze(ctx, originalPath, annotatedPath)
	if err != nil {
		uc.discard(ctx, originalRef)
		return nil, err
	}

	annotatedRef, err := uc.storeAnnotated(ctx, annotatedPath, input.ContentType)
	if err != nil {
		uc.discard(ctx, originalRef)
		return nil, err
	}

	report := &entity.Report{
		ID:          uuid.New().String(),
		ReporterID:  input.ReporterID,
		Description: input.Description,
		IssueType:   entity.IssueType(input.IssueType),
		Location:    input.Location,

		OriginalImage:  originalRef,
		AnnotatedImage: annotatedRef,
		Analysis: &entity.AnalysisResult{
			DefectCount: analysis.DefectCount,
			Widths:      analysis.Widths,
			Confidences: analysis.Confidences,
		},

		Status: entity.StatusPending,
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		uc.discard(ctx, originalRef)
		uc.discard(ctx, annotatedRef)
		return nil, err
	}

	return report, nil
}

// ListMine returns the reporter's own submissions, newest first.
func (uc *ReportUseCase) ListMine(ctx context.Context, reporterID string) ([]*entity.Report, error) {
	return uc.reportRepo.ListByReporter(ctx, reporterID)
}

func (uc *ReportUseCase) stageUpload(image io.Reader) (string, string, error) {
	if err := os.MkdirAll(uc.workDir, 0o755); err != nil {
		return "", "", errors.Storage("Failed to prepare work directory", err)
	}

	name := uuid.New().String()
	originalPath := filepath.Join(uc.workDir, name+"-in")
	annotatedPath := filepath.Join(uc.workDir, name+"-annotated")

	dst, err := os.Create(originalPath)
	if err != nil {
		return "", "", errors.Storage("Failed to stage upload", err)
	}

	if _, err := io.Copy(dst, image); err != nil {
		dst.Close()
		os.Remove(originalPath)
		return "", "", errors.Storage("Failed to stage upload", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(originalPath)
		return "", "", errors.Storage("Failed to stage upload", err)
	}

	return originalPath, annotatedPath, nil
}

func (uc *ReportUseCase) storeAnnotated(ctx context.Context, path, contentType string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Storage("Failed to read annotated image", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", errors.Storage("Failed to read annotated image", err)
	}

	return uc.mediaStore.Store(ctx, f, contentType, info.Size())
}

func (uc *ReportUseCase) discard(ctx context.Context, locator string) {
	if err := uc.mediaStore.Delete(ctx, locator); err != nil {
		logger.Warn("Failed to clean up stored media %s: %v", locator, err)
	}
}

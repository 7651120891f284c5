package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"roadwatch/internal/domain/entity"
	"roadwatch/internal/domain/repository"
	"roadwatch/pkg/errors"
)

type firestoreReportRepository struct {
	client *firestore.Client
}

func NewFirestoreReportRepository(client *firestore.Client) repository.ReportRepository {
	return &firestoreReportRepository{
		client: client,
	}
}

func (r *firestoreReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ReporterID == "" || report.OriginalImage == "" {
		return errors.BadRequest("Report is missing required fields", nil)
	}
	if !entity.ValidIssueType(string(report.IssueType)) {
		return errors.BadRequest("Invalid issue type", nil)
	}

	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now

	_, err := r.client.Collection("reports").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to create report", err)
	}

	return nil
}

func (r *firestoreReportRepository) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	doc, err := r.client.Collection("reports").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Report", err)
		}
		return nil, errors.Internal("Failed to get report", err)
	}

	var report entity.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, errors.Internal("Failed to parse report data", err)
	}

	return &report, nil
}

func (r *firestoreReportRepository) ListByReporter(ctx context.Context, reporterID string) ([]*entity.Report, error) {
	query := r.client.Collection("reports").
		Where("reporterId", "==", reporterID).
		OrderBy("createdAt", firestore.Desc)

	return collectReports(query.Documents(ctx))
}

func (r *firestoreReportRepository) ListAll(ctx context.Context) ([]*entity.Report, error) {
	query := r.client.Collection("reports").OrderBy("createdAt", firestore.Desc)

	return collectReports(query.Documents(ctx))
}

func (r *firestoreReportRepository) UpdateStatus(ctx context.Context, id string, patch entity.StatusPatch) (*entity.Report, error) {
	docRef := r.client.Collection("reports").Doc(id)

	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "status", Value: patch.Status},
		{Path: "officerComment", Value: patch.OfficerComment},
		{Path: "reviewedBy", Value: patch.ReviewedBy},
		{Path: "reviewedAt", Value: patch.ReviewedAt},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Report", err)
		}
		return nil, errors.Internal("Failed to update report", err)
	}

	return r.GetByID(ctx, id)
}

func collectReports(iter *firestore.DocumentIterator) ([]*entity.Report, error) {
	reports := make([]*entity.Report, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list reports", err)
		}

		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, errors.Internal("Failed to parse report data", err)
		}
		reports = append(reports, &report)
	}

	return reports, nil
}

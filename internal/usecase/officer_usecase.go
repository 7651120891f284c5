package usecase

import (
	"context"
	"fmt"
	"time"

	"roadwatch/internal/domain/entity"
	"roadwatch/internal/domain/repository"
	"roadwatch/internal/domain/service"
	"roadwatch/pkg/errors"
	"roadwatch/pkg/logger"
)

type OfficerUseCase struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	mailer     service.Mailer
}

func NewOfficerUseCase(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	mailer service.Mailer,
) *OfficerUseCase {
	return &OfficerUseCase{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		mailer:     mailer,
	}
}

// ListReports returns every report, newest first.
func (uc *OfficerUseCase) ListReports(ctx context.Context, actor *entity.User) ([]*entity.Report, error) {
	if actor.Role != entity.RoleOfficer {
		return nil, errors.Forbidden("Only officers can access this resource", nil)
	}

	return uc.reportRepo.ListAll(ctx)
}

// UpdateStatus applies a status transition on behalf of an officer and
// dispatches a best-effort notification to the reporter. The status machine
// is flat: any of the five values may be set directly.
func (uc *OfficerUseCase) UpdateStatus(ctx context.Context, actor *entity.User, reportID, status, comment string) (*entity.Report, error) {
	if actor.Role != entity.RoleOfficer {
		return nil, errors.Forbidden("Only officers can update report status", nil)
	}

	if !entity.ValidStatus(status) {
		return nil, errors.BadRequest("Invalid status value", nil)
	}

	if _, err := uc.reportRepo.GetByID(ctx, reportID); err != nil {
		return nil, err
	}

	updated, err := uc.reportRepo.UpdateStatus(ctx, reportID, entity.StatusPatch{
		Status:         entity.ReportStatus(status),
		OfficerComment: comment,
		ReviewedBy:     actor.ID,
		ReviewedAt:     time.Now(),
	})
	if err != nil {
		return nil, err
	}

	uc.notifyReporter(updated)

	return updated, nil
}

// notifyReporter mails the reporter about the new status. Fire-and-forget:
// failures are logged and never surface to the officer's request.
func (uc *OfficerUseCase) notifyReporter(report *entity.Report) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		reporter, err := uc.userRepo.GetByID(ctx, report.ReporterID)
		if err != nil {
			logger.Warn("Notification skipped, reporter %s lookup failed: %v", report.ReporterID, err)
			return
		}

		subject := "Your road report status was updated"
		body := fmt.Sprintf(
			"Thank you for reporting the issue. Your %s report is now %q.",
			report.IssueType, report.Status,
		)
		if report.OfficerComment != "" {
			body += fmt.Sprintf(" Officer comment: %s", report.OfficerComment)
		}

		if err := uc.mailer.Send(ctx, reporter.Email, subject, body); err != nil {
			logger.Warn("Failed to notify reporter %s: %v", reporter.Email, err)
		}
	}()
}

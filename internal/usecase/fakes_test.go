package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"roadwatch/internal/domain/entity"
	"roadwatch/internal/domain/service"
	"roadwatch/pkg/errors"
)

type fakeMediaStore struct {
	mu      sync.Mutex
	stores  int
	deletes []string
	objects map[string][]byte
	failOn  int // 1-based store call to fail, 0 = never
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{objects: map[string][]byte{}}
}

func (s *fakeMediaStore) Store(ctx context.Context, file io.Reader, contentType string, size int64) (string, error) {
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", errors.BadRequest("Only .png, .jpg and .jpeg files are allowed", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stores++
	if s.failOn == s.stores {
		return "", errors.Storage("disk full", nil)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", errors.Storage("read failed", err)
	}

	locator := fmt.Sprintf("/uploads/obj-%d", s.stores)
	s.objects[locator] = data
	return locator, nil
}

func (s *fakeMediaStore) Delete(ctx context.Context, locator string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deletes = append(s.deletes, locator)
	if _, ok := s.objects[locator]; !ok {
		return errors.NotFound("Media", nil)
	}
	delete(s.objects, locator)
	return nil
}

func (s *fakeMediaStore) stored() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

type fakeAnalyzer struct {
	out *service.AnalysisOutput
	err error
}

func (a *fakeAnalyzer) Analyze(ctx context.Context, imagePath, annotatedPath string) (*service.AnalysisOutput, error) {
	if a.err != nil {
		return nil, a.err
	}
	if err := os.WriteFile(annotatedPath, []byte("annotated-bytes"), 0o644); err != nil {
		return nil, errors.Analysis("write failed", err)
	}
	return a.out, nil
}

type fakeReportRepo struct {
	mu        sync.Mutex
	reports   map[string]*entity.Report
	createErr error
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: map[string]*entity.Report{}}
}

func (r *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now

	copied := *report
	r.reports[report.ID] = &copied
	return nil
}

func (r *fakeReportRepo) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}
	copied := *report
	return &copied, nil
}

func (r *fakeReportRepo) ListByReporter(ctx context.Context, reporterID string) ([]*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Report
	for _, report := range r.reports {
		if report.ReporterID == reporterID {
			copied := *report
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeReportRepo) ListAll(ctx context.Context) ([]*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Report
	for _, report := range r.reports {
		copied := *report
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeReportRepo) UpdateStatus(ctx context.Context, id string, patch entity.StatusPatch) (*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}

	report.Status = patch.Status
	report.OfficerComment = patch.OfficerComment
	report.ReviewedBy = patch.ReviewedBy
	report.ReviewedAt = patch.ReviewedAt
	report.UpdatedAt = time.Now()

	copied := *report
	return &copied, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent chan sentMail
	err  error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan sentMail, 8)}
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.sent <- sentMail{To: to, Subject: subject, Body: body}
	return m.err
}

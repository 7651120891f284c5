package entity

import (
	"time"
)

type ReportStatus string

const (
	StatusPending    ReportStatus = "pending"
	StatusInProgress ReportStatus = "in-progress"
	StatusApproved   ReportStatus = "approved"
	StatusRejected   ReportStatus = "rejected"
	StatusCompleted  ReportStatus = "completed"
)

// ValidStatus reports whether s is one of the five recognized values.
func ValidStatus(s string) bool {
	switch ReportStatus(s) {
	case StatusPending, StatusInProgress, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

type IssueType string

const (
	IssuePothole  IssueType = "pothole"
	IssueCrack    IssueType = "crack"
	IssueDrainage IssueType = "drainage"
	IssueDebris   IssueType = "debris"
	IssueSignage  IssueType = "signage"
	IssueOther    IssueType = "other"
)

func ValidIssueType(s string) bool {
	switch IssueType(s) {
	case IssuePothole, IssueCrack, IssueDrainage, IssueDebris, IssueSignage, IssueOther:
		return true
	}
	return false
}

type GeoPoint struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

// AnalysisResult is the analyzer output attached to a report. It is stored
// together with the annotated image reference or not at all.
type AnalysisResult struct {
	DefectCount int       `json:"defect_count" firestore:"defectCount"`
	Widths      []float64 `json:"widths" firestore:"widths"`
	Confidences []float64 `json:"confidences,omitempty" firestore:"confidences,omitempty"`
}

type Report struct {
	ID          string       `json:"id" firestore:"id"`
	ReporterID  string       `json:"reporter_id" firestore:"reporterId"`
	Description string       `json:"description" firestore:"description"`
	IssueType   IssueType    `json:"issue_type" firestore:"issueType"`
	Location    GeoPoint     `json:"location" firestore:"location"`

	OriginalImage  string          `json:"original_image" firestore:"originalImage"`
	AnnotatedImage string          `json:"annotated_image,omitempty" firestore:"annotatedImage,omitempty"`
	Analysis       *AnalysisResult `json:"analysis,omitempty" firestore:"analysis,omitempty"`

	Status         ReportStatus `json:"status" firestore:"status"`
	OfficerComment string       `json:"officer_comment" firestore:"officerComment"`
	ReviewedBy     string       `json:"reviewed_by,omitempty" firestore:"reviewedBy,omitempty"`
	ReviewedAt     time.Time    `json:"reviewed_at,omitempty" firestore:"reviewedAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// StatusPatch is the partial update applied by the status transition workflow.
type StatusPatch struct {
	Status         ReportStatus
	OfficerComment string
	ReviewedBy     string
	ReviewedAt     time.Time
}

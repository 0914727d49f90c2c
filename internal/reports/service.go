package reports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"hostelcore/internal/media"
)

var (
	ErrMissingFields = errors.New("missing form fields")
	ErrUploadFailed  = errors.New("image upload failed")
	ErrPersistence   = errors.New("report not saved")
)

type ReportStore interface {
	Insert(ctx context.Context, r *Report) error
}

type Submission struct {
	TeacherName            string
	SubordinateTeacherName string
	HostelName             string
	GeneralComments        string
	MaintenanceRequired    string
	Complaints             string
	Attachment             *Attachment
}

type Attachment struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// Service is the ingestion pipeline: validate, upload the optional attachment,
// then insert exactly one row.
type Service struct {
	store    ReportStore
	uploader media.Uploader
	logger   *slog.Logger
}

func NewService(store ReportStore, uploader media.Uploader, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		uploader: uploader,
		logger:   logger,
	}
}

// Submit validates first, so nothing downstream is touched on bad input. The
// upload must finish before the insert because image_url comes from its
// result; a failed upload aborts the whole submission. One upload attempt per
// submission, no retries.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Report, error) {
	if sub.TeacherName == "" || sub.SubordinateTeacherName == "" || sub.HostelName == "" {
		return nil, ErrMissingFields
	}
	var imageURL *string
	if sub.Attachment != nil {
		if s.uploader == nil {
			return nil, media.ErrNotConfigured
		}
		url, err := s.uploader.Upload(ctx, sub.Attachment.Reader, sub.Attachment.Filename, sub.Attachment.ContentType)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUploadFailed, err)
		}
		imageURL = &url
	}
	r := &Report{
		TeacherName:            sub.TeacherName,
		SubordinateTeacherName: sub.SubordinateTeacherName,
		HostelName:             sub.HostelName,
		GeneralComments:        optional(sub.GeneralComments),
		MaintenanceRequired:    optional(sub.MaintenanceRequired),
		Complaints:             optional(sub.Complaints),
		ImageURL:               imageURL,
	}
	if err := s.store.Insert(ctx, r); err != nil {
		if imageURL != nil {
			// The uploaded file stays behind on the media host; only the row
			// failed. Logged so the leak can be cleaned up by hand.
			s.logger.Warn("report insert failed after upload", "image_url", *imageURL)
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return r, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

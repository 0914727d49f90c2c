package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"hostelcore/internal/reports"
)

var (
	ErrInvalidPeriod = errors.New("invalid period")
	ErrNoData        = errors.New("no data available")
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// xlsx cells cannot carry a timezone offset, so timestamps are written in
	// this naive layout.
	timeLayout = "2006-01-02 15:04:05"
)

// columns are the report fields in sheet order; the first row of every export
// holds these names.
var columns = []string{
	"id",
	"teacher_name",
	"subordinate_teacher_name",
	"hostel_name",
	"general_comments",
	"maintenance_required",
	"complaints",
	"image_url",
	"created_at",
}

type ReportSource interface {
	ListCreatedSince(ctx context.Context, since time.Time) ([]reports.Report, error)
}

// File is a fully materialized spreadsheet ready to be sent as an attachment.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Engine struct {
	source ReportSource
	now    func() time.Time
}

func NewEngine(source ReportSource) *Engine {
	return &Engine{source: source, now: time.Now}
}

// windowStart maps a period name to the start of its trailing window. Monthly
// and yearly are calendar-relative, not fixed day counts.
func windowStart(now time.Time, period string) (time.Time, error) {
	switch period {
	case "weekly":
		return now.AddDate(0, 0, -7), nil
	case "monthly":
		return monthsBack(now, 1), nil
	case "yearly":
		return monthsBack(now, 12), nil
	}
	return time.Time{}, ErrInvalidPeriod
}

// monthsBack subtracts calendar months with the day clamped to the target
// month's length, matching Postgres INTERVAL arithmetic. Plain AddDate would
// normalize Mar 31 minus one month into Mar 3.
func monthsBack(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()-time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (e *Engine) Export(ctx context.Context, period string) (*File, error) {
	since, err := windowStart(e.now(), period)
	if err != nil {
		return nil, err
	}
	rows, err := e.source.ListCreatedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	data, err := encodeSheet(rows)
	if err != nil {
		return nil, fmt.Errorf("encode sheet: %w", err)
	}
	return &File{
		Name:        "report_" + period + ".xlsx",
		ContentType: ContentTypeXLSX,
		Data:        data,
	}, nil
}

func encodeSheet(rows []reports.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			r.ID,
			r.TeacherName,
			r.SubordinateTeacherName,
			r.HostelName,
			text(r.GeneralComments),
			text(r.MaintenanceRequired),
			text(r.Complaints),
			text(r.ImageURL),
			naive(r.CreatedAt).Format(timeLayout),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// naive strips the timezone offset while keeping the wall-clock value; it is a
// representation fix, not a conversion.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

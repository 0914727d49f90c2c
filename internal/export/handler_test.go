package export

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"hostelcore/internal/reports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDownloadInvalidPeriod(t *testing.T) {
	h := &DownloadHandler{Engine: NewEngine(&fakeSource{}), Logger: discardLogger()}
	req := httptest.NewRequest(http.MethodGet, "/download/biweekly", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestDownloadNoData(t *testing.T) {
	h := &DownloadHandler{Engine: NewEngine(&fakeSource{}), Logger: discardLogger()}
	req := httptest.NewRequest(http.MethodGet, "/download/weekly", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestDownloadAttachment(t *testing.T) {
	src := &fakeSource{rows: []reports.Report{{
		ID:                     1,
		TeacherName:            "jane",
		SubordinateTeacherName: "omar",
		HostelName:             "North Wing",
		CreatedAt:              time.Now().UTC(),
	}}}
	h := &DownloadHandler{Engine: NewEngine(src), Logger: discardLogger()}
	req := httptest.NewRequest(http.MethodGet, "/download/monthly", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != ContentTypeXLSX {
		t.Errorf("content type = %q", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != "attachment; filename=report_monthly.xlsx" {
		t.Errorf("content disposition = %q", cd)
	}
	if cl := resp.Header().Get("Content-Length"); cl != strconv.Itoa(resp.Body.Len()) {
		t.Errorf("content length %q does not match body of %d bytes", cl, resp.Body.Len())
	}
}

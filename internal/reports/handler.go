package reports

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"hostelcore/internal/auth"
	"hostelcore/internal/media"
)

const maxUploadBytes = 32 << 20

type SubmitHandler struct {
	Service *Service
	Logger  *slog.Logger
}

func (h *SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok || claims.UserType != auth.RoleTeacher {
		writeMessage(w, http.StatusForbidden, false, "Unauthorized")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid form data")
		return
	}
	sub := Submission{
		TeacherName:            r.FormValue("teacherName"),
		SubordinateTeacherName: r.FormValue("subordinateTeacherName"),
		HostelName:             r.FormValue("hostelName"),
		GeneralComments:        r.FormValue("generalComments"),
		MaintenanceRequired:    r.FormValue("maintenanceRequired"),
		Complaints:             r.FormValue("complaints"),
	}
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		sub.Attachment = &Attachment{
			Reader:      file,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		}
	case errors.Is(err, http.ErrMissingFile):
		// No attachment; image_url stays null.
	default:
		writeMessage(w, http.StatusBadRequest, false, "Invalid form data")
		return
	}

	if _, err := h.Service.Submit(r.Context(), sub); err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			writeMessage(w, http.StatusBadRequest, false, "Missing form fields")
		case errors.Is(err, media.ErrNotConfigured):
			writeMessage(w, http.StatusServiceUnavailable, false, "Image upload unavailable")
		case errors.Is(err, ErrUploadFailed):
			h.Logger.Error("submit form", "err", err)
			writeMessage(w, http.StatusInternalServerError, false, "Image upload failed")
		case errors.Is(err, context.DeadlineExceeded):
			h.Logger.Error("submit form", "err", err)
			writeMessage(w, http.StatusServiceUnavailable, false, "Database unavailable")
		default:
			h.Logger.Error("submit form", "err", err)
			writeMessage(w, http.StatusInternalServerError, false, "Form submission failed")
		}
		return
	}
	writeMessage(w, http.StatusOK, true, "Form submitted successfully")
}

type ReportLister interface {
	List(ctx context.Context) ([]Report, error)
}

type ListHandler struct {
	Store  ReportLister
	Logger *slog.Logger
}

func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	result, err := h.Store.List(r.Context())
	if err != nil {
		h.Logger.Error("list reports", "err", err)
		status := http.StatusInternalServerError
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		writeMessage(w, status, false, "Database error")
		return
	}
	if result == nil {
		result = []Report{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

type ReportDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteHandler removes a report. The router guards it with the super-admin
// role requirement.
type DeleteHandler struct {
	Store  ReportDeleter
	Logger *slog.Logger
}

func (h *DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	// Path is /delete-form/{id}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := h.Store.Delete(r.Context(), id); err != nil {
		h.Logger.Error("delete report", "err", err, "id", id)
		status := http.StatusInternalServerError
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		writeMessage(w, status, false, "Failed to delete form")
		return
	}
	writeMessage(w, http.StatusOK, true, "Form deleted successfully")
}

func writeMessage(w http.ResponseWriter, status int, success bool, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": success,
		"message": msg,
	})
}

package export

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

type DownloadHandler struct {
	Engine *Engine
	Logger *slog.Logger
}

func (h *DownloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	// Path is /download/{period}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		writeError(w, http.StatusBadRequest, "Invalid period")
		return
	}
	file, err := h.Engine.Export(r.Context(), parts[1])
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPeriod):
			writeError(w, http.StatusBadRequest, "Invalid period")
		case errors.Is(err, ErrNoData):
			writeError(w, http.StatusNotFound, "No data available")
		case errors.Is(err, context.DeadlineExceeded):
			h.Logger.Error("export", "err", err, "period", parts[1])
			writeError(w, http.StatusServiceUnavailable, "Database unavailable")
		default:
			h.Logger.Error("export", "err", err, "period", parts[1])
			writeError(w, http.StatusInternalServerError, "Export failed")
		}
		return
	}
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.Header().Set("Content-Disposition", `attachment; filename=`+file.Name)
	_, _ = w.Write(file.Data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

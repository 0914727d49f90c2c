package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"hostelcore/internal/auth"
)

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

func teacherLoginHandler(svc *auth.Service, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			TeacherID string `json:"teacherId"`
			Password  string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TeacherID == "" || req.Password == "" {
			writeLogin(w, http.StatusBadRequest, loginResponse{Message: "Missing credentials"})
			return
		}
		token, err := svc.LoginTeacher(r.Context(), req.TeacherID, req.Password)
		if err != nil {
			writeLoginErr(w, logger, "teacher login", err)
			return
		}
		writeLogin(w, http.StatusOK, loginResponse{Success: true, Message: "Login successful", Token: token})
	})
}

func adminLoginHandler(svc *auth.Service, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			AdminID  string `json:"adminId"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AdminID == "" || req.Password == "" {
			writeLogin(w, http.StatusBadRequest, loginResponse{Message: "Missing credentials"})
			return
		}
		token, err := svc.LoginAdmin(r.Context(), req.AdminID, req.Password)
		if err != nil {
			writeLoginErr(w, logger, "admin login", err)
			return
		}
		writeLogin(w, http.StatusOK, loginResponse{Success: true, Message: "Login successful", Token: token})
	})
}

func writeLoginErr(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeLogin(w, http.StatusUnauthorized, loginResponse{Message: "Invalid credentials"})
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error(op, "err", err)
		writeLogin(w, http.StatusServiceUnavailable, loginResponse{Message: "Database unavailable"})
	default:
		logger.Error(op, "err", err)
		writeLogin(w, http.StatusInternalServerError, loginResponse{Message: "Internal server error"})
	}
}

func writeLogin(w http.ResponseWriter, status int, resp loginResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

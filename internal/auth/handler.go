package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// AccountStore is what the account endpoints need from the store.
type AccountStore interface {
	ListTeachers(ctx context.Context) ([]Account, error)
	CreateTeacher(ctx context.Context, name, password string) error
	DeleteTeacher(ctx context.Context, id int64) error
	ListAdmins(ctx context.Context) ([]Account, error)
	CreateAdmin(ctx context.Context, name, password string) error
	DeleteAdmin(ctx context.Context, id int64) error
}

type ListTeachersHandler struct {
	Store  AccountStore
	Logger *slog.Logger
}

func (h *ListTeachersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	accounts, err := h.Store.ListTeachers(r.Context())
	if err != nil {
		h.Logger.Error("list teachers", "err", err)
		writeJSON(w, storeStatus(err), map[string]string{"error": "Database error"})
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

type AddTeacherHandler struct {
	Store  AccountStore
	Logger *slog.Logger
}

func (h *AddTeacherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	name, password, ok := decodeAccount(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing fields"})
		return
	}
	if err := h.Store.CreateTeacher(r.Context(), name, password); err != nil {
		h.Logger.Error("add teacher", "err", err)
		writeJSON(w, storeStatus(err), map[string]string{"error": "Database error"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Teacher added successfully"})
}

type DeleteTeacherHandler struct {
	Store  AccountStore
	Logger *slog.Logger
}

func (h *DeleteTeacherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := deleteID(w, r)
	if !ok {
		return
	}
	if err := h.Store.DeleteTeacher(r.Context(), id); err != nil {
		h.Logger.Error("delete teacher", "err", err, "id", id)
		writeJSON(w, storeStatus(err), map[string]string{"error": "Failed to delete teacher"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Teacher deleted successfully"})
}

type ListAdminsHandler struct {
	Store  AccountStore
	Logger *slog.Logger
}

func (h *ListAdminsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	accounts, err := h.Store.ListAdmins(r.Context())
	if err != nil {
		h.Logger.Error("list admins", "err", err)
		writeJSON(w, storeStatus(err), map[string]string{"error": "Database error"})
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

type AddAdminHandler struct {
	Store  AccountStore
	Logger *slog.Logger
}

func (h *AddAdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	name, password, ok := decodeAccount(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing fields"})
		return
	}
	if err := h.Store.CreateAdmin(r.Context(), name, password); err != nil {
		h.Logger.Error("add admin", "err", err)
		writeJSON(w, storeStatus(err), map[string]string{"error": "Database error"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Admin added successfully"})
}

type DeleteAdminHandler struct {
	Store  AccountStore
	Logger *slog.Logger
}

func (h *DeleteAdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := deleteID(w, r)
	if !ok {
		return
	}
	if err := h.Store.DeleteAdmin(r.Context(), id); err != nil {
		h.Logger.Error("delete admin", "err", err, "id", id)
		writeJSON(w, storeStatus(err), map[string]string{"error": "Failed to delete admin"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Admin deleted successfully",
	})
}

func decodeAccount(r *http.Request) (name, password string, ok bool) {
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", false
	}
	if req.Name == "" || req.Password == "" {
		return "", "", false
	}
	return req.Name, req.Password, true
}

// deleteID enforces the DELETE method and parses the trailing path segment,
// e.g. /delete-teacher/{id}.
func deleteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return 0, false
	}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		w.WriteHeader(http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func storeStatus(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hostelcore/internal/auth"
	"hostelcore/internal/export"
	"hostelcore/internal/reports"
)

type fakeCredentials struct {
	teachers map[string]string
	admins   map[string]string
}

func (f fakeCredentials) AuthenticateTeacher(ctx context.Context, name, password string) error {
	if f.teachers[name] == password && password != "" {
		return nil
	}
	return auth.ErrInvalidCredentials
}

func (f fakeCredentials) AuthenticateAdmin(ctx context.Context, name, password string) error {
	if f.admins[name] == password && password != "" {
		return nil
	}
	return auth.ErrInvalidCredentials
}

type fakeAccounts struct{}

func (fakeAccounts) ListTeachers(ctx context.Context) ([]auth.Account, error) {
	return []auth.Account{{ID: 1, Name: "jane"}}, nil
}
func (fakeAccounts) CreateTeacher(ctx context.Context, name, password string) error { return nil }
func (fakeAccounts) DeleteTeacher(ctx context.Context, id int64) error              { return nil }
func (fakeAccounts) ListAdmins(ctx context.Context) ([]auth.Account, error) {
	return []auth.Account{{ID: 1, Name: "root"}}, nil
}
func (fakeAccounts) CreateAdmin(ctx context.Context, name, password string) error { return nil }
func (fakeAccounts) DeleteAdmin(ctx context.Context, id int64) error              { return nil }

type emptyInsert struct{}

func (emptyInsert) Insert(ctx context.Context, r *reports.Report) error { return nil }

type emptyReportStore struct{}

func (emptyReportStore) List(ctx context.Context) ([]reports.Report, error) { return nil, nil }
func (emptyReportStore) Delete(ctx context.Context, id int64) error         { return nil }

type emptySource struct{}

func (emptySource) ListCreatedSince(ctx context.Context, since time.Time) ([]reports.Report, error) {
	return nil, nil
}

func newTestRouter() (http.Handler, *auth.TokenService) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := auth.NewTokenService("test-secret")
	creds := fakeCredentials{
		teachers: map[string]string{"jane": "pw"},
		admins:   map[string]string{"root": "pw", "Paul": "1234"},
	}
	authSvc := auth.NewService(creds, tokens, "Paul", "1234")
	reportSvc := reports.NewService(emptyInsert{}, nil, logger)
	engine := export.NewEngine(emptySource{})
	router := NewRouter(logger, authSvc, tokens, fakeAccounts{}, emptyReportStore{},
		reportSvc, engine, []string{"http://localhost:5173"})
	return router, tokens
}

func TestIndexAndUnknownPath(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "running") {
		t.Errorf("index: status %d, body %q", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Errorf("unknown path: status %d, want 404", resp.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/submit-form", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allow-origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/submit-form", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("allow-origin leaked to unlisted origin: %q", got)
	}
}

func TestTeacherLogin(t *testing.T) {
	router, tokens := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/teacher-login", strings.NewReader(`{"teacherId":"jane","password":"pw"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Token == "" {
		t.Fatalf("body = %+v", body)
	}
	claims, err := tokens.Parse(body.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UserType != auth.RoleTeacher {
		t.Errorf("user_type = %q, want teacher", claims.UserType)
	}

	req = httptest.NewRequest(http.MethodPost, "/teacher-login", strings.NewReader(`{"teacherId":"jane","password":"wrong"}`))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("bad password status = %d, want 401", resp.Code)
	}
}

func TestAdminLoginPromotesSuperAdmin(t *testing.T) {
	router, tokens := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/admin-login", strings.NewReader(`{"adminId":"Paul","password":"1234"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	claims, err := tokens.Parse(body.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserType != auth.RoleSuperAdmin {
		t.Errorf("user_type = %q, want super_admin", claims.UserType)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter()
	cases := []struct {
		method, path string
	}{
		{http.MethodGet, "/admins"},
		{http.MethodPost, "/add-admin"},
		{http.MethodDelete, "/delete-admin/1"},
		{http.MethodDelete, "/delete-teacher/1"},
		{http.MethodPost, "/submit-form"},
		{http.MethodDelete, "/delete-form/1"},
	}
	for _, c := range cases {
		req := httptest.NewRequest(c.method, c.path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status %d, want 401", c.method, c.path, resp.Code)
		}
	}
}

func TestOpenRoutesNeedNoToken(t *testing.T) {
	router, _ := newTestRouter()
	for _, path := range []string{"/teachers", "/forms"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Errorf("GET %s: status %d, want 200", path, resp.Code)
		}
	}
}

func TestDeleteFormRequiresSuperAdmin(t *testing.T) {
	router, tokens := newTestRouter()
	adminTok, err := tokens.Issue(auth.RoleAdmin, "root")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodDelete, "/delete-form/1", nil)
	req.Header.Set("Authorization", "Bearer "+adminTok)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Errorf("admin delete-form: status %d, want 403", resp.Code)
	}
}

func TestDownloadUnknownPeriod(t *testing.T) {
	router, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/download/biweekly", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.Code)
	}
}

package httpserver

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"hostelcore/internal/auth"
	"hostelcore/internal/export"
	"hostelcore/internal/reports"
)

// ReportStore is the slice of the report store the routed handlers use.
type ReportStore interface {
	reports.ReportLister
	reports.ReportDeleter
}

func NewRouter(
	logger *slog.Logger,
	authSvc *auth.Service,
	tokens *auth.TokenService,
	accounts auth.AccountStore,
	reportStore ReportStore,
	reportSvc *reports.Service,
	engine *export.Engine,
	allowedOrigins []string,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Hostel visit report backend is running."))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Logins
	mux.Handle("/teacher-login", teacherLoginHandler(authSvc, logger))
	mux.Handle("/admin-login", adminLoginHandler(authSvc, logger))

	secured := auth.TokenMiddleware(tokens)

	// Teacher accounts: open list and create, any-valid-token delete.
	mux.Handle("/teachers", &auth.ListTeachersHandler{Store: accounts, Logger: logger})
	mux.Handle("/add-teacher", &auth.AddTeacherHandler{Store: accounts, Logger: logger})
	mux.Handle("/delete-teacher/", secured(&auth.DeleteTeacherHandler{Store: accounts, Logger: logger}))

	// Admin accounts: any valid token, regardless of role.
	mux.Handle("/admins", secured(&auth.ListAdminsHandler{Store: accounts, Logger: logger}))
	mux.Handle("/add-admin", secured(&auth.AddAdminHandler{Store: accounts, Logger: logger}))
	mux.Handle("/delete-admin/", secured(&auth.DeleteAdminHandler{Store: accounts, Logger: logger}))

	// Reports
	mux.Handle("/forms", &reports.ListHandler{Store: reportStore, Logger: logger})
	mux.Handle("/submit-form", secured(&reports.SubmitHandler{Service: reportSvc, Logger: logger}))
	deleteForm := &reports.DeleteHandler{Store: reportStore, Logger: logger}
	mux.Handle("/delete-form/", secured(auth.RequireRole(deleteForm.ServeHTTP, auth.RoleSuperAdmin)))

	// Export
	mux.Handle("/download/", &export.DownloadHandler{Engine: engine, Logger: logger})

	return withCORS(requestLogging(logger)(mux), allowedOrigins)
}

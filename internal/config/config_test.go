package config

import "testing"

func setBase(t *testing.T) {
	t.Helper()
	t.Setenv("HOSTELCORE_DB_DSN", "postgres://x@localhost/db")
	t.Setenv("HOSTELCORE_JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HOSTELCORE_ALLOWED_ORIGINS", "")
}

func TestLoadDefaults(t *testing.T) {
	setBase(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8000" {
		t.Errorf("addr = %q", cfg.HTTPAddr)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
	if cfg.SuperAdminName != "Paul" {
		t.Errorf("super admin = %q", cfg.SuperAdminName)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	setBase(t)
	t.Setenv("HOSTELCORE_JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("missing secret accepted")
	}
}

func TestLoadRequiresDSN(t *testing.T) {
	setBase(t)
	t.Setenv("HOSTELCORE_DB_DSN", "")
	if _, err := Load(); err == nil {
		t.Fatal("missing DSN accepted")
	}
}

func TestLoadFallsBackToDatabaseURL(t *testing.T) {
	setBase(t)
	t.Setenv("HOSTELCORE_DB_DSN", "")
	t.Setenv("DATABASE_URL", "postgres://render@host/db")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBDSN != "postgres://render@host/db" {
		t.Errorf("dsn = %q", cfg.DBDSN)
	}
}

func TestLoadSplitsOrigins(t *testing.T) {
	setBase(t)
	t.Setenv("HOSTELCORE_ALLOWED_ORIGINS", "https://reports.example.com, http://localhost:5173")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://reports.example.com" {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
}

package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewDriveUploaderUnconfigured(t *testing.T) {
	if _, err := NewDriveUploader(context.Background(), "", ""); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if _, err := NewDriveUploader(context.Background(), `{"type":"service_account"}`, ""); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("missing folder id: err = %v, want ErrNotConfigured", err)
	}
}

func TestReadCredentialsInlineJSON(t *testing.T) {
	in := `{"type": "service_account", "project_id": "p"}`
	got, err := readCredentials(in)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != in {
		t.Errorf("got %q", got)
	}
}

func TestReadCredentialsFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sa.json")
	content := `{"type": "service_account"}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, v := range []string{path, "{" + path + "}", `"` + path + `"`} {
		got, err := readCredentials(v)
		if err != nil {
			t.Fatalf("read %q: %v", v, err)
		}
		if string(got) != content {
			t.Errorf("read %q: got %q", v, got)
		}
	}
}

func TestReadCredentialsMissingFile(t *testing.T) {
	if _, err := readCredentials("/nonexistent/sa.json"); err == nil {
		t.Fatal("missing file accepted")
	}
}

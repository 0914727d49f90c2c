package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DriveUploader puts attachments into a single Google Drive folder owned by a
// service account.
type DriveUploader struct {
	svc      *drive.Service
	folderID string
}

// NewDriveUploader accepts either the service-account JSON itself or a path
// to it. Returns ErrNotConfigured when nothing is configured at all.
func NewDriveUploader(ctx context.Context, credentials, folderID string) (*DriveUploader, error) {
	if credentials == "" || folderID == "" {
		return nil, ErrNotConfigured
	}
	data, err := readCredentials(credentials)
	if err != nil {
		return nil, err
	}
	svc, err := drive.NewService(ctx,
		option.WithCredentialsJSON(data),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}
	return &DriveUploader{svc: svc, folderID: folderID}, nil
}

func readCredentials(v string) ([]byte, error) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "{") && strings.Contains(v, `"`) {
		return []byte(v), nil
	}
	// Some deployments wrap the filename in braces or quotes.
	path := strings.Trim(v, `{}"'`)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}
	return data, nil
}

func (u *DriveUploader) Upload(ctx context.Context, r io.Reader, filename, contentType string) (string, error) {
	meta := &drive.File{
		Name:    filename,
		Parents: []string{u.folderID},
	}
	created, err := u.svc.Files.Create(meta).
		Media(r, googleapi.ContentType(contentType)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}
	return "https://drive.google.com/uc?id=" + created.Id, nil
}

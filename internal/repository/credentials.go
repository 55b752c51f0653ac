package repository

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/BerryBytes/ssocreds/internal/logger"
	"github.com/BerryBytes/ssocreds/models"
	"github.com/spf13/afero"
)

const (
	KeyAccessKeyID     = "aws_access_key_id"
	KeySecretAccessKey = "aws_secret_access_key"
	KeySessionToken    = "aws_session_token"
	KeyExpiration      = "expiration"
)

type FileCredentialsRepository struct {
	fs   afero.Fs
	path string
}

func NewFileCredentialsRepository(fs afero.Fs, path string) *FileCredentialsRepository {
	return &FileCredentialsRepository{fs: fs, path: path}
}

// Save replaces the contents of the section for key and rewrites the whole file.
// Every other section is carried over untouched.
//
// Read and write are not atomic and nothing is locked: a concurrent edit between
// the two is lost.
func (r *FileCredentialsRepository) Save(key string, creds *models.AWSCredentials) error {
	file, _, err := loadINI(r.fs, r.path)
	if err != nil {
		return fmt.Errorf("failed to load credentials file: %w", err)
	}

	section, err := file.GetSection(key)
	if err != nil {
		section, err = file.NewSection(key)
		if err != nil {
			return fmt.Errorf("failed to create credentials section %s: %w", key, err)
		}
	}

	values := []struct{ name, value string }{
		{KeyAccessKeyID, creds.AccessKeyID},
		{KeySecretAccessKey, creds.SecretAccessKey},
		{KeySessionToken, creds.SessionToken},
		{KeyExpiration, formatExpiration(creds.Expiration)},
	}

	// The section keeps its position and comment; only its keys are replaced.
	keep := make(map[string]bool, len(values))
	for _, v := range values {
		keep[v.name] = true
	}
	for _, name := range section.KeyStrings() {
		if !keep[name] {
			section.DeleteKey(name)
		}
	}
	for _, v := range values {
		section.Key(v.name).SetValue(v.value)
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to serialize credentials file: %w", err)
	}

	if err := r.fs.MkdirAll(filepath.Dir(r.path), PermissionRWX); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(r.path), err)
	}
	if err := afero.WriteFile(r.fs, r.path, buf.Bytes(), PermissionRW); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	logger.Debug("Wrote AWS credentials",
		"profile", key,
		"credentials_file", r.path,
		"access_key_prefix", logger.MaskAccessKey(creds.AccessKeyID),
		"expiration", creds.Expiration,
	)
	return nil
}

// Load returns every section of the credentials file. A missing file is empty.
func (r *FileCredentialsRepository) Load() (map[string]map[string]string, error) {
	file, _, err := loadINI(r.fs, r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials file: %w", err)
	}

	entries := make(map[string]map[string]string)
	for _, sec := range file.Sections() {
		if isImplicitDefault(sec) && len(sec.Keys()) == 0 {
			continue
		}
		entries[sec.Name()] = sec.KeysHash()
	}
	return entries, nil
}

func formatExpiration(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

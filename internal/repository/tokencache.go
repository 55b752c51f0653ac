package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BerryBytes/ssocreds/internal/logger"
	"github.com/BerryBytes/ssocreds/models"
	"github.com/spf13/afero"
)

type FileTokenCacheRepository struct {
	fs  afero.Fs
	dir string
}

func NewFileTokenCacheRepository(fs afero.Fs, dir string) *FileTokenCacheRepository {
	return &FileTokenCacheRepository{fs: fs, dir: dir}
}

// FindLatest returns the cached token for startURL with the latest expiry.
// Unreadable or foreign files in the cache directory are skipped. Expired tokens
// are returned too; deciding whether a token is still usable is up to the caller.
func (r *FileTokenCacheRepository) FindLatest(startURL string) (*models.CachedToken, bool, error) {
	files, err := afero.ReadDir(r.fs, r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("SSO cache directory does not exist", "dir", r.dir)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read SSO cache directory: %w", err)
	}

	var latest *models.CachedToken
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		path := filepath.Join(r.dir, file.Name())
		token, ok := r.readToken(path)
		if !ok || token.StartURL != startURL {
			continue
		}
		// strictly after: on a tie the first file seen is kept
		if latest == nil || token.ExpiresAt.After(latest.ExpiresAt) {
			latest = token
		}
	}

	if latest == nil {
		return nil, false, nil
	}
	logger.Debug("Found cached SSO token", "start_url", startURL, "file", latest.Path, "expires_at", latest.ExpiresAt)
	return latest, true, nil
}

func (r *FileTokenCacheRepository) readToken(path string) (*models.CachedToken, bool) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, false
	}

	var cache models.SSOCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, false
	}
	if cache.AccessToken == nil || *cache.AccessToken == "" {
		return nil, false
	}

	var expiresAt time.Time
	if cache.ExpiresAt != nil {
		expiresAt, err = ParseExpiresAt(*cache.ExpiresAt)
		if err != nil {
			logger.Debug("Skipping cache file with bad expiresAt", "file", path, "error", err)
			return nil, false
		}
	}

	token := &models.CachedToken{
		AccessToken: *cache.AccessToken,
		ExpiresAt:   expiresAt,
		Path:        path,
	}
	if cache.StartURL != nil {
		token.StartURL = *cache.StartURL
	}
	if cache.Region != nil {
		token.Region = *cache.Region
	}
	return token, true
}

// ParseExpiresAt accepts RFC 3339 timestamps and the "2006-01-02T15:04:05UTC" form
// older AWS CLI releases write.
func ParseExpiresAt(value string) (time.Time, error) {
	normalized := strings.Replace(strings.TrimSpace(value), "UTC", "Z", 1)
	t, err := time.Parse(time.RFC3339, normalized)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid expiration time %q: %w", value, err)
	}
	return t, nil
}

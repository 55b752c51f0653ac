package repository

import "github.com/BerryBytes/ssocreds/models"

// ConfigRepository reads the shared AWS config file.
type ConfigRepository interface {
	Load() (*models.RawConfig, error)
}

// TokenCacheRepository finds access tokens left behind by `aws sso login`.
type TokenCacheRepository interface {
	FindLatest(startURL string) (*models.CachedToken, bool, error)
}

// CredentialsRepository persists role credentials into the shared credentials file.
type CredentialsRepository interface {
	Save(key string, creds *models.AWSCredentials) error
	Load() (map[string]map[string]string, error)
}

package models

import "time"

// CachedToken is an SSO access token written to the cache directory by `aws sso login`.
type CachedToken struct {
	AccessToken string
	StartURL    string
	Region      string
	ExpiresAt   time.Time
	Path        string
}

// SSOCache mirrors the JSON layout of a file in ~/.aws/sso/cache.
type SSOCache struct {
	StartURL    *string `json:"startUrl,omitempty"`
	Region      *string `json:"region,omitempty"`
	AccessToken *string `json:"accessToken,omitempty"`
	ExpiresAt   *string `json:"expiresAt,omitempty"`
}

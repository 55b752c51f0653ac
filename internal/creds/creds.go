package creds

import (
	"context"
	"fmt"
	"time"

	"github.com/BerryBytes/ssocreds/internal/config"
	errUtils "github.com/BerryBytes/ssocreds/internal/errors"
	"github.com/BerryBytes/ssocreds/internal/logger"
	"github.com/BerryBytes/ssocreds/internal/profile"
	"github.com/BerryBytes/ssocreds/internal/repository"
	"github.com/BerryBytes/ssocreds/internal/sso"
	"github.com/BerryBytes/ssocreds/models"
	"github.com/BerryBytes/ssocreds/utils/common"
)

type state string

const (
	stateResolving      state = "resolving"
	stateCacheCheck     state = "cache-check"
	stateCacheHit       state = "cache-hit"
	stateReauthRequired state = "reauth-required"
	stateExchanging     state = "exchanging"
	statePersisting     state = "persisting"
	stateDone           state = "done"
	stateFailed         state = "failed"
)

// Request selects the source profile and the credentials key to write.
// Empty Profile means "default"; empty CredKey means the profile name.
type Request struct {
	Profile string
	CredKey string
	Force   bool
}

// Setter refreshes the credentials for one profile.
type Setter interface {
	SetCreds(ctx context.Context, req Request) (*models.SetCredsResult, error)
}

// Service is the Setter backed by the AWS config, the SSO token cache and the
// credentials file.
type Service struct {
	ConfigRepo      repository.ConfigRepository
	TokenCache      repository.TokenCacheRepository
	CredentialsRepo repository.CredentialsRepository
	Login           sso.LoginRunner
	Exchanger       sso.CredentialsExchanger

	// LoginOutput receives the login subprocess output. Nil discards it.
	LoginOutput common.LineHandler
	Now         func() time.Time
}

// NewService returns a Service using the wall clock.
func NewService(
	configRepo repository.ConfigRepository,
	tokenCache repository.TokenCacheRepository,
	credentialsRepo repository.CredentialsRepository,
	login sso.LoginRunner,
	exchanger sso.CredentialsExchanger,
	loginOutput common.LineHandler,
) *Service {
	return &Service{
		ConfigRepo:      configRepo,
		TokenCache:      tokenCache,
		CredentialsRepo: credentialsRepo,
		Login:           login,
		Exchanger:       exchanger,
		LoginOutput:     loginOutput,
		Now:             time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func transition(to state, keyvals ...interface{}) {
	logger.Debug("setcreds", append([]interface{}{"state", to}, keyvals...)...)
}

func fail(err error) error {
	transition(stateFailed, "err", err)
	return err
}

// SetCreds resolves role credentials for req.Profile and stores them under the
// target key. Nothing is written unless every earlier step succeeded.
func (s *Service) SetCreds(ctx context.Context, req Request) (*models.SetCredsResult, error) {
	profileName := req.Profile
	if profileName == "" {
		profileName = config.DefaultProfile
	}
	credKey := req.CredKey
	if credKey == "" {
		credKey = profileName
	}

	transition(stateResolving, "profile", profileName)
	raw, err := s.ConfigRepo.Load()
	if err != nil {
		return nil, fail(err)
	}
	cfg, err := profile.Resolve(raw, profileName)
	if err != nil {
		return nil, fail(err)
	}

	token, err := s.usableToken(ctx, cfg, req.Force)
	if err != nil {
		return nil, fail(err)
	}

	transition(stateExchanging, "account_id", cfg.SSOAccountID, "role", cfg.SSORoleName)
	newCreds, err := s.Exchanger.Exchange(ctx, sso.ExchangeInput{
		AccessToken: token.AccessToken,
		AccountID:   cfg.SSOAccountID,
		RoleName:    cfg.SSORoleName,
		Region:      cfg.EffectiveRegion(),
	})
	if err != nil {
		return nil, fail(err)
	}

	transition(statePersisting, "key", credKey, "access_key", logger.MaskAccessKey(newCreds.AccessKeyID))
	if err := s.CredentialsRepo.Save(credKey, newCreds); err != nil {
		return nil, fail(fmt.Errorf("failed to write credentials for %q: %w", credKey, err))
	}

	transition(stateDone, "profile", profileName, "key", credKey, "expiration", newCreds.Expiration)
	return &models.SetCredsResult{
		Profile:   profileName,
		CredKey:   credKey,
		NewCreds:  newCreds,
		AccountID: cfg.SSOAccountID,
		RoleName:  cfg.SSORoleName,
		Region:    cfg.EffectiveRegion(),
	}, nil
}

func (s *Service) usableToken(ctx context.Context, cfg *models.ProfileConfig, force bool) (*models.CachedToken, error) {
	transition(stateCacheCheck, "start_url", cfg.SSOStartURL, "force", force)
	if !force {
		token, ok, err := s.lookup(cfg.SSOStartURL)
		if err != nil {
			return nil, err
		}
		if ok {
			transition(stateCacheHit, "expires_at", token.ExpiresAt, "path", token.Path)
			return token, nil
		}
	}

	transition(stateReauthRequired, "profile", cfg.Name)
	if err := s.Login.Login(ctx, cfg.Name, s.LoginOutput); err != nil {
		return nil, err
	}

	token, ok, err := s.lookup(cfg.SSOStartURL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errUtils.NoTokenAfterLogin(cfg.Name, cfg.SSOStartURL)
	}
	return token, nil
}

// lookup reports a token only when one exists and has not yet expired.
func (s *Service) lookup(startURL string) (*models.CachedToken, bool, error) {
	token, found, err := s.TokenCache.FindLatest(startURL)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read SSO token cache: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	if !token.ExpiresAt.After(s.now()) {
		logger.Debug("Cached SSO token expired", "expires_at", token.ExpiresAt, "path", token.Path)
		return nil, false, nil
	}
	return token, true, nil
}

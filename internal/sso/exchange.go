package sso

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sso"

	"github.com/BerryBytes/ssocreds/internal/logger"
	"github.com/BerryBytes/ssocreds/models"
)

var ErrEmptyRoleCredentials = errors.New("empty role credentials response")

// RoleCredentialsAPI is the part of the SSO portal client used here.
type RoleCredentialsAPI interface {
	GetRoleCredentials(ctx context.Context, params *sso.GetRoleCredentialsInput, optFns ...func(*sso.Options)) (*sso.GetRoleCredentialsOutput, error)
}

type ClientFactory func(ctx context.Context, region string) (RoleCredentialsAPI, error)

type ExchangeInput struct {
	AccessToken string
	AccountID   string
	RoleName    string
	Region      string
}

// CredentialsExchanger trades an SSO access token for role credentials.
type CredentialsExchanger interface {
	Exchange(ctx context.Context, in ExchangeInput) (*models.AWSCredentials, error)
}

type SDKExchanger struct {
	NewClient ClientFactory
}

func NewSDKExchanger() *SDKExchanger {
	return &SDKExchanger{NewClient: DefaultClientFactory}
}

// DefaultClientFactory builds an SSO portal client for region. The portal call is
// authorised by the bearer token alone, so no AWS credentials are used.
func DefaultClientFactory(_ context.Context, region string) (RoleCredentialsAPI, error) {
	return sso.NewFromConfig(isolatedConfig(region, aws.AnonymousCredentials{})), nil
}

// isolatedConfig ignores AWS_PROFILE, AWS_CONFIG_FILE and the shared files.
func isolatedConfig(region string, provider aws.CredentialsProvider) aws.Config {
	return aws.Config{
		Region:      region,
		Credentials: provider,
	}
}

// Exchange performs a single GetRoleCredentials call. Service and transport errors
// are returned as they are.
func (e *SDKExchanger) Exchange(ctx context.Context, in ExchangeInput) (*models.AWSCredentials, error) {
	client, err := e.NewClient(ctx, in.Region)
	if err != nil {
		return nil, err
	}

	logger.Debug("Requesting role credentials", "account_id", in.AccountID, "role", in.RoleName, "region", in.Region)
	resp, err := client.GetRoleCredentials(ctx, &sso.GetRoleCredentialsInput{
		AccessToken: aws.String(in.AccessToken),
		AccountId:   aws.String(in.AccountID),
		RoleName:    aws.String(in.RoleName),
	})
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.RoleCredentials == nil {
		return nil, ErrEmptyRoleCredentials
	}

	rc := resp.RoleCredentials
	return &models.AWSCredentials{
		AccessKeyID:     aws.ToString(rc.AccessKeyId),
		SecretAccessKey: aws.ToString(rc.SecretAccessKey),
		SessionToken:    aws.ToString(rc.SessionToken),
		Expiration:      time.UnixMilli(rc.Expiration).UTC(),
	}, nil
}

package sso

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/BerryBytes/ssocreds/models"
)

type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type STSClientFactory func(ctx context.Context, region string, provider aws.CredentialsProvider) (STSAPI, error)

// IdentityVerifier checks freshly issued credentials against STS.
type IdentityVerifier interface {
	CallerIdentity(ctx context.Context, region string, creds *models.AWSCredentials) (*models.CallerIdentity, error)
}

type STSIdentityVerifier struct {
	NewClient STSClientFactory
}

func NewSTSIdentityVerifier() *STSIdentityVerifier {
	return &STSIdentityVerifier{NewClient: DefaultSTSClientFactory}
}

func DefaultSTSClientFactory(_ context.Context, region string, provider aws.CredentialsProvider) (STSAPI, error) {
	return sts.NewFromConfig(isolatedConfig(region, provider)), nil
}

func (v *STSIdentityVerifier) CallerIdentity(ctx context.Context, region string, creds *models.AWSCredentials) (*models.CallerIdentity, error) {
	provider := credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken)

	client, err := v.NewClient(ctx, region, provider)
	if err != nil {
		return nil, err
	}

	out, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, err
	}

	return &models.CallerIdentity{
		Account: aws.ToString(out.Account),
		Arn:     aws.ToString(out.Arn),
		UserID:  aws.ToString(out.UserId),
	}, nil
}

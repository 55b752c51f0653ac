package sso_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerryBytes/ssocreds/internal/sso"
	"github.com/BerryBytes/ssocreds/models"
)

type fakeSTS struct {
	out *sts.GetCallerIdentityOutput
	err error
}

func (f *fakeSTS) GetCallerIdentity(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return f.out, f.err
}

func TestSTSIdentityVerifier_CallerIdentity(t *testing.T) {
	creds := &models.AWSCredentials{AccessKeyID: "ASIAEXAMPLE", SecretAccessKey: "secret", SessionToken: "session"}

	var gotRegion string
	var gotCreds aws.Credentials
	verifier := &sso.STSIdentityVerifier{
		NewClient: func(ctx context.Context, region string, provider aws.CredentialsProvider) (sso.STSAPI, error) {
			gotRegion = region
			var err error
			gotCreds, err = provider.Retrieve(ctx)
			require.NoError(t, err)
			return &fakeSTS{out: &sts.GetCallerIdentityOutput{
				Account: aws.String("111122223333"),
				Arn:     aws.String("arn:aws:sts::111122223333:assumed-role/Admin/alice"),
				UserId:  aws.String("AROAEXAMPLE:alice"),
			}}, nil
		},
	}

	id, err := verifier.CallerIdentity(context.Background(), "us-west-2", creds)
	require.NoError(t, err)

	assert.Equal(t, "us-west-2", gotRegion)
	assert.Equal(t, "ASIAEXAMPLE", gotCreds.AccessKeyID)
	assert.Equal(t, "secret", gotCreds.SecretAccessKey)
	assert.Equal(t, "session", gotCreds.SessionToken)
	assert.Equal(t, &models.CallerIdentity{
		Account: "111122223333",
		Arn:     "arn:aws:sts::111122223333:assumed-role/Admin/alice",
		UserID:  "AROAEXAMPLE:alice",
	}, id)
}

func TestSTSIdentityVerifier_CallerIdentityError(t *testing.T) {
	stsErr := errors.New("ExpiredToken")
	verifier := &sso.STSIdentityVerifier{
		NewClient: func(context.Context, string, aws.CredentialsProvider) (sso.STSAPI, error) {
			return &fakeSTS{err: stsErr}, nil
		},
	}

	id, err := verifier.CallerIdentity(context.Background(), "us-west-2", &models.AWSCredentials{})
	assert.Nil(t, id)
	assert.ErrorIs(t, err, stsErr)
}

func TestDefaultSTSClientFactory(t *testing.T) {
	t.Setenv("AWS_PROFILE", "dev")

	provider := credentials.NewStaticCredentialsProvider("ASIAEXAMPLE", "secret", "session")
	client, err := sso.DefaultSTSClientFactory(context.Background(), "eu-west-1", provider)
	require.NoError(t, err)

	c, ok := client.(*sts.Client)
	require.True(t, ok)
	assert.Equal(t, "eu-west-1", c.Options().Region)

	creds, err := c.Options().Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ASIAEXAMPLE", creds.AccessKeyID)
}

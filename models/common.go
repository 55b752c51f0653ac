package models

// SetCredsResult is returned by a successful credential refresh.
type SetCredsResult struct {
	Profile  string
	CredKey  string
	NewCreds *AWSCredentials

	AccountID string
	RoleName  string
	Region    string
}

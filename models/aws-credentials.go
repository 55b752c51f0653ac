package models

import "time"

// AWSCredentials holds the role credentials returned by AWS SSO.
type AWSCredentials struct {
	AccessKeyID     string    `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string    `json:"secretAccessKey" yaml:"secretAccessKey"`
	SessionToken    string    `json:"sessionToken" yaml:"sessionToken"`
	Expiration      time.Time `json:"expiration" yaml:"expiration"`
}

// CallerIdentity is the STS view of a set of credentials.
type CallerIdentity struct {
	Account string `json:"Account"`
	Arn     string `json:"Arn"`
	UserID  string `json:"UserId"`
}

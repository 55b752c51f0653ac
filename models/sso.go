package models

// ProfileConfig is a profile merged with its sso-session block(s).
type ProfileConfig struct {
	Name         string `json:"name" yaml:"name"`
	Region       string `json:"region,omitempty" yaml:"region,omitempty"`
	SSORegion    string `json:"ssoRegion,omitempty" yaml:"ssoRegion,omitempty"`
	SSOAccountID string `json:"ssoAccountId" yaml:"ssoAccountId"`
	SSORoleName  string `json:"ssoRoleName" yaml:"ssoRoleName"`
	SSOStartURL  string `json:"ssoStartUrl" yaml:"ssoStartUrl"`
	SSOSession   string `json:"ssoSession,omitempty" yaml:"ssoSession,omitempty"`
}

// EffectiveRegion is the region used to reach the SSO portal API.
func (p ProfileConfig) EffectiveRegion() string {
	if p.SSORegion != "" {
		return p.SSORegion
	}
	return p.Region
}

// IsValid reports whether the profile can be used to request role credentials.
func (p ProfileConfig) IsValid() bool {
	return p.EffectiveRegion() != "" &&
		p.SSOAccountID != "" &&
		p.SSORoleName != "" &&
		p.SSOStartURL != ""
}

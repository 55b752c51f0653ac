package profile

import (
	"sort"
	"strings"

	errUtils "github.com/BerryBytes/ssocreds/internal/errors"
	"github.com/BerryBytes/ssocreds/models"
)

const (
	sessionPrefix  = "sso-session "
	profilePrefix  = "profile "
	defaultSection = "default"

	keyRegion       = "region"
	keySSORegion    = "sso_region"
	keySSOAccountID = "sso_account_id"
	keySSORoleName  = "sso_role_name"
	keySSOStartURL  = "sso_start_url"
	keySSOSession   = "sso_session"
)

// RequiredFields is what a profile needs to request role credentials.
var RequiredFields = []string{
	keyRegion + " or " + keySSORegion,
	keySSOAccountID,
	keySSORoleName,
	keySSOStartURL,
}

// Candidate is a profile merged with its session blocks, before validation.
type Candidate struct {
	Config models.ProfileConfig
	// Raw holds every merged key, for error reporting.
	Raw map[string]string
}

type blocks struct {
	profileOrder []string
	profiles     map[string]map[string]string
	sessions     map[string]map[string]string
}

// partition splits sections into profile and session blocks. Names keep the order
// in which they first appear. Repeated blocks are merged, later keys winning.
func partition(raw *models.RawConfig) blocks {
	b := blocks{
		profiles: make(map[string]map[string]string),
		sessions: make(map[string]map[string]string),
	}
	if raw == nil {
		return b
	}

	for _, sec := range raw.Sections {
		name := strings.TrimSpace(sec.Name)
		switch {
		case strings.HasPrefix(name, sessionPrefix):
			session := strings.TrimSpace(strings.TrimPrefix(name, sessionPrefix))
			b.sessions[session] = overlay(b.sessions[session], sec.Keys)
		case strings.HasPrefix(name, profilePrefix):
			b.addProfile(strings.TrimSpace(strings.TrimPrefix(name, profilePrefix)), sec.Keys)
		case name == defaultSection:
			b.addProfile(defaultSection, sec.Keys)
		}
	}
	return b
}

func (b *blocks) addProfile(name string, keys map[string]string) {
	if _, seen := b.profiles[name]; !seen {
		b.profileOrder = append(b.profileOrder, name)
	}
	b.profiles[name] = overlay(b.profiles[name], keys)
}

// merge builds a profile's view: the same-named session, then the session it
// references through sso_session, then its own keys.
func (b *blocks) merge(name string) map[string]string {
	own := b.profiles[name]
	merged := overlay(nil, b.sessions[name])
	if ref := strings.TrimSpace(own[keySSOSession]); ref != "" && ref != name {
		merged = overlay(merged, b.sessions[ref])
	}
	return overlay(merged, own)
}

func overlay(dst, src map[string]string) map[string]string {
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func toProfileConfig(name string, keys map[string]string) models.ProfileConfig {
	return models.ProfileConfig{
		Name:         name,
		Region:       keys[keyRegion],
		SSORegion:    keys[keySSORegion],
		SSOAccountID: keys[keySSOAccountID],
		SSORoleName:  keys[keySSORoleName],
		SSOStartURL:  keys[keySSOStartURL],
		SSOSession:   keys[keySSOSession],
	}
}

// Names lists profile names in discovery order.
func Names(raw *models.RawConfig) []string {
	b := partition(raw)
	return append([]string(nil), b.profileOrder...)
}

// Candidates returns every profile merged with its sessions, in discovery order.
func Candidates(raw *models.RawConfig) []Candidate {
	b := partition(raw)
	out := make([]Candidate, 0, len(b.profileOrder))
	for _, name := range b.profileOrder {
		keys := b.merge(name)
		out = append(out, Candidate{Config: toProfileConfig(name, keys), Raw: keys})
	}
	return out
}

// Resolve returns the validated profile called name.
//
// Besides completeness, it refuses profiles whose sso_start_url is shared with
// another profile: the token cache is keyed by start URL only.
func Resolve(raw *models.RawConfig, name string) (*models.ProfileConfig, error) {
	candidates := Candidates(raw)

	var target *Candidate
	names := make([]string, 0, len(candidates))
	for i := range candidates {
		names = append(names, candidates[i].Config.Name)
		if candidates[i].Config.Name == name {
			target = &candidates[i]
		}
	}
	if target == nil {
		return nil, errUtils.ProfileNotFound(name, names)
	}

	if !target.Config.IsValid() {
		keys := make([]string, 0, len(target.Raw))
		for k := range target.Raw {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, errUtils.ProfileInvalid(name, RequiredFields, target.Raw, keys)
	}

	var sharing []string
	for _, c := range candidates {
		if c.Config.SSOStartURL == target.Config.SSOStartURL {
			sharing = append(sharing, c.Config.Name)
		}
	}
	if len(sharing) > 1 {
		return nil, errUtils.AmbiguousSession(target.Config.SSOStartURL, sharing)
	}

	resolved := target.Config
	return &resolved, nil
}

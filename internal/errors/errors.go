package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfigMissing     = errors.New("aws config file not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileInvalid    = errors.New("profile is invalid")
	ErrAmbiguousSession  = errors.New("ambiguous sso session")
	ErrNoTokenAfterLogin = errors.New("no sso token after login")
)

// KnownError is a user-actionable failure. Its message is printed as-is,
// without the "unexpected error" wrapper.
type KnownError struct {
	Kind    error
	Message string
}

func (e *KnownError) Error() string {
	return e.Message
}

func (e *KnownError) Unwrap() error {
	return e.Kind
}

// Known builds a KnownError whose message is the given lines joined by newlines.
func Known(kind error, lines ...string) *KnownError {
	return &KnownError{Kind: kind, Message: strings.Join(lines, "\n")}
}

// IsKnown reports whether err (or anything it wraps) is a KnownError.
func IsKnown(err error) bool {
	var known *KnownError
	return errors.As(err, &known)
}

func ConfigMissing(path string) *KnownError {
	return Known(ErrConfigMissing,
		fmt.Sprintf("AWS config file not found at %s.", path),
		"Run `aws configure sso` to set up a profile first.",
	)
}

func ProfileNotFound(name string, known []string) *KnownError {
	lines := []string{fmt.Sprintf("Profile %q not found.", name)}
	if len(known) == 0 {
		lines = append(lines, "No profiles are configured.")
	} else {
		lines = append(lines, "Known profiles:")
		for _, k := range known {
			lines = append(lines, "  - "+k)
		}
	}
	lines = append(lines, fmt.Sprintf("Run `aws configure sso --profile %s` to create it.", name))
	return Known(ErrProfileNotFound, lines...)
}

func ProfileInvalid(name string, required []string, found map[string]string, keys []string) *KnownError {
	lines := []string{
		fmt.Sprintf("Profile %q is missing required settings.", name),
		"Required: " + strings.Join(required, ", "),
		"Found:",
	}
	if len(keys) == 0 {
		lines = append(lines, "  (nothing)")
	}
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %s = %s", k, found[k]))
	}
	return Known(ErrProfileInvalid, lines...)
}

func AmbiguousSession(startURL string, profiles []string) *KnownError {
	return Known(ErrAmbiguousSession,
		fmt.Sprintf("More than one profile uses sso_start_url %s:", startURL),
		"  "+strings.Join(profiles, ", "),
		"The cached token cannot be matched to a single profile. Keep one profile per start URL.",
	)
}

func NoTokenAfterLogin(profile, startURL string) *KnownError {
	return Known(ErrNoTokenAfterLogin,
		fmt.Sprintf("Login for profile %q finished but no valid token was found for %s.", profile, startURL),
		"Check that the profile's sso_start_url matches the one used by `aws sso login`.",
	)
}

// UsageError is a bad command line. It is rendered like a known error with a pointer to --help.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func Usage(format string, args ...interface{}) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

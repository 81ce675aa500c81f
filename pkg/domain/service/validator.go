package service

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"newsletter/pkg/domain/model"
)

const DefaultDeviceIDPattern = `^[A-Za-z0-9]+$`

var hostLabel = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// Validator is the capability every channel validator shares.
type Validator interface {
	HasName(user model.User) bool
}

// NameRule is embedded by every validator so the name check lives in one place.
type NameRule struct{}

func (NameRule) HasName(user model.User) bool {
	return strings.TrimSpace(user.Name) != ""
}

type EmailValidator struct {
	NameRule
}

func NewEmailValidator() *EmailValidator {
	return &EmailValidator{}
}

// HasValidEmail is a syntactic check only: local@domain, a dotted domain and
// no whitespace anywhere.
func (v *EmailValidator) HasValidEmail(user model.User) bool {
	email := user.Email
	if email == "" || strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return false
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return false
	}
	if !validLocalPart(local) || !validDomain(domain) {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}

func validLocalPart(local string) bool {
	return local != "" &&
		!strings.HasPrefix(local, ".") &&
		!strings.HasSuffix(local, ".") &&
		!strings.Contains(local, "..")
}

func validDomain(domain string) bool {
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !hostLabel.MatchString(label) || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}

type PushValidator struct {
	NameRule
	pattern *regexp.Regexp
}

func NewPushValidator() *PushValidator {
	return &PushValidator{pattern: regexp.MustCompile(DefaultDeviceIDPattern)}
}

// NewPushValidatorWithPattern applies a custom device id policy.
func NewPushValidatorWithPattern(pattern string) (*PushValidator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(model.ErrInvalidDevicePattern, "%q: %v", pattern, err)
	}
	return &PushValidator{pattern: re}, nil
}

func (v *PushValidator) HasValidDeviceID(user model.User) bool {
	if user.DeviceID == "" {
		return false
	}
	return v.pattern.MatchString(user.DeviceID)
}

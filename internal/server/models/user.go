// Package models defines the persisted entities of the userbase subsystem
// and their validation rules.
package models

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ymstdo/userbase/internal/common"
)

const (
	MaxNameLength        = 30
	MaxEmailLength       = 255
	MaxExplanationLength = 255
	MinPasswordLength    = 6

	// MaxIconSize caps profile icons at 2 MiB.
	MaxIconSize = 2 * 1024 * 1024
)

var (
	validNameRegex  = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	validEmailRegex = regexp.MustCompile(`^[\w+\-.]+@[a-z\d\-]+(\.[a-z\d\-]+)*\.[a-z]+$`)

	// allowedIconTypes lists accepted icon content types.
	allowedIconTypes = map[string]struct{}{
		"image/png":  {},
		"image/jpeg": {},
		"image/jpg":  {},
		"image/gif":  {},
	}
)

// User is a row of the users relation. ID is assigned once at creation and
// doubles as the external-facing uuid. PasswordDigest is derived from the
// raw password by the configured hasher; the raw value is never stored.
// Explanation and IconKey are optional; the empty string means absent.
type User struct {
	ID             string
	Name           string
	Email          string
	PasswordDigest string
	Explanation    string
	IconKey        string
	CreatedAt      time.Time
}

// ResponseData is the public-safe projection of a User, with empty strings
// for absent optionals. It never carries email or digest.
type ResponseData struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
	Icon        string `json:"icon"`
}

// ResponseData returns the user's public projection.
func (u *User) ResponseData() ResponseData {
	return ResponseData{
		UUID:        u.ID,
		Name:        u.Name,
		Explanation: u.Explanation,
		Icon:        u.IconKey,
	}
}

// NormalizeEmail lowercases an email address the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// ValidateName checks the account name: non-empty, at most 30 characters,
// restricted to [A-Za-z0-9-].
func ValidateName(name string) error {
	if name == "" {
		return common.NewValidationError("name", "must not be empty")
	}
	if len(name) > MaxNameLength {
		return common.NewValidationError("name", "must be at most 30 characters")
	}
	if !validNameRegex.MatchString(name) {
		return common.NewValidationError("name", "may only contain letters, digits and dashes")
	}
	return nil
}

// ValidateEmail checks shape and length. Callers normalize with
// NormalizeEmail before persisting.
func ValidateEmail(email string) error {
	if email == "" {
		return common.NewValidationError("email", "must not be empty")
	}
	if len(email) > MaxEmailLength {
		return common.NewValidationError("email", "must be at most 255 characters")
	}
	if !validEmailRegex.MatchString(strings.ToLower(email)) {
		return common.NewValidationError("email", "is not a valid address")
	}
	return nil
}

// ValidatePassword checks the raw password on create/update.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return common.NewValidationError("password", "must be at least 6 characters")
	}
	return nil
}

// ValidateExplanation checks the optional free-text field. The limit is
// counted in characters, not bytes, so multibyte text is not penalized.
func ValidateExplanation(explanation string) error {
	if utf8.RuneCountInString(explanation) > MaxExplanationLength {
		return common.NewValidationError("explanation", "must be at most 255 characters")
	}
	return nil
}

// ValidateIcon checks an icon's content type and size before it is handed
// to the blob store.
func ValidateIcon(contentType string, size int) error {
	if _, ok := allowedIconTypes[contentType]; !ok {
		return common.NewValidationError("icon", "content type must be png, jpeg, jpg or gif")
	}
	if size > MaxIconSize {
		return common.NewValidationError("icon", "must be at most 2 MiB")
	}
	return nil
}

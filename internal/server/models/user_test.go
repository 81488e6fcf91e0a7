package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ymstdo/userbase/internal/common"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"simple", "john1192", true},
		{"dashes", "john-doe-2", true},
		{"empty", "", false},
		{"too long", strings.Repeat("a", 31), false},
		{"max length", strings.Repeat("a", 30), true},
		{"underscore", "john_doe", false},
		{"space", "john doe", false},
		{"unicode", "ジョン", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, common.IsValidation(err), "want validation error, got %v", err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"simple", "pow@pow.com", true},
		{"subdomain", "a.b+c@mail.example.co", true},
		{"uppercase", "POW@POW.COM", true},
		{"empty", "", false},
		{"no at", "powpow.com", false},
		{"no tld", "pow@pow", false},
		{"too long", strings.Repeat("a", 250) + "@a.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, common.IsValidation(err), "want validation error, got %v", err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("password1234"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword("12345"))
	assert.Error(t, ValidatePassword(""))
}

func TestValidateExplanation(t *testing.T) {
	assert.NoError(t, ValidateExplanation(""))
	assert.NoError(t, ValidateExplanation(strings.Repeat("x", 255)))
	assert.Error(t, ValidateExplanation(strings.Repeat("x", 256)))

	// the limit counts characters, not bytes
	assert.NoError(t, ValidateExplanation(strings.Repeat("あ", 255)))
	assert.Error(t, ValidateExplanation(strings.Repeat("あ", 256)))
}

func TestValidateIcon(t *testing.T) {
	assert.NoError(t, ValidateIcon("image/png", 100))
	assert.NoError(t, ValidateIcon("image/gif", MaxIconSize))
	assert.Error(t, ValidateIcon("image/png", MaxIconSize+1))
	assert.Error(t, ValidateIcon("text/html", 10))
	assert.Error(t, ValidateIcon("", 10))
}

func TestResponseData(t *testing.T) {
	u := &User{ID: "u-1", Name: "john1192", Email: "pow@pow.com", PasswordDigest: "digest"}

	got := u.ResponseData()
	assert.Equal(t, ResponseData{UUID: "u-1", Name: "john1192"}, got)

	u.Explanation = "hi"
	u.IconKey = "icons/k.png"
	got = u.ResponseData()
	assert.Equal(t, "hi", got.Explanation)
	assert.Equal(t, "icons/k.png", got.Icon)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "pow@pow.com", NormalizeEmail("POW@Pow.Com"))
}

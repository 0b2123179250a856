package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardlink/internal/models"
)

func TestValidWebsite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty is valid", "", true},
		{"https url", "https://example.com/page", true},
		{"http url", "http://example.com", true},
		{"ftp url", "ftp://files.example.com/pub", true},
		{"missing scheme", "example.com", false},
		{"whitespace in url", "https://exa mple.com", false},
		{"scheme only", "https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidWebsite(tt.input))
		})
	}
}

func TestValidSnapchat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty is valid", "", true},
		{"letters digits underscore", "abc_123", true},
		{"minimum length", "abc", true},
		{"maximum length", "a23456789012345", true},
		{"must start with letter", "1abc", false},
		{"too short", "ab", false},
		{"too long", "a234567890123456", false},
		{"no dots", "ab.cd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidSnapchat(tt.input))
		})
	}
}

func TestValidInstagram(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty is valid", "", true},
		{"dotted handle", "john.doe", true},
		{"underscore handle", "john_doe", true},
		{"single char", "j", true},
		{"leading underscore", "_john", true},
		{"consecutive dots", "john..doe", false},
		{"trailing dot", "john.", false},
		{"too long", "a234567890123456789012345678901", false},
		{"thirty chars ok", "a23456789012345678901234567890", true},
		{"leading dot", ".john", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidInstagram(tt.input))
		})
	}
}

func TestValidLinkedin(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty is valid", "", true},
		{"bare slug", "jane-doe-123", true},
		{"full profile url", "https://www.linkedin.com/in/jane-doe", true},
		{"full profile url trailing slash", "https://www.linkedin.com/in/jane-doe/", true},
		{"wrong host", "https://linkedin.example.com/in/jane", false},
		{"slug with spaces", "jane doe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidLinkedin(tt.input))
		})
	}
}

func TestLinkedinSlug(t *testing.T) {
	assert.Equal(t, "jane-doe", LinkedinSlug("https://www.linkedin.com/in/jane-doe"))
	assert.Equal(t, "jane-doe", LinkedinSlug("https://www.linkedin.com/in/jane-doe/"))
	assert.Equal(t, "jane-doe", LinkedinSlug("jane-doe"))
	assert.Equal(t, "", LinkedinSlug(""))
}

func TestValidateCardInput(t *testing.T) {
	valid := models.CardInput{
		Name:      "Ada Example",
		Website:   "https://example.com",
		Snapchat:  "ada_example",
		Instagram: "ada.example",
		Linkedin:  "ada-example",
	}
	assert.NoError(t, ValidateCardInput(valid))

	t.Run("name required", func(t *testing.T) {
		in := valid
		in.Name = "  "
		err := ValidateCardInput(in)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("optional fields may all be empty", func(t *testing.T) {
		assert.NoError(t, ValidateCardInput(models.CardInput{Name: "Just A Name"}))
	})

	t.Run("bad website rejected", func(t *testing.T) {
		in := valid
		in.Website = "example.com"
		assert.Error(t, ValidateCardInput(in))
	})

	t.Run("bad instagram rejected", func(t *testing.T) {
		in := valid
		in.Instagram = "john..doe"
		assert.Error(t, ValidateCardInput(in))
	})
}

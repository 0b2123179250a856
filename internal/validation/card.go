// Package validation holds the field gates applied before a card is
// accepted for create or update. Empty values always pass; every
// social and contact field is optional.
package validation

import (
	"regexp"
	"strings"

	"cardlink/internal/errors"
	"cardlink/internal/models"
)

var (
	websiteRegex  = regexp.MustCompile(`^(https?|ftp)://[^\s/$.?#].[^\s]*$`)
	snapchatRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{2,14}$`)
	// Instagram handles additionally reject ".." runs and a trailing
	// dot; RE2 has no lookahead, so those checks live in ValidInstagram.
	instagramRegex    = regexp.MustCompile(`^\w[\w.]{0,29}$`)
	linkedinSlugRegex = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	linkedinURLRegex  = regexp.MustCompile(`^https://www\.linkedin\.com/in/[a-zA-Z0-9-]+/?$`)
)

// ValidWebsite reports whether s is an acceptable website URL.
func ValidWebsite(s string) bool {
	return s == "" || websiteRegex.MatchString(s)
}

// ValidSnapchat reports whether s is an acceptable Snapchat handle:
// a letter followed by 2 to 14 letters, digits or underscores.
func ValidSnapchat(s string) bool {
	return s == "" || snapchatRegex.MatchString(s)
}

// ValidInstagram reports whether s is an acceptable Instagram handle:
// up to 30 word characters and dots, no consecutive dots, no trailing dot.
func ValidInstagram(s string) bool {
	if s == "" {
		return true
	}
	if strings.Contains(s, "..") || strings.HasSuffix(s, ".") {
		return false
	}
	return instagramRegex.MatchString(s)
}

// ValidLinkedin reports whether s is an acceptable LinkedIn value.
// The canonical stored form is the bare profile slug; a full profile
// URL is also accepted and reduced to its slug by LinkedinSlug.
func ValidLinkedin(s string) bool {
	return s == "" || linkedinSlugRegex.MatchString(s) || linkedinURLRegex.MatchString(s)
}

// LinkedinSlug returns the bare profile slug for a stored value,
// stripping the https://www.linkedin.com/in/ prefix when present.
func LinkedinSlug(s string) string {
	const prefix = "https://www.linkedin.com/in/"
	if strings.HasPrefix(s, prefix) {
		return strings.TrimSuffix(strings.TrimPrefix(s, prefix), "/")
	}
	return s
}

// ValidateCardInput checks every gated field of a draft or update.
// The first failing field is reported; nil means the input is admissible.
func ValidateCardInput(in models.CardInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.Validation("name", "is required")
	}
	if !ValidWebsite(in.Website) {
		return errors.Validation("website", "must be a valid URL")
	}
	if !ValidSnapchat(in.Snapchat) {
		return errors.Validation("snapchat", "must be a valid Snapchat handle")
	}
	if !ValidInstagram(in.Instagram) {
		return errors.Validation("instagram", "must be a valid Instagram handle")
	}
	if !ValidLinkedin(in.Linkedin) {
		return errors.Validation("linkedin", "must be a profile slug or LinkedIn URL")
	}
	return nil
}

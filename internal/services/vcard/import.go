package vcard

import (
	"fmt"
	"strings"

	govcard "github.com/emersion/go-vcard"

	"cardlink/internal/models"
)

// Import parses a vCard 3.0 body into a card draft. Line endings are
// normalized first so both CRLF and bare-LF bodies decode.
func Import(body string) (models.CardInput, error) {
	normalized := strings.ReplaceAll(strings.ReplaceAll(body, "\r\n", "\n"), "\n", "\r\n")

	card, err := govcard.NewDecoder(strings.NewReader(normalized)).Decode()
	if err != nil {
		return models.CardInput{}, fmt.Errorf("failed to decode vCard: %w", err)
	}

	in := models.CardInput{
		Name:      fieldValue(card, govcard.FieldName),
		Telephone: fieldValue(card, govcard.FieldTelephone),
		Email:     fieldValue(card, govcard.FieldEmail),
		Website:   fieldValue(card, govcard.FieldURL),
		Birthday:  fieldValue(card, govcard.FieldBirthday),
	}
	if in.Name == "" {
		in.Name = fieldValue(card, govcard.FieldFormattedName)
	}

	for _, f := range card["X-SOCIALPROFILE"] {
		switch strings.ToLower(f.Params.Get(govcard.ParamType)) {
		case "linkedin":
			in.Linkedin = profileHandle(f.Value, "https://www.linkedin.com/in/")
		case "instagram":
			in.Instagram = profileHandle(f.Value, "https://www.instagram.com/")
		case "snapchat":
			in.Snapchat = profileHandle(f.Value, "https://www.snapchat.com/add/")
		}
	}

	if photo := card.Get(govcard.FieldPhoto); photo != nil && photo.Params.Get("VALUE") == "URL" {
		in.Image = photo.Value
	}

	return in, nil
}

func fieldValue(card govcard.Card, key string) string {
	if f := card.Get(key); f != nil {
		return f.Value
	}
	return ""
}

// profileHandle reduces a full profile URL back to its handle; raw
// handles pass through untouched.
func profileHandle(v, base string) string {
	return strings.TrimSuffix(strings.TrimPrefix(v, base), "/")
}

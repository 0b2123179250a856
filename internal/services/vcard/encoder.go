package vcard

import (
	"strings"
	"time"

	"cardlink/internal/models"
)

// Property order of the emitted vCard 3.0 block. Both encoders emit
// every property, with an empty value when the card has none.
const (
	begin   = "BEGIN:VCARD"
	version = "VERSION:3.0"
	end     = "END:VCARD"
)

// Encode renders a card as a downloadable vCard 3.0 block with the
// photo embedded as base64 JPEG and social profiles carrying the raw
// stored handles. Encoding is total; it never fails, whatever shape
// the card is in.
func Encode(c *models.Card) string {
	var b strings.Builder
	b.WriteString(begin + "\n")
	b.WriteString(version + "\n")
	b.WriteString("N:" + c.Name + "\n")
	b.WriteString("TEL:" + c.Telephone + "\n")
	b.WriteString("EMAIL:" + c.Email + "\n")
	b.WriteString("URL:" + c.Website + "\n")
	b.WriteString("BDAY:" + FormatBirthday(c.Birthday) + "\n")
	b.WriteString("PHOTO;TYPE=JPEG;ENCODING=BASE64:" + stripDataURI(c.Image) + "\n")
	b.WriteString("X-SOCIALPROFILE;TYPE=linkedin:" + c.Linkedin + "\n")
	b.WriteString("X-SOCIALPROFILE;TYPE=instagram:" + c.Instagram + "\n")
	b.WriteString("X-SOCIALPROFILE;TYPE=snapchat:" + c.Snapchat + "\n")
	b.WriteString(end)
	return b.String()
}

// EncodeQRPayload renders the QR variant of the same block: the photo
// is referenced by URL instead of inlined (QR symbols have tight size
// limits) and the social lines carry full profile URLs so a scanning
// phone can open them directly.
func EncodeQRPayload(c *models.Card) string {
	var b strings.Builder
	b.WriteString(begin + "\n")
	b.WriteString(version + "\n")
	b.WriteString("N:" + c.Name + "\n")
	b.WriteString("TEL:" + c.Telephone + "\n")
	b.WriteString("EMAIL:" + c.Email + "\n")
	b.WriteString("URL:" + c.Website + "\n")
	b.WriteString("BDAY:" + FormatBirthday(c.Birthday) + "\n")
	b.WriteString("PHOTO;TYPE=JPEG;VALUE=URL:" + c.Image + "\n")
	b.WriteString("X-SOCIALPROFILE;TYPE=linkedin:" + socialURL("https://www.linkedin.com/in/", c.Linkedin) + "\n")
	b.WriteString("X-SOCIALPROFILE;TYPE=instagram:" + socialURL("https://www.instagram.com/", c.Instagram) + "\n")
	b.WriteString("X-SOCIALPROFILE;TYPE=snapchat:" + socialURL("https://www.snapchat.com/add/", c.Snapchat) + "\n")
	b.WriteString(end)
	return b.String()
}

// Filename returns the suggested download name for a card's .vcf file.
func Filename(c *models.Card) string {
	return c.Name + ".vcf"
}

// FormatBirthday normalizes an ISO-8601 date or timestamp to YYYY-MM-DD.
// Unparseable or empty input yields an empty string, never an error.
func FormatBirthday(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format("2006-01-02")
		}
	}
	return ""
}

// stripDataURI removes a leading data:...;base64, prefix so only the
// raw base64 payload lands on the PHOTO line.
func stripDataURI(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.Index(s, ","); i >= 0 {
		return s[i+1:]
	}
	return s
}

// socialURL composes a full profile URL from a handle. An empty handle
// stays empty so the line renders with an empty value like every other
// missing property.
func socialURL(base, handle string) string {
	if handle == "" {
		return ""
	}
	return base + handle
}

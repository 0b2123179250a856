/*
Package vcard renders cards as vCard 3.0 text and parses vCard bodies
back into card drafts.

Two encoders share the same property order (N, TEL, EMAIL, URL, BDAY,
PHOTO, three X-SOCIALPROFILE lines) and differ only in how the photo
and social profiles are written:

	// Downloadable .vcf: photo inlined as base64, raw handles.
	body := vcard.Encode(card)

	// QR payload: photo by URL, full profile URLs.
	payload := vcard.EncodeQRPayload(card)

Both are total functions. A missing optional field renders as its
property key with an empty value; an absent or unparseable birthday
renders BDAY with an empty value. Nothing here validates field
contents; the gates in internal/validation run before a card is ever
stored.
*/
package vcard

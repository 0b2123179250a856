package models

import "time"

// Card represents a user's digital business card.
// PublicID is the identifier exposed over the API; it is assigned by the
// server on create and never changes afterwards.
type Card struct {
	ID        uint   `gorm:"primarykey" json:"-"`
	PublicID  string `gorm:"uniqueIndex;not null" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"-"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	// Birthday keeps whatever ISO-8601 form the client sent
	// ("1990-05-02" or a full timestamp); it is normalized to
	// YYYY-MM-DD only at encode time.
	Birthday  string `json:"birthday"`
	Website   string `json:"website"`
	Snapchat  string `json:"snapchat"`
	Instagram string `json:"instagram"`
	// Linkedin stores the bare profile slug; full URLs are composed
	// at encode time.
	Linkedin string `json:"linkedin"`
	// Image is the uploaded filename once persisted. A base64 data URI
	// may be carried transiently for vCard PHOTO embedding.
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CardInput represents the editable fields of a card, used for both
// create (draft, no id yet) and update (full replace).
type CardInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Birthday  string `json:"birthday"`
	Website   string `json:"website"`
	Snapchat  string `json:"snapchat"`
	Instagram string `json:"instagram"`
	Linkedin  string `json:"linkedin"`
	Image     string `json:"image"`
}

// Apply copies the input onto the card, replacing every editable field.
func (c *Card) Apply(in CardInput) {
	c.Name = in.Name
	c.Email = in.Email
	c.Telephone = in.Telephone
	c.Birthday = in.Birthday
	c.Website = in.Website
	c.Snapchat = in.Snapchat
	c.Instagram = in.Instagram
	c.Linkedin = in.Linkedin
	c.Image = in.Image
}

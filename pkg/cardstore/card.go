package cardstore

// Card is the wire representation of a stored card. ID is assigned by
// the server on create and is the only field clients never send.
type Card struct {
	ID        string `json:"id"`
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

// Draft holds the editable fields of a card, used for both create and
// full-replace update.
type Draft struct {
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

// Status mirrors the request lifecycle a UI renders from. Flags are
// only cleared by Reset.
type Status struct {
	IsLoading bool
	IsError   bool
	IsSuccess bool
	Message   string
}

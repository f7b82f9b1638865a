package models

import "time"

// Categories lists the vault categories offered by the client.
var Categories = []string{
	"Email",
	"Development",
	"Finance",
	"Entertainment",
	"Shopping",
	"Professional",
	"Social",
	"Other",
}

// Entry is one stored credential record. Optional fields use the empty
// string for "absent".
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Password  string    `json:"password"`
	URL       string    `json:"url,omitempty"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Notes     string    `json:"notes,omitempty"`
}

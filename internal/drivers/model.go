// Package drivers holds driver records and their licences in memory.
package drivers

import "time"

// Fields is the user-entered part of a driver record.
type Fields struct {
	LastName            string `json:"last_name"`
	FirstName           string `json:"first_name"`
	MiddleName          string `json:"middle_name"`
	Passport            string `json:"passport"`
	RegistrationAddress string `json:"registration_address"`
	RegistrationCity    string `json:"registration_city,omitempty"`
	LivingAddress       string `json:"living_address"`
	LivingCity          string `json:"living_city,omitempty"`
	Workplace           string `json:"workplace,omitempty"`
	Position            string `json:"position,omitempty"`
	Phone               string `json:"phone"`
	Email               string `json:"email"`
	Photo               string `json:"photo"`
	Notes               string `json:"notes,omitempty"`
}

// License is one issued driving licence.
type License struct {
	Number     string `json:"number"`
	IssueDate  string `json:"issue_date"`
	ExpiryDate string `json:"expiry_date"`
	Authority  string `json:"authority"`
	Categories string `json:"categories"`
	Photo      string `json:"photo,omitempty"`
}

// Driver is a stored record. ID never changes after creation.
type Driver struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Fields
	Licenses []License `json:"licenses"`
}

// FullName returns "Last First Middle", skipping empty parts.
func (d Driver) FullName() string {
	name := d.LastName
	for _, part := range []string{d.FirstName, d.MiddleName} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}

func (d Driver) clone() Driver {
	c := d
	c.Licenses = append([]License(nil), d.Licenses...)
	return c
}

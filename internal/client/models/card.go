package models

import "strings"

// Card is a business card record as the backend stores it.
type Card struct {
	// ID is assigned by the backend.
	ID ID `json:"id"`
	// FullName is the person's name. Required.
	FullName string `json:"fullName"`
	// JobTitle is optional.
	JobTitle string `json:"jobTitle"`
	// Phone is required.
	Phone string `json:"phone"`
	// Email is optional.
	Email string `json:"email"`
	// Address is optional.
	Address string `json:"address"`
}

// CardForm is the shape the card editor works with. Note the crossed names:
// Title holds the person's name and Name holds the job title.
type CardForm struct {
	Title   string
	Name    string
	Phone   string
	Email   string
	Address string
}

// CardPayload is the create/update request body. Every field is always
// sent, empty strings included, because updates replace the whole record.
type CardPayload struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// ToBackend maps the form shape to the wire shape:
// Title->FullName, Name->JobTitle, Phone, Email and Address unchanged.
func ToBackend(f CardForm) CardPayload {
	return CardPayload{
		FullName: f.Title,
		JobTitle: f.Name,
		Phone:    f.Phone,
		Email:    f.Email,
		Address:  f.Address,
	}
}

// FromBackend is the inverse of ToBackend and primes the editor for an
// existing card.
func FromBackend(c Card) CardForm {
	return CardForm{
		Title:   c.FullName,
		Name:    c.JobTitle,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}

// Trimmed returns a copy of the form with surrounding whitespace removed
// from every field.
func (f CardForm) Trimmed() CardForm {
	return CardForm{
		Title:   strings.TrimSpace(f.Title),
		Name:    strings.TrimSpace(f.Name),
		Phone:   strings.TrimSpace(f.Phone),
		Email:   strings.TrimSpace(f.Email),
		Address: strings.TrimSpace(f.Address),
	}
}

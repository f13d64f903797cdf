package contact

// ContactRequest represents a contact form submission.
// Website is a honeypot field: legitimate clients always leave it empty.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,contact_email"`
	Service string `json:"service"`
	Message string `json:"message" validate:"required,max=5000"`
	Website string `json:"website"`
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

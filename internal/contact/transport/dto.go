package transport

// ContactRequest is the landing contact form payload. Field names follow
// the public site's Spanish form fields.
type ContactRequest struct {
	Name      string   `json:"nombre" validate:"required,min=2,max=120"`
	Email     string   `json:"correo" validate:"required,email"`
	Phone     string   `json:"telefono" validate:"required,min=8,max=20"`
	Location  string   `json:"ubicacion" validate:"max=300"`
	Message   string   `json:"mensaje" validate:"required,min=5,max=2000"`
	Latitude  *float64 `json:"latitud" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitud" validate:"omitempty,min=-180,max=180"`
}

// ContactResponse acknowledges a submitted contact request.
type ContactResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	OutOfCoverage bool   `json:"outOfCoverage,omitempty"`
	Warning       string `json:"warning,omitempty"`
}

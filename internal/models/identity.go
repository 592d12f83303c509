package models

// Identity describes the signed-in user as asserted by the external identity provider.
// It is display-only: nothing here is validated or stored beyond the request.
type Identity struct {
	Subject     string `json:"sub"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

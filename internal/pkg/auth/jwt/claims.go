package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the JWT claims issued on login and registration.
// The token is a pointer to a server-side session record; identity fields are
// included so clients can render the account menu without an extra round trip.
type Payload struct {
	// StandardClaims embeds the standard JWT fields (Exp, Iat, Iss) used for
	// token validity checks.
	jwt.StandardClaims `json:"standard_claims"`

	// SessionID identifies the device session this token belongs to.
	// All guarded endpoints resolve it through the session manager, so a
	// logged-out session invalidates the token immediately.
	SessionID string `json:"session_id"`

	// Email is the account e-mail the session was established for.
	Email string `json:"email"`

	// Name is the account holder's display name, if set.
	Name string `json:"name,omitempty"`
}

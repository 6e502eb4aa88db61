/*
Package handler provides the HTTP handlers and routing setup for the Serenity Hotel server.

This file holds the authentication handlers: registration (with auto-login),
login, and logout.
*/
package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"serenity/internal/app/session"
	"serenity/internal/app/user"
	"serenity/internal/pkg/auth/jwt"
	"serenity/internal/pkg/errs"
	"serenity/internal/pkg/logx"
	"serenity/internal/pkg/req"
	"serenity/internal/pkg/resp"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordSpecials is the set of accepted special characters, matching the
// rules shown on the registration form.
const passwordSpecials = "@$!%*#?&"

// validPassword checks the password strength rules: at least 8 characters with
// at least one letter, one digit, and one special character.
func validPassword(password string) bool {
	if utf8.RuneCountInString(password) < 8 || utf8.RuneCountInString(password) > 72 {
		return false
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}

	return hasLetter && hasDigit && hasSpecial
}

// sessionResponse builds the token + user payload returned by register and login.
func sessionResponse(deps *AppDeps, sess *session.Session, u *user.User) (map[string]any, *errs.CustomError) {
	payload := &jwt.Payload{
		SessionID: sess.ID,
		Email:     sess.Email,
		Name:      sess.Name,
	}

	token, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionExpiration)
	if err != nil {
		logx.Error(err, "failed to generate session token", "email", sess.Email)
		return nil, errs.NewError(errs.ErrUnknown)
	}

	return map[string]any{
		"token": token,
		"user": map[string]any{
			"id":             u.ID,
			"email":          u.Email,
			"name":           u.Name,
			"profilePicture": u.ProfilePicture,
			"createdAt":      u.CreatedAt,
		},
	}, nil
}

type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// HandleRegister creates a new account and signs the visitor in.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if identity := jwt.GetPayloadFromContext(r); identity != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input RegisterInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input.Name = strings.TrimSpace(input.Name)
		input.Email = strings.ToLower(strings.TrimSpace(input.Email))

		if utf8.RuneCountInString(input.Name) < 3 {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidName))
			return
		}

		if !emailRegex.MatchString(input.Email) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidEmail))
			return
		}

		if !validPassword(input.Password) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidPassword))
			return
		}

		if input.ConfirmPassword != "" && input.ConfirmPassword != input.Password {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidPassword))
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		newUser := &user.User{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: string(hashedPassword),
		}

		if err := deps.Users.Create(r.Context(), newUser); err != nil {
			if errors.Is(err, user.ErrDuplicateEmail) {
				logx.Warn("registration conflict: e-mail already exists", "email", input.Email)
				resp.RespondError(w, r, errs.NewError(errs.ErrDuplicateEmail))
				return
			}

			logx.Error(err, "failed to create user account")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		// Registration implies login.
		sess, err := deps.Sessions.Login(r.Context(), newUser.Email, newUser.Name, newUser.ProfilePicture)
		if err != nil {
			logx.Error(err, "failed to establish session after registration", "email", newUser.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		data, customErr := sessionResponse(deps, sess, newUser)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, data)
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies the credentials against the account collection and
// establishes a session. Unknown e-mail and wrong password produce the same
// generic error so responses do not reveal which accounts exist.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if identity := jwt.GetPayloadFromContext(r); identity != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input LoginInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input.Email = strings.ToLower(strings.TrimSpace(input.Email))

		account, err := deps.Users.GetByEmail(r.Context(), input.Email)
		if err != nil {
			logx.Warn("login: account lookup failed", "email", input.Email, "error", err)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
			logx.Warn("login: password mismatch", "email", input.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		sess, err := deps.Sessions.Login(r.Context(), account.Email, account.Name, account.ProfilePicture)
		if err != nil {
			logx.Error(err, "failed to establish session after login", "email", account.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		data, customErr := sessionResponse(deps, sess, account)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, data)
	}
}

// HandleLogout destroys the caller's session. Logging out without a session
// (or twice) succeeds all the same: the end state is identical.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondSuccess(w, r, nil)
			return
		}

		if err := deps.Sessions.Logout(r.Context(), identity.SessionID); err != nil {
			logx.Error(err, "logout: failed to delete session", "session_id", identity.SessionID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
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

// resumeSession resolves the caller's bearer token to a live session record.
// A token whose session no longer exists is treated as not signed in.
func resumeSession(deps *AppDeps, r *http.Request) (*session.Session, *errs.CustomError) {
	identity := jwt.GetPayloadFromContext(r)
	if identity == nil {
		return nil, errs.NewError(errs.ErrUnauthorized)
	}

	sess, err := deps.Sessions.Resume(r.Context(), identity.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, errs.NewError(errs.ErrUnauthorized)
		}

		logx.Error(err, "failed to resume session", "session_id", identity.SessionID)
		return nil, errs.NewError(errs.ErrUnknown)
	}

	return sess, nil
}

// HandleGetProfile returns the signed-in visitor's account details.
func HandleGetProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, customErr := resumeSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		account, err := deps.Users.GetByEmail(r.Context(), sess.Email)
		if err != nil {
			logx.Error(err, "failed to load account for session", "email", sess.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return
		}

		resp.RespondSuccess(w, r, account)
	}
}

type UpdateProfileInput struct {
	Name           *string `json:"name"`
	ProfilePicture *string `json:"profilePicture"`
}

// HandleUpdateProfile applies a partial update to the caller's account and
// refreshes the session so subsequent tokens carry the new display name.
func HandleUpdateProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, customErr := resumeSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input UpdateProfileInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Name == nil && input.ProfilePicture == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if input.Name != nil {
			trimmed := strings.TrimSpace(*input.Name)
			if utf8.RuneCountInString(trimmed) < 3 {
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidName))
				return
			}
			input.Name = &trimmed
		}

		oldPicture := sess.ProfilePicture

		account, refreshed, err := deps.Sessions.UpdateUser(r.Context(), sess.ID, user.Patch{
			Name:           input.Name,
			ProfilePicture: input.ProfilePicture,
		})
		if err != nil {
			logx.Error(err, "failed to update profile", "email", sess.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		// Reap the replaced picture in the background so a slow object store
		// does not hold up the response.
		if input.ProfilePicture != nil && oldPicture != "" && oldPicture != *input.ProfilePicture {
			go func(key string) {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := deps.StorageService.Delete(ctx, key); err != nil {
					logx.Warn("failed to delete replaced profile picture", "key", key)
				}
			}(oldPicture)
		}

		payload := &jwt.Payload{
			SessionID: refreshed.ID,
			Email:     refreshed.Email,
			Name:      refreshed.Name,
		}

		token, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionExpiration)
		if err != nil {
			logx.Error(err, "failed to refresh session token", "email", refreshed.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"token": token,
			"user":  account,
		})
	}
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// HandleChangePassword replaces the caller's password after re-verifying the
// current one. Existing sessions stay valid; only the credential changes.
func HandleChangePassword(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, customErr := resumeSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input ChangePasswordInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !validPassword(input.NewPassword) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidPassword))
			return
		}

		account, err := deps.Users.GetByEmail(r.Context(), sess.Email)
		if err != nil {
			logx.Error(err, "failed to load account for password change", "email", sess.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.CurrentPassword)); err != nil {
			logx.Warn("password change: current password mismatch", "email", sess.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if err := deps.Users.UpdatePassword(r.Context(), sess.Email, string(hashed)); err != nil {
			logx.Error(err, "failed to update password", "email", sess.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}

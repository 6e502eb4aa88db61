package handler

import (
	"net/http"
	"strings"

	"serenity/internal/app/storage"
	"serenity/internal/pkg/errs"
	"serenity/internal/pkg/logx"
	"serenity/internal/pkg/randx"
	"serenity/internal/pkg/req"
	"serenity/internal/pkg/resp"
)

// allowedPictureTypes lists the accepted profile picture MIME types.
var allowedPictureTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type PresignPictureInput struct {
	MimeType string `json:"mimeType"`
	FileSize int64  `json:"fileSize"`
}

// HandlePresignPictureUpload issues a presigned URL so the browser can upload
// a profile picture straight to the object store. The returned key is what the
// client later stores on the profile.
func HandlePresignPictureUpload(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, customErr := resumeSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input PresignPictureInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if _, ok := allowedPictureTypes[input.MimeType]; !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnsupportedMediaType))
			return
		}

		if input.FileSize <= 0 || input.FileSize > storage.MaxPictureSize {
			resp.RespondError(w, r, errs.NewError(errs.ErrRequestEntityTooLarge))
			return
		}

		account, err := deps.Users.GetByEmail(r.Context(), sess.Email)
		if err != nil {
			logx.Error(err, "failed to load account for picture upload", "email", sess.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return
		}

		key, err := randx.PictureKey(account.ID)
		if err != nil {
			logx.Error(err, "failed to generate picture key")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		url, err := deps.StorageService.PresignUpload(
			r.Context(),
			key,
			input.MimeType,
			input.FileSize,
			storage.PresignedURLDuration,
		)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrFileStorageFailed))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"uploadUrl":  url,
			"pictureKey": key,
		})
	}
}

// HandlePictureDownloadURL issues a presigned download URL for one of the
// caller's own pictures. Keys outside the caller's namespace are rejected.
func HandlePictureDownloadURL(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, customErr := resumeSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		key := r.URL.Query().Get("key")
		if key == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		account, err := deps.Users.GetByEmail(r.Context(), sess.Email)
		if err != nil {
			logx.Error(err, "failed to load account for picture download", "email", sess.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return
		}

		if !strings.HasPrefix(key, "pictures/"+account.ID+"/") {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		url, err := deps.StorageService.PresignDownload(r.Context(), key, storage.PresignedURLDuration)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrFileStorageFailed))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"downloadUrl": url,
		})
	}
}

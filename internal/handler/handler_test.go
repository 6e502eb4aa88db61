package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"serenity/internal/app/chat"
	"serenity/internal/app/chatbot"
	"serenity/internal/app/reservation"
	"serenity/internal/app/session"
	"serenity/internal/app/user"
	"serenity/internal/configs"
	"serenity/internal/pkg/errs"
)

// fakeStorage satisfies storage.StorageService without touching S3.
type fakeStorage struct {
	mu      sync.Mutex
	deleted []string
}

func (f *fakeStorage) PresignUpload(_ context.Context, key, _ string, _ int64, _ time.Duration) (string, error) {
	return "https://bucket.example.com/upload/" + key, nil
}

func (f *fakeStorage) PresignDownload(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://bucket.example.com/download/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return nil
}

// deletedKeys snapshots the keys removed so far.
func (f *fakeStorage) deletedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := make([]string, len(f.deleted))
	copy(copied, f.deleted)
	return copied
}

type testEnv struct {
	router       http.Handler
	users        *user.MemoryStore
	reservations *reservation.MemoryStore
	storage      *fakeStorage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := user.NewMemoryStore()
	reservations := reservation.NewMemoryStore()
	fake := &fakeStorage{}

	cfg := &configs.AppConfig{
		Environment:    "test",
		Port:           8080,
		BotReplyDelay:  0,
		AllowedOrigins: []string{},
		JWTSecret:      "test-secret",
	}

	deps := &AppDeps{
		Config:         cfg,
		Users:          users,
		Sessions:       session.NewManager(session.NewMemoryStore(), users),
		Reservations:   reservations,
		ChatManager:    chat.NewManager(chatbot.NewEngine()),
		StorageService: fake,
	}

	return &testEnv{
		router:       NewRouter(deps),
		users:        users,
		reservations: reservations,
		storage:      fake,
	}
}

// apiResponse mirrors the envelope every endpoint returns.
type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var parsed apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
	}

	return rec, parsed
}

type authData struct {
	Token string `json:"token"`
	User  struct {
		ID             string `json:"id"`
		Email          string `json:"email"`
		Name           string `json:"name"`
		ProfilePicture string `json:"profilePicture"`
	} `json:"user"`
}

func (e *testEnv) register(t *testing.T, name, email, password string) authData {
	t.Helper()

	_, res := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if res.Code != 0 {
		t.Fatalf("register failed: code %d (%s)", res.Code, res.Message)
	}

	var data authData
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("unmarshal register data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("register should return a session token")
	}
	return data
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		body     map[string]string
		wantCode int
	}{
		{"short name", map[string]string{
			"name": "Al", "email": "al@example.com", "password": "Abc12345!",
		}, errs.ErrInvalidName},
		{"bad email", map[string]string{
			"name": "Ana Souza", "email": "not-an-email", "password": "Abc12345!",
		}, errs.ErrInvalidEmail},
		{"password too short", map[string]string{
			"name": "Ana Souza", "email": "ana@example.com", "password": "Ab1!",
		}, errs.ErrInvalidPassword},
		{"password without digit", map[string]string{
			"name": "Ana Souza", "email": "ana@example.com", "password": "Abcdefg!",
		}, errs.ErrInvalidPassword},
		{"password without special", map[string]string{
			"name": "Ana Souza", "email": "ana@example.com", "password": "Abcd1234",
		}, errs.ErrInvalidPassword},
		{"mismatched confirmation", map[string]string{
			"name": "Ana Souza", "email": "ana@example.com",
			"password": "Abc12345!", "confirmPassword": "Xyz12345!",
		}, errs.ErrInvalidPassword},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, res := env.do(t, http.MethodPost, "/api/auth/register", "", tc.body)
			if res.Code != tc.wantCode {
				t.Errorf("code = %d, want %d (%s)", res.Code, tc.wantCode, res.Message)
			}
		})
	}

	if env.users.Len() != 0 {
		t.Errorf("failed registrations should not create accounts, got %d", env.users.Len())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	env.register(t, "Ana Souza", "ana@example.com", "Abc12345!")

	_, res := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Outra Ana", "email": "ana@example.com", "password": "Xyz12345!",
	})
	if res.Code != errs.ErrDuplicateEmail {
		t.Fatalf("code = %d, want %d", res.Code, errs.ErrDuplicateEmail)
	}

	if env.users.Len() != 1 {
		t.Errorf("duplicate registration should leave the store unchanged, got %d accounts", env.users.Len())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Ana Souza", "ana@example.com", "Abc12345!")

	// Wrong password and unknown account look identical to the caller.
	_, wrongPass := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ana@example.com", "password": "Wrong123!",
	})
	_, unknown := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ghost@example.com", "password": "Abc12345!",
	})

	if wrongPass.Code != errs.ErrInvalidCredentials {
		t.Errorf("wrong password code = %d, want %d", wrongPass.Code, errs.ErrInvalidCredentials)
	}
	if unknown.Code != errs.ErrInvalidCredentials {
		t.Errorf("unknown account code = %d, want %d", unknown.Code, errs.ErrInvalidCredentials)
	}
	if wrongPass.Message != unknown.Message {
		t.Errorf("both failures should read the same: %q vs %q", wrongPass.Message, unknown.Message)
	}
}

func TestRegisterWhileSignedInRejected(t *testing.T) {
	env := newTestEnv(t)
	auth := env.register(t, "Ana Souza", "ana@example.com", "Abc12345!")

	_, res := env.do(t, http.MethodPost, "/api/auth/register", auth.Token, map[string]string{
		"name": "Beto Lima", "email": "beto@example.com", "password": "Abc12345!",
	})
	if res.Code != errs.ErrAlreadyLoggedIn {
		t.Fatalf("code = %d, want %d", res.Code, errs.ErrAlreadyLoggedIn)
	}
}

func TestAccountLifecycle(t *testing.T) {
	env := newTestEnv(t)

	// Register signs the visitor in right away.
	auth := env.register(t, "Ana Souza", "ana@example.com", "Abc12345!")

	rec, profile := env.do(t, http.MethodGet, "/api/user/profile", auth.Token, nil)
	if rec.Code != http.StatusOK || profile.Code != 0 {
		t.Fatalf("profile after register: http %d, code %d", rec.Code, profile.Code)
	}

	// Sign out; the token still parses but its session is gone.
	if _, res := env.do(t, http.MethodPost, "/api/auth/logout", auth.Token, nil); res.Code != 0 {
		t.Fatalf("logout: code %d", res.Code)
	}

	rec, stale := env.do(t, http.MethodGet, "/api/user/profile", auth.Token, nil)
	if rec.Code != http.StatusUnauthorized || stale.Code != errs.ErrUnauthorized {
		t.Fatalf("profile after logout: http %d, code %d", rec.Code, stale.Code)
	}

	// A second logout with the dead token is still a success.
	if _, res := env.do(t, http.MethodPost, "/api/auth/logout", auth.Token, nil); res.Code != 0 {
		t.Fatalf("repeated logout: code %d", res.Code)
	}

	// Signing back in with the same credentials restores the identity.
	_, login := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ana@example.com", "password": "Abc12345!",
	})
	if login.Code != 0 {
		t.Fatalf("login: code %d (%s)", login.Code, login.Message)
	}

	var fresh authData
	if err := json.Unmarshal(login.Data, &fresh); err != nil {
		t.Fatalf("unmarshal login data: %v", err)
	}
	if fresh.User.Email != "ana@example.com" || fresh.User.Name != "Ana Souza" {
		t.Errorf("login returned wrong identity: %+v", fresh.User)
	}
	if fresh.Token == auth.Token {
		t.Error("a new login should mint a new session token")
	}
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	auth := env.register(t, "Ana Souza", "ana@example.com", "Abc12345!")

	_, res := env.do(t, http.MethodPatch, "/api/user/profile", auth.Token, map[string]string{
		"name": "Ana S. Oliveira",
	})
	if res.Code != 0 {
		t.Fatalf("update: code %d (%s)", res.Code, res.Message)
	}

	var updated authData
	if err := json.Unmarshal(res.Data, &updated); err != nil {
		t.Fatalf("unmarshal update data: %v", err)
	}
	if updated.User.Name != "Ana S. Oliveira" {
		t.Errorf("name not updated: %q", updated.User.Name)
	}
	if updated.Token == "" {
		t.Error("update should refresh the session token")
	}

	// Empty patches and too-short names are rejected.
	if _, res := env.do(t, http.MethodPatch, "/api/user/profile", auth.Token, map[string]string{}); res.Code != errs.ErrInvalidParams {
		t.Errorf("empty patch code = %d, want %d", res.Code, errs.ErrInvalidParams)
	}
	if _, res := env.do(t, http.MethodPatch, "/api/user/profile", auth.Token, map[string]string{"name": "Al"}); res.Code != errs.ErrInvalidName {
		t.Errorf("short name code = %d, want %d", res.Code, errs.ErrInvalidName)
	}
}

func TestCreateInquiry(t *testing.T) {
	env := newTestEnv(t)

	checkIn := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 1, 4).Format("2006-01-02")

	_, res := env.do(t, http.MethodPost, "/api/reservations", "", map[string]any{
		"checkIn":  checkIn,
		"checkOut": checkOut,
		"roomType": "deluxe",
		"adults":   2,
		"children": 0,
		"name":     "Ana Souza",
		"email":    "ana@example.com",
		"phone":    "+55 11 91234-5678",
	})
	if res.Code != 0 {
		t.Fatalf("inquiry: code %d (%s)", res.Code, res.Message)
	}

	stored := env.reservations.Inquiries()
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored inquiry, got %d", len(stored))
	}
	if stored[0].RoomType != "deluxe" || stored[0].Email != "ana@example.com" {
		t.Errorf("stored inquiry mismatch: %+v", stored[0])
	}
}

func TestCreateInquiryValidation(t *testing.T) {
	env := newTestEnv(t)

	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	later := time.Now().AddDate(0, 1, 4).Format("2006-01-02")

	base := func() map[string]any {
		return map[string]any{
			"checkIn": future, "checkOut": later, "roomType": "standard",
			"adults": 1, "children": 0,
			"name": "Ana Souza", "email": "ana@example.com", "phone": "+55 11 91234-5678",
		}
	}

	tests := []struct {
		name     string
		mutate   func(map[string]any)
		wantCode int
	}{
		{"missing name", func(b map[string]any) { b["name"] = "" }, errs.ErrReservationFieldsMissing},
		{"missing dates", func(b map[string]any) { b["checkIn"] = "" }, errs.ErrReservationFieldsMissing},
		{"malformed date", func(b map[string]any) { b["checkIn"] = "10/09/2026" }, errs.ErrReservationDatesInvalid},
		{"check-in in the past", func(b map[string]any) { b["checkIn"] = "2020-01-01" }, errs.ErrReservationDatesInvalid},
		{"check-out before check-in", func(b map[string]any) { b["checkOut"] = future; b["checkIn"] = later }, errs.ErrReservationDatesInvalid},
		{"unknown room type", func(b map[string]any) { b["roomType"] = "penthouse" }, errs.ErrRoomTypeInvalid},
		{"zero adults", func(b map[string]any) { b["adults"] = 0 }, errs.ErrReservationFieldsMissing},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := base()
			tc.mutate(body)
			_, res := env.do(t, http.MethodPost, "/api/reservations", "", body)
			if res.Code != tc.wantCode {
				t.Errorf("code = %d, want %d (%s)", res.Code, tc.wantCode, res.Message)
			}
		})
	}

	if len(env.reservations.Inquiries()) != 0 {
		t.Errorf("rejected inquiries must not be stored")
	}
}

func TestContactForm(t *testing.T) {
	env := newTestEnv(t)

	_, res := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Ana Souza", "email": "ana@example.com", "message": "Vocês têm acessibilidade para cadeirantes?",
	})
	if res.Code != 0 {
		t.Fatalf("contact: code %d (%s)", res.Code, res.Message)
	}

	_, missing := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Ana Souza", "email": "ana@example.com", "message": "",
	})
	if missing.Code != errs.ErrContactFieldsMissing {
		t.Errorf("code = %d, want %d", missing.Code, errs.ErrContactFieldsMissing)
	}

	if got := len(env.reservations.ContactMessages()); got != 1 {
		t.Errorf("expected 1 stored message, got %d", got)
	}
}

func TestContentEndpoints(t *testing.T) {
	env := newTestEnv(t)

	_, rooms := env.do(t, http.MethodGet, "/api/content/rooms", "", nil)
	if rooms.Code != 0 {
		t.Fatalf("rooms: code %d", rooms.Code)
	}
	var roomList []map[string]any
	if err := json.Unmarshal(rooms.Data, &roomList); err != nil {
		t.Fatalf("unmarshal rooms: %v", err)
	}
	if len(roomList) != 4 {
		t.Errorf("expected 4 room categories, got %d", len(roomList))
	}

	_, services := env.do(t, http.MethodGet, "/api/content/services", "", nil)
	if services.Code != 0 {
		t.Fatalf("services: code %d", services.Code)
	}
	var serviceList []map[string]any
	if err := json.Unmarshal(services.Data, &serviceList); err != nil {
		t.Fatalf("unmarshal services: %v", err)
	}
	if len(serviceList) != 4 {
		t.Errorf("expected 4 services, got %d", len(serviceList))
	}

	_, testimonials := env.do(t, http.MethodGet, "/api/content/testimonials", "", nil)
	if testimonials.Code != 0 {
		t.Fatalf("testimonials: code %d", testimonials.Code)
	}
	var reviews []struct {
		Author string `json:"author"`
		Rating int    `json:"rating"`
	}
	if err := json.Unmarshal(testimonials.Data, &reviews); err != nil {
		t.Fatalf("unmarshal testimonials: %v", err)
	}
	if len(reviews) != 3 {
		t.Fatalf("expected 3 testimonials, got %d", len(reviews))
	}
	for _, review := range reviews {
		if review.Author == "" || review.Rating < 1 || review.Rating > 5 {
			t.Errorf("implausible testimonial: %+v", review)
		}
	}
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	auth := env.register(t, "Ana Souza", "ana@example.com", "Abc12345!")

	// Wrong current password and weak new password are both rejected.
	if _, res := env.do(t, http.MethodPost, "/api/user/password", auth.Token, map[string]string{
		"currentPassword": "Wrong123!", "newPassword": "Nova1234!",
	}); res.Code != errs.ErrInvalidCredentials {
		t.Errorf("wrong current code = %d, want %d", res.Code, errs.ErrInvalidCredentials)
	}
	if _, res := env.do(t, http.MethodPost, "/api/user/password", auth.Token, map[string]string{
		"currentPassword": "Abc12345!", "newPassword": "fraca",
	}); res.Code != errs.ErrInvalidPassword {
		t.Errorf("weak new code = %d, want %d", res.Code, errs.ErrInvalidPassword)
	}

	if _, res := env.do(t, http.MethodPost, "/api/user/password", auth.Token, map[string]string{
		"currentPassword": "Abc12345!", "newPassword": "Nova1234!",
	}); res.Code != 0 {
		t.Fatalf("change password: code %d (%s)", res.Code, res.Message)
	}

	// The session survives the change.
	if rec, res := env.do(t, http.MethodGet, "/api/user/profile", auth.Token, nil); rec.Code != http.StatusOK || res.Code != 0 {
		t.Errorf("profile after change: http %d, code %d", rec.Code, res.Code)
	}

	// Only the new credential signs in from now on.
	if _, res := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ana@example.com", "password": "Abc12345!",
	}); res.Code != errs.ErrInvalidCredentials {
		t.Errorf("old password login code = %d, want %d", res.Code, errs.ErrInvalidCredentials)
	}
	if _, res := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ana@example.com", "password": "Nova1234!",
	}); res.Code != 0 {
		t.Errorf("new password login code = %d (%s)", res.Code, res.Message)
	}

	// Anonymous callers cannot change anything.
	if rec, res := env.do(t, http.MethodPost, "/api/user/password", "", map[string]string{
		"currentPassword": "Nova1234!", "newPassword": "Outra123!",
	}); rec.Code != http.StatusUnauthorized || res.Code != errs.ErrUnauthorized {
		t.Errorf("anonymous change: http %d, code %d", rec.Code, res.Code)
	}
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	env := newTestEnv(t)

	rec, res := env.do(t, http.MethodGet, "/api/nothing/here", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("http status = %d, want 404", rec.Code)
	}
	if res.Code != errs.ErrNotFound {
		t.Errorf("code = %d, want %d", res.Code, errs.ErrNotFound)
	}
}

func TestRejectUnknownJSONFields(t *testing.T) {
	env := newTestEnv(t)

	_, res := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ana@example.com", "password": "Abc12345!", "rememberMe": "yes",
	})
	if res.Code != errs.ErrInvalidJSONFormat {
		t.Errorf("code = %d, want %d (%s)", res.Code, errs.ErrInvalidJSONFormat, res.Message)
	}
}

func TestPresignPictureUpload(t *testing.T) {
	env := newTestEnv(t)
	auth := env.register(t, "Ana Souza", "ana@example.com", "Abc12345!")

	_, res := env.do(t, http.MethodPost, "/api/user/picture/presign", auth.Token, map[string]any{
		"mimeType": "image/png", "fileSize": 1024,
	})
	if res.Code != 0 {
		t.Fatalf("presign: code %d (%s)", res.Code, res.Message)
	}

	var data struct {
		UploadURL  string `json:"uploadUrl"`
		PictureKey string `json:"pictureKey"`
	}
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("unmarshal presign data: %v", err)
	}
	wantPrefix := fmt.Sprintf("pictures/%s/", auth.User.ID)
	if len(data.PictureKey) <= len(wantPrefix) || data.PictureKey[:len(wantPrefix)] != wantPrefix {
		t.Errorf("picture key %q should live under %q", data.PictureKey, wantPrefix)
	}
	if data.UploadURL == "" {
		t.Error("presign should return an upload URL")
	}

	// Unsupported type and oversized files are rejected.
	if _, res := env.do(t, http.MethodPost, "/api/user/picture/presign", auth.Token, map[string]any{
		"mimeType": "application/pdf", "fileSize": 1024,
	}); res.Code != errs.ErrUnsupportedMediaType {
		t.Errorf("bad mime code = %d, want %d", res.Code, errs.ErrUnsupportedMediaType)
	}
	if _, res := env.do(t, http.MethodPost, "/api/user/picture/presign", auth.Token, map[string]any{
		"mimeType": "image/png", "fileSize": 50 << 20,
	}); res.Code != errs.ErrRequestEntityTooLarge {
		t.Errorf("oversize code = %d, want %d", res.Code, errs.ErrRequestEntityTooLarge)
	}

	// Anonymous callers get nothing.
	rec, anon := env.do(t, http.MethodPost, "/api/user/picture/presign", "", map[string]any{
		"mimeType": "image/png", "fileSize": 1024,
	})
	if rec.Code != http.StatusUnauthorized || anon.Code != errs.ErrUnauthorized {
		t.Errorf("anonymous presign: http %d, code %d", rec.Code, anon.Code)
	}
}

func TestReplacedPictureIsDeleted(t *testing.T) {
	env := newTestEnv(t)
	auth := env.register(t, "Ana Souza", "ana@example.com", "Abc12345!")

	first := "pictures/" + auth.User.ID + "/one"
	if _, res := env.do(t, http.MethodPatch, "/api/user/profile", auth.Token, map[string]string{
		"profilePicture": first,
	}); res.Code != 0 {
		t.Fatalf("first picture update: code %d", res.Code)
	}

	second := "pictures/" + auth.User.ID + "/two"
	if _, res := env.do(t, http.MethodPatch, "/api/user/profile", auth.Token, map[string]string{
		"profilePicture": second,
	}); res.Code != 0 {
		t.Fatalf("second picture update: code %d", res.Code)
	}

	// The old object is reaped asynchronously.
	var deleted []string
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		deleted = env.storage.deletedKeys()
		if len(deleted) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if len(deleted) != 1 || deleted[0] != first {
		t.Errorf("expected replaced key %q to be deleted, got %v", first, deleted)
	}
}

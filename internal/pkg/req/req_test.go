package req

import (
	"net/http/httptest"
	"strings"
	"testing"

	"serenity/internal/pkg/errs"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func bind(t *testing.T, contentType, body string) *errs.CustomError {
	t.Helper()

	r := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	r.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	var dst loginBody
	return BindJSON(w, r, &dst)
}

func TestBindJSONAccepts(t *testing.T) {
	if err := bind(t, "application/json", `{"email":"a@b.c","password":"x"}`); err != nil {
		t.Fatalf("valid body rejected: %v", err)
	}
}

func TestBindJSONContentType(t *testing.T) {
	err := bind(t, "text/plain", `{"email":"a@b.c"}`)
	if err == nil || err.Code != errs.ErrUnsupportedMediaType {
		t.Fatalf("expected unsupported media type, got %v", err)
	}

	// Charset suffixes are fine.
	if err := bind(t, "application/json; charset=utf-8", `{"email":"a@b.c"}`); err != nil {
		t.Fatalf("charset suffix rejected: %v", err)
	}
}

func TestBindJSONUnknownField(t *testing.T) {
	err := bind(t, "application/json", `{"email":"a@b.c","rememberMe":true}`)
	if err == nil || err.Code != errs.ErrInvalidJSONFormat {
		t.Fatalf("expected invalid JSON format, got %v", err)
	}
}

func TestBindJSONTrailingContent(t *testing.T) {
	err := bind(t, "application/json", `{"email":"a@b.c"}{"email":"d@e.f"}`)
	if err == nil || err.Code != errs.ErrExtraContentInBody {
		t.Fatalf("expected extra content error, got %v", err)
	}
}

func TestBindJSONOversizedBody(t *testing.T) {
	huge := `{"email":"` + strings.Repeat("a", int(MaxJSONBodySize)) + `"}`
	err := bind(t, "application/json", huge)
	if err == nil || err.Code != errs.ErrRequestEntityTooLarge {
		t.Fatalf("expected entity too large, got %v", err)
	}
}

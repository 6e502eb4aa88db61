package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"serenity/internal/pkg/auth/jwt"
	"serenity/internal/pkg/errs"
	"serenity/internal/pkg/limiter"
	"serenity/internal/pkg/logx"
	"serenity/internal/pkg/resp"
)

// NewRouter assembles the full HTTP surface: marketing content, booking and
// contact forms, account management, picture storage, and the assistant
// WebSocket endpoint.
func NewRouter(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(logx.RequestLogger())

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(corsMiddleware.Handler)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		resp.RespondError(w, req, errs.NewError(errs.ErrNotFound))
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		resp.RespondSuccess(w, req, map[string]any{
			"status":              "ok",
			"activeConversations": deps.ChatManager.ActiveConversations(),
		})
	})

	// Credential endpoints get a tight per-IP budget; everything else shares a
	// looser one.
	authLimiter := limiter.NewIPRateLimiter(rate.Limit(2), 10)
	apiLimiter := limiter.NewIPRateLimiter(rate.Limit(20), 40)

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))

		api.Group(func(public chi.Router) {
			public.Use(apiLimiter.Middleware)

			public.Get("/content/rooms", HandleListRooms())
			public.Get("/content/services", HandleListServices())
			public.Get("/content/testimonials", HandleListTestimonials())

			public.Post("/reservations", HandleCreateInquiry(deps))
			public.Post("/contact", HandleContact(deps))

			public.Post("/auth/logout", HandleLogout(deps))

			public.Get("/user/profile", HandleGetProfile(deps))
			public.Patch("/user/profile", HandleUpdateProfile(deps))
			public.Post("/user/picture/presign", HandlePresignPictureUpload(deps))
			public.Get("/user/picture", HandlePictureDownloadURL(deps))
		})

		api.Group(func(credentials chi.Router) {
			credentials.Use(authLimiter.Middleware)

			credentials.Post("/auth/register", HandleRegister(deps))
			credentials.Post("/auth/login", HandleLogin(deps))
			credentials.Post("/user/password", HandleChangePassword(deps))
		})
	})

	wsLimiter := limiter.NewIPRateLimiter(rate.Limit(1), 10)
	r.With(wsLimiter.Middleware).Get("/ws/chat", HandleChatWebSocket(deps))

	return r
}

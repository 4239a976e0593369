package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/snapspot-api/internal/application/picture"
	"github.com/snapspot-api/internal/application/request"
	"github.com/snapspot-api/internal/application/user"
	"github.com/snapspot-api/internal/config"
	"github.com/snapspot-api/internal/transport/http/handler"
	appmiddleware "github.com/snapspot-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	userDeps := user.ServiceDeps{
		UserRepo:         deps.UserRepo,
		VerificationRepo: deps.VerificationRepo,
		Mailer:           deps.Mailer,
		JWTProvider:      deps.JWTProvider,
		FrontendURL:      cfg.FrontendURL,
	}
	if deps.GoogleVerifier != nil {
		userDeps.GoogleVerifier = deps.GoogleVerifier
	}
	userSvc := user.NewService(userDeps)
	requestSvc := request.NewService(request.ServiceDeps{
		RequestRepo: deps.RequestRepo,
		Publisher:   deps.Publisher,
	})
	pictureSvc := picture.NewService(picture.ServiceDeps{
		PictureRepo: deps.PictureRepo,
		Objects:     deps.S3Store,
	})

	healthH := handler.NewHealthHandler()
	userH := handler.NewUserHandler(userSvc)
	requestH := handler.NewRequestHandler(requestSvc)
	pictureH := handler.NewPictureHandler(pictureSvc)

	r.Get("/", healthH.Hello)
	r.Get("/health", healthH.Ping)

	r.Route("/api/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.With(sensitiveRL.Limit).Post("/users", userH.Register)
		r.With(sensitiveRL.Limit).Post("/login", userH.Login)
		r.With(sensitiveRL.Limit).Post("/auth/google", userH.GoogleLogin)
		r.Get("/verify-email/{token}", userH.VerifyEmail)
		r.With(sensitiveRL.Limit).Post("/resend-verification", userH.ResendVerification)

		r.Get("/requests", requestH.List)
		r.Get("/requests/{request_id}", requestH.Get)

		r.Get("/pictures", pictureH.List)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/users/me", userH.Me)
			r.Post("/requests", requestH.Create)
			r.Post("/pictures", pictureH.Upload)
			r.Delete("/pictures/{picture_id}", pictureH.Delete)
		})
	})

	return r
}

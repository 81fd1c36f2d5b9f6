package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mogith007/skillswap/internal/api/handlers"
	mw "github.com/mogith007/skillswap/internal/api/middleware"
	"github.com/mogith007/skillswap/internal/api/types"
)

type Dependencies struct {
	Authenticator  mw.Authenticator
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int

	HealthHandler *handlers.HealthHandler
	AuthHandler   *handlers.AuthHandler
	UserHandler   *handlers.UserHandler
	SkillHandler  *handlers.SkillHandler
	SwapHandler   *handlers.SwapHandler
	RatingHandler *handlers.RatingHandler
	AdminHandler  *handlers.AdminHandler
	ChatHandler   *handlers.ChatHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS(dep.AllowedOrigins))
	r.Use(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	r.Use(chimid.Compress(5))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, types.Fail("Route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, types.Fail("Method not allowed"))
	})

	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/readyz", dep.HealthHandler.Readiness)
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	requireUser := mw.Auth(dep.Authenticator)
	requireAdmin := mw.AdminAuth(dep.Authenticator)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", dep.AuthHandler.Register)
			ar.Post("/login", dep.AuthHandler.Login)
			ar.Post("/forgot-password", dep.AuthHandler.ForgotPassword)
			ar.Post("/reset-password", dep.AuthHandler.ResetPassword)
			ar.With(requireUser).Get("/me", dep.AuthHandler.Me)
			ar.With(requireUser).Post("/logout", dep.AuthHandler.Logout)
		})

		api.Route("/user", func(ur chi.Router) {
			ur.Get("/search", dep.UserHandler.Search)
			ur.Group(func(pr chi.Router) {
				pr.Use(requireUser)
				pr.Get("/profile", dep.UserHandler.Profile)
				pr.Put("/profile", dep.UserHandler.UpdateProfile)
				pr.Put("/availability", dep.UserHandler.UpdateAvailability)
				pr.Put("/skills", dep.UserHandler.UpdateSkills)
			})
			ur.Get("/{id}", dep.UserHandler.Get)
		})

		api.Route("/skill", func(sr chi.Router) {
			sr.Get("/", dep.SkillHandler.Search)
			sr.Get("/popular", dep.SkillHandler.Popular)
		})

		api.Route("/swap", func(sr chi.Router) {
			sr.Use(requireUser)
			sr.Post("/request", dep.SwapHandler.Create)
			sr.Get("/requests", dep.SwapHandler.List)
			sr.Get("/request/{id}", dep.SwapHandler.Get)
			sr.Put("/request/{id}", dep.SwapHandler.UpdateStatus)
		})

		api.Route("/rating", func(rr chi.Router) {
			rr.With(requireUser).Post("/", dep.RatingHandler.Create)
			rr.Get("/user/{userId}", dep.RatingHandler.ListForUser)
			rr.With(requireUser).Get("/my-ratings", dep.RatingHandler.Mine)
		})

		api.Route("/admin", func(ar chi.Router) {
			ar.Post("/login", dep.AdminHandler.Login)
			ar.Group(func(pr chi.Router) {
				pr.Use(requireAdmin)
				pr.Get("/dashboard", dep.AdminHandler.Dashboard)
				pr.Get("/users", dep.AdminHandler.Users)
				pr.Get("/swap-requests", dep.AdminHandler.SwapRequests)
			})
		})

		api.Route("/chat", func(cr chi.Router) {
			cr.Use(requireUser)
			cr.Post("/", dep.ChatHandler.Start)
			cr.Get("/", dep.ChatHandler.List)
			cr.Get("/{id}/messages", dep.ChatHandler.Messages)
			cr.Post("/{id}/messages", dep.ChatHandler.Send)
		})
	})

	return r
}

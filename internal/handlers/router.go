package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/commforge/community_backend/internal/config"
	"github.com/commforge/community_backend/internal/middleware"
	"github.com/commforge/community_backend/internal/services"
)

// Deps bundles everything the HTTP layer needs.
type Deps struct {
	Levels   *services.LevelService
	Access   *services.CourseAccessService
	Triggers *services.TriggerService
	Reports  *services.ReportService
}

// NewRouter wires the admin and trigger API. All routes sit behind JWT
// auth; rate limiting applies per IP globally and per user once
// authenticated.
func NewRouter(cfg *config.Config, deps Deps) http.Handler {
	validate := validator.New()

	levelHandler := NewLevelHandler(deps.Levels, validate)
	courseHandler := NewCourseHandler(deps.Access, validate)
	triggerHandler := NewTriggerHandler(deps.Triggers, validate)
	reportHandler := NewReportHandler(deps.Reports)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerUser, cfg.RateLimitPerIP, cfg.RateLimitWindow)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(limiter.Handler)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret, limiter))

		r.Route("/communities/{communityID}", func(r chi.Router) {
			r.Get("/levels", levelHandler.ListLevels)
			r.Put("/levels", levelHandler.UpdateLevels)
			r.Get("/members/{userID}/level", levelHandler.GetMemberLevel)
			r.Get("/leaderboard.xlsx", reportHandler.ExportLeaderboard)
		})

		r.Route("/courses/{courseID}", func(r chi.Router) {
			r.Get("/requirement", courseHandler.GetRequirement)
			r.Put("/requirement", courseHandler.SetRequirement)
			r.Get("/access", courseHandler.CheckAccess)
		})

		r.Route("/triggers", func(r chi.Router) {
			r.Post("/post-created", triggerHandler.PostCreated)
			r.Post("/comment-created", triggerHandler.CommentCreated)
			r.Post("/post-liked", triggerHandler.PostLiked)
			r.Post("/post-unliked", triggerHandler.PostUnliked)
			r.Post("/comment-liked", triggerHandler.CommentLiked)
			r.Post("/comment-unliked", triggerHandler.CommentUnliked)
			r.Post("/lesson-completed", triggerHandler.LessonCompleted)
		})
	})

	return r
}

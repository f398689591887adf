package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/memberhubhq/memberhub-backend/api/controllers"
	"github.com/memberhubhq/memberhub-backend/api/middleware"
	"github.com/memberhubhq/memberhub-backend/internal/auth"
	"github.com/memberhubhq/memberhub-backend/internal/contents"
	"github.com/memberhubhq/memberhub-backend/internal/events"
	"github.com/memberhubhq/memberhub-backend/internal/members"
	"github.com/memberhubhq/memberhub-backend/internal/reports"
	"github.com/memberhubhq/memberhub-backend/internal/teams"
	"github.com/memberhubhq/memberhub-backend/pkg/auth/session"
	"github.com/memberhubhq/memberhub-backend/pkg/config"
	"github.com/memberhubhq/memberhub-backend/pkg/db"
	"github.com/memberhubhq/memberhub-backend/pkg/logger"
	"github.com/memberhubhq/memberhub-backend/pkg/metrics"
	"github.com/memberhubhq/memberhub-backend/pkg/redis"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DBPinger    db.Pinger
	RedisPinger redis.Pinger
	Sessions    session.AccessSessionChecker
	HTTPMetrics *metrics.HTTPMetrics
	MetricsHTTP http.Handler

	Auth     auth.Service
	Members  members.Service
	Teams    teams.Service
	Events   events.Service
	Contents contents.Service
	Reports  reports.Service
}

// NewRouter assembles the chi router with the legacy /api route table.
func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(d.HTTPMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.DBPinger, d.RedisPinger))
	})

	if d.MetricsHTTP != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHTTP)
	} else {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.Register(d.Auth, logg))
			r.Post("/login", controllers.Login(d.Auth, cfg.JWT, logg))
			r.Post("/refresh", controllers.Refresh(d.Auth, cfg.JWT, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, d.Sessions, logg))
				r.Post("/logout", controllers.Logout(d.Auth, cfg.JWT, logg))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, d.Sessions, logg))

			r.Route("/members", func(r chi.Router) {
				r.Get("/", controllers.MemberList(d.Members, logg))
				r.Post("/", controllers.MemberCreate(d.Members, logg))
				r.Get("/{id}", controllers.MemberGet(d.Members, logg))
				r.Put("/{id}", controllers.MemberUpdate(d.Members, logg))
				r.Delete("/{id}", controllers.MemberDelete(d.Members, logg))
				r.Get("/{id}/profile", controllers.MemberGet(d.Members, logg))
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", controllers.TeamList(d.Teams, logg))
				r.Post("/", controllers.TeamCreate(d.Teams, logg))
				r.Get("/{id}", controllers.TeamGet(d.Teams, logg))
				r.Put("/{id}", controllers.TeamUpdate(d.Teams, logg))
				r.Delete("/{id}", controllers.TeamDelete(d.Teams, logg))
				r.Post("/{id}/members/{member_id}", controllers.TeamAddMember(d.Teams, logg))
				r.Delete("/{id}/members/{member_id}", controllers.TeamRemoveMember(d.Teams, logg))
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", controllers.EventList(d.Events, logg))
				r.Get("/{id}", controllers.EventGet(d.Events, logg))
				r.Post("/create", controllers.EventCreate(d.Events, logg))
				r.Put("/update/{id}", controllers.EventUpdate(d.Events, logg))
				r.Delete("/delete/{id}", controllers.EventDelete(d.Events, logg))
				r.Post("/{id}/attendees/{member_id}", controllers.EventAddAttendee(d.Events, logg))
				r.Delete("/{id}/attendees/{member_id}", controllers.EventRemoveAttendee(d.Events, logg))
			})

			r.Get("/list_contents", controllers.ContentList(d.Contents, logg))
			r.Get("/contents_by_id/{id}", controllers.ContentGet(d.Contents, logg))
			r.Route("/contents", func(r chi.Router) {
				r.Post("/create", controllers.ContentCreate(d.Contents, logg))
				r.Put("/update/{id}", controllers.ContentUpdate(d.Contents, logg))
				r.Delete("/delete/{id}", controllers.ContentDelete(d.Contents, logg))
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", controllers.ReportList(d.Reports, logg))
				r.Get("/byid/{id}", controllers.ReportGet(d.Reports, logg))
				r.Post("/create", controllers.ReportCreate(d.Reports, logg))
				r.Put("/update/{id}", controllers.ReportUpdate(d.Reports, logg))
				r.Delete("/delete/{id}", controllers.ReportDelete(d.Reports, logg))
				r.Post("/{id}/submit", controllers.ReportSubmit(d.Reports, logg))
			})
		})
	})

	return r
}

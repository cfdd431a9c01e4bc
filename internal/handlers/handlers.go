package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/bikeathon/docs"
	"github.com/GlebRadaev/bikeathon/internal/config"
	athleteshandlers "github.com/GlebRadaev/bikeathon/internal/handlers/athletes"
	paymentshandlers "github.com/GlebRadaev/bikeathon/internal/handlers/payments"
	statshandlers "github.com/GlebRadaev/bikeathon/internal/handlers/stats"
	teamshandlers "github.com/GlebRadaev/bikeathon/internal/handlers/teams"
	"github.com/GlebRadaev/bikeathon/internal/service"
	"github.com/GlebRadaev/bikeathon/pkg/auth"
	pkgmiddleware "github.com/GlebRadaev/bikeathon/pkg/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AthleteHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetBySlug(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type TeamHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateIntent(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AthleteHandler AthleteHandler
	TeamHandler    TeamHandler
	PaymentHandler PaymentHandler
	StatsHandler   StatsHandler

	adminPassword string
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		AthleteHandler: athleteshandlers.New(s.AthleteService),
		TeamHandler:    teamshandlers.New(s.TeamService),
		PaymentHandler: paymentshandlers.New(s.DonationService, cfg.WebhookSecret),
		StatsHandler:   statshandlers.New(s.StatsService),
		adminPassword:  cfg.AdminPassword,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		pkgmiddleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/athletes", func(r chi.Router) {
			r.Get("/", h.AthleteHandler.List)
			r.Get("/{slug}", h.AthleteHandler.GetBySlug)

			r.Group(func(r chi.Router) {
				r.Use(auth.AdminMiddleware(h.adminPassword))
				r.Post("/", h.AthleteHandler.Create)
				r.Put("/{id}", h.AthleteHandler.Update)
			})
		})
		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.TeamHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(auth.AdminMiddleware(h.adminPassword))
				r.Post("/", h.TeamHandler.Create)
				r.Put("/{id}", h.TeamHandler.Update)
			})
		})
		r.Post("/payments", h.PaymentHandler.CreateIntent)
		r.Post("/webhooks/payment", h.PaymentHandler.Webhook)
		r.Get("/stats", h.StatsHandler.Get)
	})

	return r
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/health", h.health)
		r.Post("/v1/auth/register", h.register)
		r.Post("/v1/auth/login", h.login)
	})

	// routes protected by bearer-token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/v1/profile", h.getProfiles)
		r.Post("/v1/profile", h.createProfile)
		r.Put("/v1/profile/{profileID}", h.updateProfile)

		r.Get("/v1/vip", h.getVIPs)
		r.Post("/v1/vip", h.createVIP)
		r.Delete("/v1/vip/{vipID}", h.deleteVIP)

		r.Post("/v1/sync/push", h.pushSync)
		r.Get("/v1/sync/pull", h.pullSync)

		r.Get("/v1/recommendations/deferral-windows", h.deferralWindows)

		r.Get("/v1/user/me", h.me)
		r.Post("/v1/user/upgrade-pro", h.upgradeToPro)
	})

	return router
}

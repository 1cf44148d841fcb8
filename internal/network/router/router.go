package router

import (
	"net/http"

	"github.com/elevateglobal/elevate-wallet/internal/blob"
	"github.com/elevateglobal/elevate-wallet/internal/config"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/elevateglobal/elevate-wallet/internal/network/handlers"
	"github.com/elevateglobal/elevate-wallet/internal/network/middleware"
	"github.com/elevateglobal/elevate-wallet/internal/ratelimit"
	"github.com/elevateglobal/elevate-wallet/internal/services"
	"github.com/elevateglobal/elevate-wallet/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config      config.Config
	Identity    services.IdentityService
	Ledger      services.LedgerService
	Withdrawals services.WithdrawalsService
	TopUps      services.TopUpsService
	Packages    services.PackagesService
	Limiter     ratelimit.Limiter
}

func NewRouter(config config.Config, storage storage.Storage, attachments blob.Store, notifier services.Notifier, limiter ratelimit.Limiter) *Router {
	return &Router{
		Config:      config,
		Identity:    services.NewIdentity(config, storage.Members),
		Ledger:      services.NewLedger(storage.Members, storage.Earnings, storage.Transactions, storage.Notifications),
		Withdrawals: services.NewWithdrawals(storage.Members, storage.Earnings, storage.Withdrawals, notifier),
		TopUps:      services.NewTopUps(storage.Members, storage.TopUps, attachments, notifier),
		Packages:    services.NewPackages(storage.Members, storage.Earnings, storage.Packages, notifier),
		Limiter:     limiter,
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Handle("/attachments/*", http.StripPrefix("/attachments/", http.FileServer(http.Dir(router.Config.Attachment.Dir))))
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Use(middleware.RateLimitHandle(router.Limiter))
		r.Route("/member", func(r chi.Router) {
			r.Post("/register", handlers.RegisterMemberHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateMemberHandler(router.Identity))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Get("/balance", handlers.GetBalanceHandler(router.Ledger))
				r.Get("/transactions", handlers.GetTransactionsHandler(router.Ledger))
				r.Get("/notifications", handlers.GetNotificationsHandler(router.Ledger))
				r.Put("/notifications/{notificationID}", handlers.MarkNotificationReadHandler(router.Ledger))
				r.Post("/withdrawals", handlers.WithdrawHandler(router.Withdrawals))
				r.Get("/withdrawals", handlers.GetWithdrawalsHandler(router.Withdrawals))
				r.Post("/topups", handlers.TopUpHandler(router.TopUps))
				r.Get("/topups", handlers.GetTopUpsHandler(router.TopUps))
				r.Post("/packages", handlers.EnrollPackageHandler(router.Packages))
				r.Get("/packages", handlers.GetEnrollmentsHandler(router.Packages))
			})
		})
		r.Route("/admin", func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Group(func(r chi.Router) {
				// withdrawal approvals belong to accounting, admins included
				r.Use(middleware.RequireRole(models.RoleAdmin, models.RoleAccounting))
				r.Get("/withdrawals", handlers.GetPendingWithdrawalsHandler(router.Withdrawals))
				r.Put("/withdrawals/{requestID}", handlers.DecideWithdrawalHandler(router.Withdrawals))
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleAdmin))
				r.Get("/topups", handlers.GetPendingTopUpsHandler(router.TopUps))
				r.Put("/topups/{requestID}", handlers.DecideTopUpHandler(router.TopUps))
			})
		})
	})
	return r
}

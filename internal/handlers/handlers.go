package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/gitmarket/gitmarket/docs"
	"github.com/gitmarket/gitmarket/internal/dto"
	bountyhandlers "github.com/gitmarket/gitmarket/internal/handlers/bounties"
	profilehandlers "github.com/gitmarket/gitmarket/internal/handlers/profile"
	repohandlers "github.com/gitmarket/gitmarket/internal/handlers/repos"
	wallethandlers "github.com/gitmarket/gitmarket/internal/handlers/wallet"
	"github.com/gitmarket/gitmarket/internal/service"
	"github.com/gitmarket/gitmarket/pkg/auth"
	"github.com/gitmarket/gitmarket/pkg/logger"
	"github.com/gitmarket/gitmarket/pkg/utils"
)

const requestTimeout = 30 * time.Second

type ProfileHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
}

type RepoHandler interface {
	Search(w http.ResponseWriter, r *http.Request)
}

type BountyHandler interface {
	ListBounties(w http.ResponseWriter, r *http.Request)
	GetBounty(w http.ResponseWriter, r *http.Request)
	CreateBounty(w http.ResponseWriter, r *http.Request)
	CancelBounty(w http.ResponseWriter, r *http.Request)
	CreateSubmission(w http.ResponseWriter, r *http.Request)
	ApproveSubmission(w http.ResponseWriter, r *http.Request)
	RejectSubmission(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ProfileHandler ProfileHandler
	RepoHandler    RepoHandler
	BountyHandler  BountyHandler
	WalletHandler  WalletHandler

	profileService profilehandlers.Service
	validator      auth.TokenValidator
	accessLog      io.Writer
}

func New(s *service.Services, validator auth.TokenValidator, accessLog io.Writer) *Handlers {
	return &Handlers{
		ProfileHandler: profilehandlers.New(s.ProfileService),
		RepoHandler:    repohandlers.New(s.RepoService),
		BountyHandler:  bountyhandlers.New(s.BountyService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		profileService: s.ProfileService,
		validator:      validator,
		accessLog:      accessLog,
	}
}

// provisionProfile makes sure every authenticated caller owns a profile
// before any handler touches balances or foreign keys.
func (h *Handlers) provisionProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if _, err := h.profileService.GetOrCreate(r.Context(), identity); err != nil {
			utils.RespondWithDomainError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	dto.HealthResponseDTO
//	@Router		/api/health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.HealthResponseDTO{Status: "ok"})
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		cors.Handler(cors.Options{
			AllowOriginFunc:  func(*http.Request, string) bool { return true },
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(requestTimeout),
	)
	if h.accessLog != nil {
		r.Use(logger.AccessLog(h.accessLog))
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", Health)
		r.Get("/repos/search", h.RepoHandler.Search)
		r.Get("/bounties", h.BountyHandler.ListBounties)
		r.Get("/bounties/{id}", h.BountyHandler.GetBounty)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.validator), h.provisionProfile)
			r.Get("/me", h.ProfileHandler.Me)
			r.Get("/wallet", h.WalletHandler.GetWallet)
			r.Post("/bounties", h.BountyHandler.CreateBounty)
			r.Delete("/bounties/{id}", h.BountyHandler.CancelBounty)
			r.Route("/bounties/{id}/submissions", func(r chi.Router) {
				r.Post("/", h.BountyHandler.CreateSubmission)
				r.Post("/{sid}/approve", h.BountyHandler.ApproveSubmission)
				r.Post("/{sid}/reject", h.BountyHandler.RejectSubmission)
			})
		})
	})

	return r
}

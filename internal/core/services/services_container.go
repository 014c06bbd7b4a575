package services

import (
	portsrepo "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/repositories"
	portssvc "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/platform/cache"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, registry *cache.Registry) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Fund = NewFundService(
		repos.FundRepo,
		WithFundCacheInvalidator(registry),
		WithFundTransactionReader(repos.TransactionRepo),
	)

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		WithTransactionCacheInvalidator(registry),
		WithFundReader(repos.FundRepo),
	)

	container.Reporting = NewReportingService(
		repos.TransactionRepo,
		WithReportingCaches(registry, cfg.ReportCacheTTL),
	)

	container.User = NewUserService(repos.UserRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.FundSvcFacade        = (*fundService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ReportingSvc         = (*reportingService)(nil)
)

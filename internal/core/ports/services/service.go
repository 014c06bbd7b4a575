package services

// CacheInvalidator is implemented by the caching layer. Services call
// Invalidate with a logical resource name ("funds", "finance") before a
// mutation returns success, so cached views are recomputed on next read.
type CacheInvalidator interface {
	Invalidate(resource string)
}

// ServiceContainer holds all the services exposed to the handler layer.
type ServiceContainer struct {
	Fund               FundSvcFacade
	Transaction        TransactionSvcFacade
	Reporting          ReportingSvc
	User               UserSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}

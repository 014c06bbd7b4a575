package pgsql

import (
	portsrepo "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	fundRepo := newPgxFundRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		FundRepo:        fundRepo,
		TransactionRepo: transactionRepo,
		UserRepo:        userRepo,
	}
}

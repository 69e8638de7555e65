package pgsql

import (
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the full repository set on top of one pgx pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	guestRepo := newPgxGuestRepository(dbPool)
	invitationRepo := newPgxInvitationRepository(dbPool)
	eventRepo := newPgxEventRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	settlementRepo := newPgxSettlementRepository(dbPool)
	responseRepo := newPgxGuestResponseRepository(dbPool)
	discussionRepo := newPgxDiscussionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:       userRepo,
		GuestRepo:      guestRepo,
		InvitationRepo: invitationRepo,
		EventRepo:      eventRepo,
		ExpenseRepo:    expenseRepo,
		SettlementRepo: settlementRepo,
		ResponseRepo:   responseRepo,
		DiscussionRepo: discussionRepo,
	}
}

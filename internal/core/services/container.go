package services

import (
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
)

// NewContainer wires every service against the repository provider and the
// notification sink and returns the populated container.
func NewContainer(repos *portsrepo.RepositoryProvider, sink portssvc.NotificationSink) *portssvc.ServiceContainer {
	balancing := NewBalancingService(repos.EventRepo, repos.InvitationRepo, repos.ExpenseRepo, repos.SettlementRepo)

	return &portssvc.ServiceContainer{
		User:      NewUserService(repos.UserRepo),
		Identity:  NewIdentityService(repos.UserRepo, repos.GuestRepo),
		Event:     NewEventService(repos.EventRepo, repos.UserRepo, repos.GuestRepo, repos.InvitationRepo, repos.ResponseRepo),
		Expense:   NewExpenseService(repos.EventRepo, repos.InvitationRepo, repos.ExpenseRepo, balancing),
		Balancing: balancing,
		Schedule:  NewScheduleService(repos.EventRepo, repos.GuestRepo, repos.InvitationRepo, repos.ResponseRepo),
		Discussion: NewDiscussionService(
			repos.EventRepo,
			repos.InvitationRepo,
			repos.DiscussionRepo,
			sink,
		),
	}
}

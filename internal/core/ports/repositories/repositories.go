package repositories

// RepositoryProvider holds all repository implementations and is handed to the
// service container at startup.
type RepositoryProvider struct {
	UserRepo       UserRepositoryFacade
	GuestRepo      GuestRepositoryFacade
	InvitationRepo InvitationRepositoryFacade
	EventRepo      EventRepositoryFacade
	ExpenseRepo    ExpenseRepositoryFacade
	SettlementRepo SettlementRepositoryFacade
	ResponseRepo   GuestResponseRepositoryFacade
	DiscussionRepo DiscussionRepositoryFacade
}

package repository

import "context"

// RepositoryFactory creates repository instances bound to one
// transaction.
type RepositoryFactory interface {
	NewProfileRepository() ProfileRepository
	NewChallengeRepository() ChallengeRepository
	NewDailyLogRepository() DailyLogRepository
}

// TransactionManager runs a function inside a single database
// transaction. The daily-log verified-wins guard does not rely on this;
// it is a single atomic conditional write. Transactions cover multi-row
// operations such as challenge creation with auto-join.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

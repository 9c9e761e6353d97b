package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no live (not soft-deleted) user row
	// matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrEmailAlreadyExists is returned when an insert collides with the
	// unique email constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when an insert or profile update
	// collides with the unique username constraint.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrIdentityAlreadyLinked is returned when the identity user id is
	// already stored on another row.
	ErrIdentityAlreadyLinked = errors.New("identity user is already linked")

	// ErrAlreadyExists is returned for any other unique violation.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrInvalidVerificationToken is returned when a verification token
	// matches no user. Consumed, unknown and empty tokens are
	// indistinguishable.
	ErrInvalidVerificationToken = errors.New("invalid verification token")

	// ErrInvalidResetToken is returned when a password-reset token is
	// unknown, expired, or was already used.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrDailyLimitReached is returned when a message-counter increment
	// would exceed the daily allowance.
	ErrDailyLimitReached = errors.New("daily message limit reached")

	// ErrGoalNotFound is returned when the user has no active goal.
	ErrGoalNotFound = errors.New("goal was not found")

	// ErrMacroPlanNotFound is returned when the user has no active macro plan.
	ErrMacroPlanNotFound = errors.New("macro plan was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

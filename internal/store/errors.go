package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrAccountAlreadyExists is returned by CreateAccount when the account
	// id is taken.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when the account id is unknown.
	ErrAccountNotFound = errors.New("account not found")

	// ErrKeyRecordNotFound is returned by FindKeyRecord when the account or
	// the label is unknown. The two cases are deliberately not told apart.
	ErrKeyRecordNotFound = errors.New("key record not found")

	// ErrAgentKeyNotFound is returned by the local agent key store for an
	// unknown agent id.
	ErrAgentKeyNotFound = errors.New("agent key not found")
)

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these.
var (
	// ErrBuildingSQLQuery is returned when squirrel can not build a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction can not start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when commit fails. The
	// transaction is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT/UPDATE/DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a single row can not be scanned.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrCorruptRow is returned when a stored value has an impossible
	// shape (e.g. a 31-byte key).
	ErrCorruptRow = errors.New("corrupt row")
)

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSecretNotFound is returned when a query or update targets a secret
	// (identified by id and user_id) that does not exist in the database.
	ErrSecretNotFound = errors.New("secret was not found")

	// ErrSecretNameTaken is returned when an INSERT or UPDATE of a secret
	// violates the per-user unique name constraint.
	ErrSecretNameTaken = errors.New("secret name already taken")

	// ErrIntegrationNotFound is returned when a query or update targets an
	// integration (identified by id and user_id) that does not exist.
	ErrIntegrationNotFound = errors.New("integration was not found")

	// ErrIntegrationExists is returned when creating an integration violates
	// the one-active-integration-per-service constraint for the user.
	ErrIntegrationExists = errors.New("active integration already exists for this service")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

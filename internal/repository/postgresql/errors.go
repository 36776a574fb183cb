package postgresql

// PostgreSQL error codes checked by the repositories.
const (
	pgerrUniqueViolation = "23505"
)

package store

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/mpolukarov/volna/models"
)

// psql is the shared statement builder configured for PostgreSQL dollar
// placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// userColumns is the column list returned by every query that scans a full
// [models.User].
var userColumns = []string{
	"id",
	"username",
	"email",
	"password_hash",
	"first_name",
	"last_name",
	"age_confirmed",
	"created_at",
}

// userExistsQuery builds the uniqueness pre-check: does any row match the
// proposed username OR email.
func userExistsQuery(username, email string) (string, []any, error) {
	return psql.
		Select("id").
		From("users").
		Where(squirrel.Or{
			squirrel.Eq{"username": username},
			squirrel.Eq{"email": email},
		}).
		Limit(1).
		ToSql()
}

// createUserQuery builds the INSERT for a new user row. All server-assigned
// columns come back through the RETURNING clause so the caller receives the
// canonical database representation.
func createUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert("users").
		Columns("username", "email", "password_hash", "first_name", "last_name", "age_confirmed").
		Values(user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.AgeConfirmed).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"itickets/internal/shared/database/dbtest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var details = CustomerDetails{
	FullName: " Ada Lovelace ",
	Email:    " ada@example.com ",
	Phone:    "0821234567",
	IDNumber: "8001015009087",
}

func TestFindOrCreateCustomerInsertsNewCustomer(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ada Lovelace", "ada@example.com", "0821234567", "8001015009087", RoleCustomer).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	id, err := repo.FindOrCreateCustomer(context.Background(), details)

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestFindOrCreateCustomerReusesExistingEmail(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (email) DO NOTHING")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE email = $1")).
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	id, err := repo.FindOrCreateCustomer(context.Background(), details)

	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestFindOrCreateCustomerUnresolved(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO users").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT id FROM users").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindOrCreateCustomer(context.Background(), details)

	assert.ErrorIs(t, err, ErrCustomerNotResolved)
}

func TestFindOrCreateCustomerInsertFailure(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	boom := errors.New("connection reset")
	mock.ExpectQuery("INSERT INTO users").WillReturnError(boom)

	_, err := repo.FindOrCreateCustomer(context.Background(), details)

	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, sql.ErrNoRows))
}

func TestFindOrCreateCustomerRequiresEmail(t *testing.T) {
	db, _ := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	_, err := repo.FindOrCreateCustomer(context.Background(), CustomerDetails{FullName: "Nobody", Email: "  "})

	assert.ErrorIs(t, err, ErrCustomerEmailMissing)
}

func TestGetByEmail(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "role"}).
			AddRow(11, "Ada Lovelace", "ada@example.com", "customer"))

	user, err := repo.GetByEmail(context.Background(), "ada@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(11), user.ID)
	assert.Equal(t, RoleCustomer, user.Role)
}

func TestGetByEmailNotFound(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

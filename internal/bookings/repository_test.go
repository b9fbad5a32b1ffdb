package bookings

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"itickets/internal/shared/database/dbtest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking() *Booking {
	return &Booking{
		UserID:           42,
		EventID:          7,
		BookingReference: "ITECH-7K2M9QX4PT",
		FullName:         "Wanjiru Kamau",
		Email:            "wanjiru@example.com",
		Phone:            "0712345678",
		IDNumber:         "30123456",
		TotalAmount:      decimal.NewFromInt(7000),
		PaymentStatus:    PaymentStatusPending,
	}
}

const insertBookingSQL = `INSERT INTO "bookings"`
const onConflictSQL = `ON CONFLICT ("booking_reference") DO NOTHING`

func TestCreateBookingInserts(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(insertBookingSQL) + ".*" + regexp.QuoteMeta(onConflictSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(99))

	b := newBooking()
	inserted, err := repo.CreateBooking(context.Background(), b)

	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, int64(99), b.ID)
}

func TestCreateBookingReferenceTaken(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(insertBookingSQL) + ".*" + regexp.QuoteMeta(onConflictSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	inserted, err := repo.CreateBooking(context.Background(), newBooking())

	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestCreateBookingStorageError(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	boom := errors.New("connection reset by peer")
	mock.ExpectQuery(regexp.QuoteMeta(insertBookingSQL)).WillReturnError(boom)

	_, err := repo.CreateBooking(context.Background(), newBooking())

	assert.ErrorIs(t, err, boom)
}

func TestWithinTransactionCommits(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "booking_tickets"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	err := store.WithinTransaction(context.Background(), func(tx Tx) error {
		require.NotNil(t, tx.Customers)
		require.NotNil(t, tx.Ledger)
		return tx.Bookings.AddLineItem(context.Background(), &LineItem{
			BookingID:    99,
			TicketTypeID: 11,
			Quantity:     2,
			UnitPrice:    decimal.NewFromInt(1000),
			Subtotal:     decimal.NewFromInt(2000),
		})
	})

	require.NoError(t, err)
}

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	soldOutErr := soldOut("vip", errors.New("none left"))
	err := store.WithinTransaction(context.Background(), func(tx Tx) error {
		return soldOutErr
	})

	assert.ErrorIs(t, err, soldOutErr)
}

func TestWithinTransactionReportsFailedRollback(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("connection lost"))

	cause := errors.New("insert failed")
	err := store.WithinTransaction(context.Background(), func(tx Tx) error {
		return cause
	})

	assert.ErrorIs(t, err, cause)
	assert.ErrorContains(t, err, "rollback transaction: connection lost")
}

func TestWithinTransactionRollsBackOnPanic(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = store.WithinTransaction(context.Background(), func(tx Tx) error {
			panic("boom")
		})
	})
}

func TestWithinTransactionBeginFailure(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := store.WithinTransaction(context.Background(), func(tx Tx) error {
		called = true
		return nil
	})

	assert.ErrorContains(t, err, "begin transaction")
	assert.False(t, called)
}

func TestWithinTransactionCommitFailure(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := store.WithinTransaction(context.Background(), func(tx Tx) error { return nil })

	assert.ErrorContains(t, err, "commit transaction: serialization failure")
}

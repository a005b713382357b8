package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"hotel_management/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reservationCols = []string{"id", "room_id", "customer_id", "nights", "check_in", "check_out", "price", "created_at"}

func date(s string) time.Time {
	t, _ := time.Parse(model.DateLayout, s)
	return t
}

func TestReservationRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewReservationRepository(mock)
	res := &model.Reservation{RoomID: 2, CustomerID: 7, Nights: 3, CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"), Price: 300, CreatedAt: time.Now()}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WithArgs(int64(2), int64(7), 3, res.CheckIn, res.CheckOut, 300.0, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), res))
	assert.Equal(t, int64(5), res.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_FindByCustomer(t *testing.T) {
	mock := newMock(t)
	repo := NewReservationRepository(mock)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE customer_id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(reservationCols).
			AddRow(int64(1), int64(2), int64(7), 3, date("2025-06-01"), date("2025-06-04"), 300.0, now).
			AddRow(int64(4), int64(3), int64(7), 1, date("2025-07-01"), date("2025-07-02"), 90.0, now))

	reservations, err := repo.FindByCustomer(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	for _, r := range reservations {
		assert.Equal(t, int64(7), r.CustomerID)
	}
	assert.Equal(t, 3, reservations[0].Nights)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_Update_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewReservationRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations")).
		WithArgs(2, date("2025-06-01"), date("2025-06-03"), 150.0, int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &model.Reservation{ID: 42, Nights: 2, CheckIn: date("2025-06-01"), CheckOut: date("2025-06-03"), Price: 150})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewReservationRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

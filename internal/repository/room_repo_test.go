package repository

import (
	"context"
	"regexp"
	"testing"

	"hotel_management/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRepository_Create_DefaultsImages(t *testing.T) {
	mock := newMock(t)
	repo := NewRoomRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rooms")).
		WithArgs("Suite", "Sea view", 40.0, 120.0, []string{}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	room := &model.Room{Name: "Suite", Description: "Sea view", SquareMeters: 40, PricePerNight: 120}
	require.NoError(t, repo.Create(context.Background(), room))
	assert.Equal(t, int64(1), room.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_Delete_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewRoomRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Delete(context.Background(), 9), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewRoomRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms")).
		WithArgs("Suite", "Sea view", 40.0, 150.0, []string{"a.png"}, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	room := &model.Room{ID: 1, Name: "Suite", Description: "Sea view", SquareMeters: 40, PricePerNight: 150, ImagesList: []string{"a.png"}}
	require.NoError(t, repo.Update(context.Background(), room))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_Update_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewRoomRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &model.Room{ID: 9, Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repo

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventoCols = []string{
	"id", "name", "sport", "scheduled_at", "status",
	"home_team", "away_team", "odds_home", "odds_draw", "odds_away",
	"created_at",
}

func newMock(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgres(db), mock
}

func TestCreateAssignsIDAndReadsCreatedAt(t *testing.T) {
	p, mock := newMock(t)
	createdAt := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO eventos").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	ev, err := p.Create(context.Background(), &Evento{
		Name:        "Derby",
		Sport:       "soccer",
		ScheduledAt: time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC),
		Status:      "scheduled",
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(ev.ID)
	assert.NoError(t, parseErr, "create assigns a uuid")
	assert.True(t, createdAt.Equal(ev.CreatedAt), "created_at comes from the store")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	p, mock := newMock(t)
	id := uuid.NewString()
	scheduled := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, name, sport").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(eventoCols).
			AddRow(id, "Derby", "soccer", scheduled, "scheduled",
				"Grêmio", nil, 1.85, nil, nil, createdAt))

	ev, err := p.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Derby", ev.Name)
	require.NotNil(t, ev.HomeTeam)
	assert.Equal(t, "Grêmio", *ev.HomeTeam)
	require.NotNil(t, ev.OddsHome)
	assert.Equal(t, 1.85, *ev.OddsHome)

	// NULL no banco vira ponteiro nil, nunca zero
	assert.Nil(t, ev.AwayTeam)
	assert.Nil(t, ev.OddsDraw)
	assert.Nil(t, ev.OddsAway)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	p, mock := newMock(t)
	id := uuid.NewString()

	mock.ExpectQuery("SELECT id, name, sport").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := p.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	p, mock := newMock(t)
	scheduled := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, name, sport").
		WillReturnRows(sqlmock.NewRows(eventoCols).
			AddRow(uuid.NewString(), "Derby", "soccer", scheduled, "scheduled", nil, nil, nil, nil, nil, createdAt).
			AddRow(uuid.NewString(), "Final", "basketball", scheduled, "live", nil, nil, nil, nil, nil, createdAt))

	list, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOnlySuppliedFields(t *testing.T) {
	p, mock := newMock(t)
	id := uuid.NewString()
	scheduled := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	status := "live"

	// só o campo informado entra no SET
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE eventos SET status=$1 WHERE id=$2`)).
		WithArgs(status, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, name, sport").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(eventoCols).
			AddRow(id, "Derby", "soccer", scheduled, status, nil, nil, nil, nil, nil, createdAt))

	ev, err := p.Update(context.Background(), id, UpdateFields{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "live", ev.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNoFieldsIsANoOp(t *testing.T) {
	p, mock := newMock(t)
	id := uuid.NewString()
	scheduled := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

	// nenhum UPDATE: update vazio só relê o registro
	mock.ExpectQuery("SELECT id, name, sport").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(eventoCols).
			AddRow(id, "Derby", "soccer", scheduled, "scheduled", nil, nil, nil, nil, nil, createdAt))

	ev, err := p.Update(context.Background(), id, UpdateFields{})
	require.NoError(t, err)
	assert.Equal(t, "Derby", ev.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	p, mock := newMock(t)
	id := uuid.NewString()
	name := "Derby II"

	mock.ExpectExec("UPDATE eventos SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := p.Update(context.Background(), id, UpdateFields{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	p, mock := newMock(t)
	id := uuid.NewString()

	mock.ExpectExec("DELETE FROM eventos").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, p.Delete(context.Background(), id))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	p, mock := newMock(t)
	id := uuid.NewString()

	mock.ExpectExec("DELETE FROM eventos").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, p.Delete(context.Background(), id), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

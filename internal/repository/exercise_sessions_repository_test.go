package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/repository"
	"github.com/limbo/mindrep/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionRowColumns = []string{"id", "user_id", "date", "exercise_type", "duration_minutes", "intensity", "source",
	"avg_heart_rate", "calories", "notes", "created_at"}

func addSessionRow(rows *pgxmock.Rows, s entity.ExerciseSession) *pgxmock.Rows {
	return rows.AddRow(s.ID, s.UserID, s.Date, s.ExerciseType, s.DurationMinutes, string(s.Intensity), s.Source,
		s.AvgHeartRate, s.Calories, s.Notes, s.CreatedAt)
}

func testSession() entity.ExerciseSession {
	hr := 142.0
	return entity.ExerciseSession{
		ID:              uuid.New(),
		UserID:          userID,
		Date:            time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC),
		ExerciseType:    "running",
		DurationMinutes: 30,
		Intensity:       entity.IntensityModerate,
		Source:          "manual",
		AvgHeartRate:    &hr,
		CreatedAt:       time.Now(),
	}
}

func TestCreateSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewExerciseSessionsRepoWithConn(mock)
	session := testSession()
	query := regexp.QuoteMeta(`INSERT INTO exercise_sessions (user_id, date, exercise_type, duration_minutes, intensity, source, avg_heart_rate, calories, notes)`)
	args := []any{session.UserID, session.Date, session.ExerciseType, session.DurationMinutes, "moderate", session.Source,
		session.AvgHeartRate, session.Calories, session.Notes}
	ctx := context.Background()
	t.Run("successfully created", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(query).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, session.CreatedAt))
		s := session
		err := repo.Create(ctx, &s)
		assert.NoError(t, err)
		assert.Equal(t, id, s.ID)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		s := session
		err := repo.Create(ctx, &s)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		s := session
		err := repo.Create(ctx, &s)
		assert.Error(t, err)
	})
}

func TestGetSessionByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewExerciseSessionsRepoWithConn(mock)
	session := testSession()
	query := regexp.QuoteMeta(`FROM exercise_sessions WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(session.ID).
			WillReturnRows(addSessionRow(pgxmock.NewRows(sessionRowColumns), session))
		result, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(session.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, session.ID)
		assert.ErrorIs(t, err, errorvalues.ErrSessionNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(session.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, session.ID)
		assert.Error(t, err)
	})
}

func TestGetSessionsByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewExerciseSessionsRepoWithConn(mock)
	sessions := []entity.ExerciseSession{testSession(), testSession(), testSession()}
	sessions[1].ExerciseType = "yoga"
	sessions[2].Intensity = entity.IntensityVigorous
	query := regexp.QuoteMeta(`WHERE user_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(sessionRowColumns)
		for _, s := range sessions {
			addSessionRow(rows, s)
		}
		mock.ExpectQuery(query).WithArgs(userID, 3, 0).WillReturnRows(rows)
		result, err := repo.GetByUserID(ctx, userID, 3, 0)
		assert.NoError(t, err)
		assert.Equal(t, sessions, result)
	})
	t.Run("used limit and offset", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, 1, 1).
			WillReturnRows(addSessionRow(pgxmock.NewRows(sessionRowColumns), sessions[1]))
		result, err := repo.GetByUserID(ctx, userID, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, []entity.ExerciseSession{sessions[1]}, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, 1, 1).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID, 1, 1)
		assert.Error(t, err)
	})
}

func TestListSessionsSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewExerciseSessionsRepoWithConn(mock)
	since := time.Now().AddDate(0, 0, -90)
	session := testSession()
	query := regexp.QuoteMeta(`WHERE user_id = $1 AND date >= $2 ORDER BY date, created_at;`)
	ctx := context.Background()
	mock.ExpectQuery(query).WithArgs(userID, since).WillReturnRows(addSessionRow(pgxmock.NewRows(sessionRowColumns), session))
	result, err := repo.ListSince(ctx, userID, since)
	assert.NoError(t, err)
	assert.Equal(t, []entity.ExerciseSession{session}, result)
}

func TestCountSessionsSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewExerciseSessionsRepoWithConn(mock)
	since := time.Now().AddDate(0, 0, -2)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM exercise_sessions WHERE user_id = $1 AND created_at > $2;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, since).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(9))
		count, err := repo.CountSince(ctx, userID, since)
		assert.NoError(t, err)
		assert.Equal(t, 9, count)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, since).WillReturnError(errors.New("db error"))
		_, err := repo.CountSince(ctx, userID, since)
		assert.Error(t, err)
	})
}

func TestUpdateSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewExerciseSessionsRepoWithConn(mock)
	session := testSession()
	query := regexp.QuoteMeta(`UPDATE exercise_sessions SET date = $1, exercise_type = $2, duration_minutes = $3, intensity = $4,`)
	args := []any{session.Date, session.ExerciseType, session.DurationMinutes, "moderate", session.AvgHeartRate,
		session.Calories, session.Notes, session.ID}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, &session)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, &session)
		assert.ErrorIs(t, err, errorvalues.ErrSessionNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		err := repo.Update(ctx, &session)
		assert.Error(t, err)
	})
}

func TestDeleteSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewExerciseSessionsRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM exercise_sessions WHERE id = $1;`)
	ctx := context.Background()
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrSessionNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, id)
		assert.Error(t, err)
	})
}

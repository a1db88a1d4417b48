package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/freightdock/drayman/pkg/repository"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTxCommits(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE things").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repository.WithTx(context.Background(), db, func(tx *sql.Tx) (int, error) {
		if _, err := tx.ExecContext(context.Background(), "UPDATE things SET x = 1"); err != nil {
			return 0, err
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}
	if got != 42 {
		t.Errorf("result = %d, want 42", got)
	}

	expectationsMet(t, mock)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	_, err := repository.WithTx(context.Background(), db, func(tx *sql.Tx) (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}

	expectationsMet(t, mock)
}

func TestWithTxReturnsCommitError(t *testing.T) {
	db, mock := newMock(t)

	commitErr := errors.New("commit failed")
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(commitErr)

	_, err := repository.WithTx(context.Background(), db, func(tx *sql.Tx) (int, error) {
		return 1, nil
	})
	if !errors.Is(err, commitErr) {
		t.Errorf("error = %v, want commit failure", err)
	}

	expectationsMet(t, mock)
}

func scanString(s repository.Scanner) (string, error) {
	var v string
	err := s.Scan(&v)
	return v, err
}

func TestQueryOne(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT name").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("alpha"))

	got, err := repository.QueryOne(context.Background(), db, "SELECT name FROM things", nil, scanString)
	if err != nil {
		t.Fatalf("QueryOne() error = %v", err)
	}
	if got != "alpha" {
		t.Errorf("result = %q, want alpha", got)
	}

	expectationsMet(t, mock)
}

func TestQueryOneNoRows(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT name").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	_, err := repository.QueryOne(context.Background(), db, "SELECT name FROM things", nil, scanString)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("error = %v, want sql.ErrNoRows", err)
	}

	expectationsMet(t, mock)
}

func TestQueryMany(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT name").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("alpha").AddRow("beta"))

	got, err := repository.QueryMany(context.Background(), db, "SELECT name FROM things", nil, scanString)
	if err != nil {
		t.Fatalf("QueryMany() error = %v", err)
	}
	if len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
		t.Errorf("results = %v", got)
	}

	expectationsMet(t, mock)
}

func TestQueryManyEmptyReturnsSlice(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT name").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	got, err := repository.QueryMany(context.Background(), db, "SELECT name FROM things", nil, scanString)
	if err != nil {
		t.Fatalf("QueryMany() error = %v", err)
	}
	if got == nil {
		t.Error("results should be an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("results = %v, want empty", got)
	}

	expectationsMet(t, mock)
}

func TestExecExpectOne(t *testing.T) {
	t.Run("one row affected", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectExec("DELETE FROM things").WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repository.ExecExpectOne(context.Background(), db, "DELETE FROM things WHERE id = $1", 1); err != nil {
			t.Errorf("ExecExpectOne() error = %v", err)
		}

		expectationsMet(t, mock)
	})

	t.Run("zero rows yields ErrNoRows", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectExec("DELETE FROM things").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repository.ExecExpectOne(context.Background(), db, "DELETE FROM things WHERE id = $1", 1)
		if !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("error = %v, want sql.ErrNoRows", err)
		}

		expectationsMet(t, mock)
	})
}

func TestMapError(t *testing.T) {
	notFound := errors.New("not found")
	duplicate := errors.New("duplicate")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows maps to not found", sql.ErrNoRows, notFound},
		{"wrapped no rows maps to not found", fmt.Errorf("find: %w", sql.ErrNoRows), notFound},
		{"unique violation maps to duplicate", &pgconn.PgError{Code: "23505"}, duplicate},
		{"other pg error passes through", &pgconn.PgError{Code: "23503"}, &pgconn.PgError{Code: "23503"}},
		{"unrelated error passes through", errors.New("boom"), errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.err, notFound, duplicate)
			if tt.want == nil {
				if got != nil {
					t.Errorf("MapError() = %v, want nil", got)
				}
				return
			}
			if got == nil || got.Error() != tt.want.Error() {
				t.Errorf("MapError() = %v, want %v", got, tt.want)
			}
		})
	}
}

package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/rostersync/go-roster-sync/internal/logger"
)

func newTestKVRepo(t *testing.T) (*keyValueRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &keyValueRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestKeyValueGet_Success(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	ctx := context.Background()
	want := []byte("last-payload")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("sync_fingerprints", "contacts").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(want))
	mock.ExpectCommit()

	got, err := repo.Get(ctx, "sync_fingerprints", "contacts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("expected %q, got %q", want, got)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestKeyValueGet_NotFound(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("sync_fingerprints", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	mock.ExpectRollback()

	_, err := repo.Get(context.Background(), "sync_fingerprints", "missing")
	if err != ErrKeyNotFound {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestKeyValueSet_Upsert(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("sync_fingerprints", "contacts", []byte("new-payload")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Set(context.Background(), "sync_fingerprints", "contacts", []byte("new-payload"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestKeyValueSet_ExecError(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.Set(context.Background(), "c", "k", []byte("v"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

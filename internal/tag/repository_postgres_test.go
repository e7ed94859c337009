package tag

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestNamesForProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"names"}).AddRow("{wood,oak}")
	mock.ExpectQuery("FROM tags t").WithArgs(5).WillReturnRows(rows)

	names := repo.NamesForProduct(5)
	if len(names) != 2 || names[0] != "wood" || names[1] != "oak" {
		t.Fatalf("unexpected names %v", names)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestNamesForPost_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"names"}).AddRow("{}")
	mock.ExpectQuery("FROM tags t").WithArgs(9).WillReturnRows(rows)

	names := repo.NamesForPost(9)
	if len(names) != 0 {
		t.Fatalf("expected no names, got %v", names)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

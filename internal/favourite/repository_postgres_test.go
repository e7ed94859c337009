package favourite

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestToggle_InsertsWhenAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM favourites").
		WithArgs(42, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO favourites").
		WithArgs(42, 5).
		WillReturnResult(sqlmock.NewResult(1, 1))

	liked, err := repo.Toggle(42, 5)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !liked {
		t.Fatalf("expected liked true when the row was inserted")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestToggle_DeletesWhenPresent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM favourites").
		WithArgs(42, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	liked, err := repo.Toggle(42, 5)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if liked {
		t.Fatalf("expected liked false when the row was deleted")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestProductIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"product_id"}).AddRow(3).AddRow(8)
	mock.ExpectQuery("SELECT product_id").WithArgs(42).WillReturnRows(rows)

	ids, err := repo.ProductIDs(42)
	if err != nil {
		t.Fatalf("product ids: %v", err)
	}
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 8 {
		t.Fatalf("unexpected ids %v", ids)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

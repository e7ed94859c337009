package favourite

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	deleteFavouriteQuery = `
		DELETE FROM favourites
		WHERE user_id = $1 AND product_id = $2
	`
	// the UNIQUE(user_id, product_id) constraint makes concurrent double
	// submission collapse into a single row
	insertFavouriteQuery = `
		INSERT INTO favourites (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING
	`
	productIDsQuery = `
		SELECT product_id
		FROM favourites
		WHERE user_id = $1
		ORDER BY id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Toggle(userID, productID int) (bool, error) {
	result, err := r.db.Exec(deleteFavouriteQuery, userID, productID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return false, nil
	}

	if _, err := r.db.Exec(insertFavouriteQuery, userID, productID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) ProductIDs(userID int) ([]int, error) {
	rows, err := r.db.Query(productIDsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

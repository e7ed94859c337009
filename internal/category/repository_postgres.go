package category

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCategoriesQuery = `
		SELECT id, name, image
		FROM product_categories
		ORDER BY id
	`
	getCategoryByNameQuery = `
		SELECT id, name, image
		FROM product_categories
		WHERE name = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Category {
	rows, err := r.db.Query(listCategoriesQuery)
	if err != nil {
		return []Category{}
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var cat Category
		var image sql.NullString
		if err := rows.Scan(&cat.ID, &cat.Name, &image); err != nil {
			continue
		}
		if image.Valid {
			cat.Image = &image.String
		}
		out = append(out, cat)
	}
	return out
}

func (r *PostgresRepository) GetByName(name string) (Category, error) {
	var cat Category
	var image sql.NullString
	if err := r.db.QueryRow(getCategoryByNameQuery, name).Scan(&cat.ID, &cat.Name, &image); err != nil {
		if err == sql.ErrNoRows {
			return Category{}, ErrNotFound
		}
		return Category{}, err
	}
	if image.Valid {
		cat.Image = &image.String
	}
	return cat, nil
}

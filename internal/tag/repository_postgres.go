package tag

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listTagsQuery = `SELECT id, name FROM tags ORDER BY id`

	// tag names come back as a single array row per owner
	namesForProductQuery = `
		SELECT coalesce(array_agg(t.name ORDER BY t.id), '{}')
		FROM tags t
		JOIN product_tags pt ON pt.tag_id = t.id
		WHERE pt.product_id = $1
	`
	namesForPostQuery = `
		SELECT coalesce(array_agg(t.name ORDER BY t.id), '{}')
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Tag {
	rows, err := r.db.Query(listTagsQuery)
	if err != nil {
		return []Tag{}
	}
	defer rows.Close()

	out := make([]Tag, 0)
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (r *PostgresRepository) NamesForProduct(productID int) []string {
	return r.queryNames(namesForProductQuery, productID)
}

func (r *PostgresRepository) NamesForPost(postID int) []string {
	return r.queryNames(namesForPostQuery, postID)
}

func (r *PostgresRepository) queryNames(query string, id int) []string {
	var names pq.StringArray
	if err := r.db.QueryRow(query, id).Scan(&names); err != nil {
		return []string{}
	}
	return []string(names)
}

package subscription

import (
	"database/sql"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

const insertSubscriptionQuery = `
	INSERT INTO subscriptions (name, email)
	VALUES ($1, $2)
	RETURNING id
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(sub Subscription) (Subscription, error) {
	var id int
	err := r.db.QueryRow(insertSubscriptionQuery, sub.Name, sub.Email).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "subscriptions_email_key") {
			return Subscription{}, ErrEmailExists
		}
		return Subscription{}, err
	}

	sub.ID = id
	return sub, nil
}

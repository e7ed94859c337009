package post

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listPostsQuery = `
		SELECT p.id, p.title, p.description, p.category_id, c.name,
		       p.featured_image, p.created_at,
		       (SELECT COUNT(*) FROM post_comments pc WHERE pc.post_id = p.id)
		FROM posts p
		LEFT JOIN post_categories c ON c.id = p.category_id
		ORDER BY p.id DESC
	`
	getPostByIDQuery = `
		SELECT p.id, p.title, p.description, p.category_id, c.name,
		       p.featured_image, p.created_at,
		       (SELECT COUNT(*) FROM post_comments pc WHERE pc.post_id = p.id)
		FROM posts p
		LEFT JOIN post_categories c ON c.id = p.category_id
		WHERE p.id = $1
	`
	commentsByPostQuery = `
		SELECT pc.id, pc.post_id, pc.user_id, u.name, pc.text, pc.created_at
		FROM post_comments pc
		JOIN users u ON u.id = pc.user_id
		WHERE pc.post_id = $1
		ORDER BY pc.id
	`
	insertCommentQuery = `
		INSERT INTO post_comments (post_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Post {
	rows, err := r.db.Query(listPostsQuery)
	if err != nil {
		return []Post{}
	}
	defer rows.Close()

	out := make([]Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Post, error) {
	row := r.db.QueryRow(getPostByIDQuery, id)
	p, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Post{}, ErrNotFound
		}
		return Post{}, err
	}
	return p, nil
}

func (r *PostgresRepository) CommentsByPost(postID int) []Comment {
	rows, err := r.db.Query(commentsByPostQuery, postID)
	if err != nil {
		return []Comment{}
	}
	defer rows.Close()

	out := make([]Comment, 0)
	for rows.Next() {
		var cm Comment
		var createdAt sql.NullString
		if err := rows.Scan(&cm.ID, &cm.PostID, &cm.UserID, &cm.UserName, &cm.Text, &createdAt); err != nil {
			continue
		}
		if createdAt.Valid {
			cm.CreatedAt = createdAt.String
		}
		out = append(out, cm)
	}
	return out
}

func (r *PostgresRepository) AddComment(comment Comment) (Comment, error) {
	var id int
	err := r.db.QueryRow(
		insertCommentQuery,
		comment.PostID,
		comment.UserID,
		comment.Text,
		comment.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Comment{}, err
	}

	comment.ID = id
	return comment, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(scanner rowScanner) (Post, error) {
	p := Post{}
	var (
		categoryID   sql.NullInt64
		categoryName sql.NullString
		image        sql.NullString
		createdAt    sql.NullString
	)

	if err := scanner.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&categoryID,
		&categoryName,
		&image,
		&createdAt,
		&p.CommentCount,
	); err != nil {
		return Post{}, err
	}

	if categoryID.Valid {
		v := int(categoryID.Int64)
		p.CategoryID = &v
	}
	if categoryName.Valid {
		p.CategoryName = &categoryName.String
	}
	if image.Valid {
		p.FeaturedImage = &image.String
	}
	if createdAt.Valid {
		p.CreatedAt = createdAt.String
	}

	return p, nil
}

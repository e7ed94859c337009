package product

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `
		p.id, p.name, p.sku, p.category_id, c.name, p.description,
		p.additional_information, p.original_price, p.discounted_price,
		p.is_featured, p.featured_image
	`
	productFrom = `
		FROM products p
		LEFT JOIN product_categories c ON c.id = p.category_id
	`

	listProductsQuery    = `SELECT ` + productColumns + productFrom + ` ORDER BY p.id`
	getProductByIDQuery  = `SELECT ` + productColumns + productFrom + ` WHERE p.id = $1`
	featuredQuery        = `SELECT ` + productColumns + productFrom + ` WHERE p.is_featured ORDER BY p.id`
	bestSellingQuery     = `SELECT ` + productColumns + productFrom + ` WHERE NOT p.is_featured ORDER BY p.id LIMIT $1`
	newestArrivalsQuery  = `SELECT ` + productColumns + productFrom + ` ORDER BY p.id DESC LIMIT $1`
	searchByNameQuery    = `SELECT ` + productColumns + productFrom + ` WHERE p.name ILIKE '%' || $1 || '%' ORDER BY p.id`
	listByCategoryQuery  = `SELECT ` + productColumns + productFrom + ` WHERE c.name = $1 ORDER BY p.id`
	searchAndCategory    = `SELECT ` + productColumns + productFrom + ` WHERE c.name = $2 AND p.name ILIKE '%' || $1 || '%' ORDER BY p.id`
	imagesByProductQuery = `SELECT id, product_id, image FROM product_images WHERE product_id = $1 ORDER BY id`

	reviewsByProductQuery = `
		SELECT r.id, r.product_id, r.user_id, u.name, r.text, r.rating, r.created_at
		FROM customer_reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.id
	`
	insertReviewQuery = `
		INSERT INTO customer_reviews (product_id, user_id, text, rating, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Product {
	return r.queryProducts(listProductsQuery)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(getProductByIDQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Featured() []Product {
	return r.queryProducts(featuredQuery)
}

func (r *PostgresRepository) BestSelling(limit int) []Product {
	return r.queryProducts(bestSellingQuery, limit)
}

func (r *PostgresRepository) NewestArrivals(limit int) []Product {
	return r.queryProducts(newestArrivalsQuery, limit)
}

func (r *PostgresRepository) SearchByName(search string) []Product {
	return r.queryProducts(searchByNameQuery, search)
}

func (r *PostgresRepository) ListByCategoryName(categoryName string) []Product {
	return r.queryProducts(listByCategoryQuery, categoryName)
}

func (r *PostgresRepository) SearchByNameAndCategory(search, categoryName string) []Product {
	return r.queryProducts(searchAndCategory, search, categoryName)
}

func (r *PostgresRepository) ImagesByProduct(productID int) []Image {
	rows, err := r.db.Query(imagesByProductQuery, productID)
	if err != nil {
		return []Image{}
	}
	defer rows.Close()

	out := make([]Image, 0)
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Image); err != nil {
			continue
		}
		out = append(out, img)
	}
	return out
}

func (r *PostgresRepository) ReviewsByProduct(productID int) []Review {
	rows, err := r.db.Query(reviewsByProductQuery, productID)
	if err != nil {
		return []Review{}
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		var rev Review
		var createdAt sql.NullString
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.UserName, &rev.Text, &rev.Rating, &createdAt); err != nil {
			continue
		}
		if createdAt.Valid {
			rev.CreatedAt = createdAt.String
		}
		out = append(out, rev)
	}
	return out
}

func (r *PostgresRepository) AddReview(review Review) (Review, error) {
	var id int
	err := r.db.QueryRow(
		insertReviewQuery,
		review.ProductID,
		review.UserID,
		review.Text,
		review.Rating,
		review.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Review{}, err
	}

	review.ID = id
	return review, nil
}

func (r *PostgresRepository) queryProducts(query string, args ...any) []Product {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		categoryID   sql.NullInt64
		categoryName sql.NullString
		additional   sql.NullString
		original     string
		discounted   sql.NullString
	)

	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&p.SKU,
		&categoryID,
		&categoryName,
		&p.Description,
		&additional,
		&original,
		&discounted,
		&p.IsFeatured,
		&p.FeaturedImage,
	); err != nil {
		return Product{}, err
	}

	if categoryID.Valid {
		v := int(categoryID.Int64)
		p.CategoryID = &v
	}
	if categoryName.Valid {
		p.CategoryName = &categoryName.String
	}
	if additional.Valid {
		p.AdditionalInformation = &additional.String
	}

	price, err := decimal.NewFromString(original)
	if err != nil {
		return Product{}, err
	}
	p.OriginalPrice = price

	if discounted.Valid {
		d, err := decimal.NewFromString(discounted.String)
		if err != nil {
			return Product{}, err
		}
		p.DiscountedPrice = &d
	}

	return p, nil
}

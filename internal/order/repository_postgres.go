package order

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	// a partial unique index on orders(user_id) WHERE billing_id IS NULL
	// guarantees at most one open order per user; the insert is a no-op when
	// one already exists
	createOpenOrderQuery = `
		INSERT INTO orders (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) WHERE billing_id IS NULL DO NOTHING
	`
	getOpenOrderQuery = `
		SELECT id, user_id, billing_id, promocode_id
		FROM orders
		WHERE user_id = $1 AND billing_id IS NULL
	`
	// insert-on-conflict-update closes the get-or-create race on concurrent
	// adds of the same product
	upsertItemQuery = `
		INSERT INTO order_items (order_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id, product_id)
		DO UPDATE SET quantity = order_items.quantity + EXCLUDED.quantity
		RETURNING id, quantity
	`
	itemColumns = `
		i.id, i.order_id, i.product_id, i.quantity,
		p.id, p.name, p.sku, p.original_price, p.discounted_price, p.featured_image
	`
	openOrderItemsQuery = `
		SELECT ` + itemColumns + `
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		JOIN products p ON p.id = i.product_id
		WHERE o.user_id = $1 AND o.billing_id IS NULL
		ORDER BY i.id
	`
	itemsByOrderQuery = `
		SELECT ` + itemColumns + `
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id
	`
	latestOrderQuery = `
		SELECT o.id, o.user_id, o.billing_id, o.promocode_id,
		       pc.id, pc.code, pc.discount_percent
		FROM orders o
		LEFT JOIN promocodes pc ON pc.id = o.promocode_id
		WHERE o.user_id = $1
		ORDER BY o.id DESC
		LIMIT 1
	`
	insertBillingQuery = `
		INSERT INTO order_billings (first_name, last_name, address, address2,
			country_id, state, zip, is_shipping_same, payment_type,
			payment_status, save_as_default, payment_reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	attachBillingQuery = `
		UPDATE orders SET billing_id = $1
		WHERE id = $2 AND billing_id IS NULL
	`
	promocodeByCodeQuery = `
		SELECT id, code, discount_percent
		FROM promocodes
		WHERE code = $1
	`
	attachPromocodeQuery = `UPDATE orders SET promocode_id = $1 WHERE id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) OpenOrder(userID int) (Order, error) {
	if _, err := r.db.Exec(createOpenOrderQuery, userID); err != nil {
		return Order{}, err
	}

	var o Order
	var uid, billingID, promocodeID sql.NullInt64
	err := r.db.QueryRow(getOpenOrderQuery, userID).Scan(&o.ID, &uid, &billingID, &promocodeID)
	if err != nil {
		return Order{}, err
	}
	if uid.Valid {
		v := int(uid.Int64)
		o.UserID = &v
	}
	if promocodeID.Valid {
		v := int(promocodeID.Int64)
		o.PromocodeID = &v
	}
	return o, nil
}

func (r *PostgresRepository) UpsertItem(orderID, productID, quantity int) (Item, error) {
	item := Item{OrderID: orderID, ProductID: productID}
	err := r.db.QueryRow(upsertItemQuery, orderID, productID, quantity).Scan(&item.ID, &item.Quantity)
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

func (r *PostgresRepository) OpenOrderItems(userID int) ([]Item, error) {
	return r.queryItems(openOrderItemsQuery, userID)
}

func (r *PostgresRepository) LatestOrder(userID int) (Order, error) {
	var o Order
	var uid, billingID, promocodeID sql.NullInt64
	var promoID sql.NullInt64
	var promoCode sql.NullString
	var promoPercent sql.NullInt64

	err := r.db.QueryRow(latestOrderQuery, userID).Scan(
		&o.ID, &uid, &billingID, &promocodeID,
		&promoID, &promoCode, &promoPercent,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNoOrder
		}
		return Order{}, err
	}

	if uid.Valid {
		v := int(uid.Int64)
		o.UserID = &v
	}
	if billingID.Valid {
		v := int(billingID.Int64)
		o.BillingID = &v
	}
	if promocodeID.Valid {
		v := int(promocodeID.Int64)
		o.PromocodeID = &v
	}
	if promoID.Valid && promoCode.Valid && promoPercent.Valid {
		o.Promocode = &Promocode{
			ID:              int(promoID.Int64),
			Code:            promoCode.String,
			DiscountPercent: int(promoPercent.Int64),
		}
	}

	items, err := r.queryItems(itemsByOrderQuery, o.ID)
	if err != nil {
		return Order{}, err
	}
	o.Items = items
	return o, nil
}

// AttachBilling inserts the billing snapshot and flips the open order into
// its checked-out state in one transaction.
func (r *PostgresRepository) AttachBilling(orderID int, billing Billing) (Billing, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Billing{}, err
	}
	defer tx.Rollback()

	var countryArg any
	if billing.CountryID != nil {
		countryArg = *billing.CountryID
	}

	var id int
	err = tx.QueryRow(
		insertBillingQuery,
		billing.FirstName,
		billing.LastName,
		billing.Address,
		billing.Address2,
		countryArg,
		billing.State,
		billing.Zip,
		billing.IsShippingSame,
		billing.PaymentType,
		billing.PaymentStatus,
		billing.SaveAsDefault,
		billing.PaymentReference,
	).Scan(&id)
	if err != nil {
		return Billing{}, err
	}

	result, err := tx.Exec(attachBillingQuery, id, orderID)
	if err != nil {
		return Billing{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Billing{}, err
	}
	if affected == 0 {
		return Billing{}, ErrAlreadyCheckedOut
	}

	if err := tx.Commit(); err != nil {
		return Billing{}, err
	}

	billing.ID = id
	return billing, nil
}

func (r *PostgresRepository) PromocodeByCode(code string) (Promocode, error) {
	var promo Promocode
	err := r.db.QueryRow(promocodeByCodeQuery, code).Scan(&promo.ID, &promo.Code, &promo.DiscountPercent)
	if err != nil {
		if err == sql.ErrNoRows {
			return Promocode{}, ErrUnknownPromo
		}
		return Promocode{}, err
	}
	return promo, nil
}

func (r *PostgresRepository) AttachPromocode(orderID, promocodeID int) error {
	result, err := r.db.Exec(attachPromocodeQuery, promocodeID, orderID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoOrder
	}
	return nil
}

func (r *PostgresRepository) queryItems(query string, arg any) ([]Item, error) {
	rows, err := r.db.Query(query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var item Item
		var original string
		var discounted sql.NullString
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&item.Product.ID, &item.Product.Name, &item.Product.SKU,
			&original, &discounted, &item.Product.FeaturedImage,
		); err != nil {
			return nil, err
		}

		price, err := decimal.NewFromString(original)
		if err != nil {
			return nil, err
		}
		item.Product.OriginalPrice = price
		if discounted.Valid {
			d, err := decimal.NewFromString(discounted.String)
			if err != nil {
				return nil, err
			}
			item.Product.DiscountedPrice = &d
		}

		out = append(out, item)
	}
	return out, nil
}

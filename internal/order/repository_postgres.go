package order

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"
	"github.com/noiratelier/storefront-backend/internal/product"
	"github.com/noiratelier/storefront-backend/internal/shipping"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `order_id, user_id, total, status, shipping_address, shipping_city, shipping_state, shipping_zip, shipping_country, shipping_phone, shipping_method, shipping_cost, tracking_number, carrier, estimated_delivery, actual_delivery, payment_method, payment_details, created_at, updated_at`

	insertOrderQuery = `
		INSERT INTO orders (user_id, total, status, shipping_address, shipping_city, shipping_state, shipping_zip, shipping_country, shipping_phone, shipping_method, shipping_cost, tracking_number, carrier, estimated_delivery, payment_method, payment_details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + orderColumns

	insertOrderItemQuery = `INSERT INTO order_products (order_id, product_id, quantity) VALUES ($1, $2, $3)`

	insertShipmentQuery = `
		INSERT INTO shipments (order_id, tracking_number, carrier, status, estimated_delivery, tracking_events)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING shipment_id, order_id, tracking_number, carrier, status, current_location, estimated_delivery, actual_delivery, tracking_events, created_at, updated_at`

	getOrderByIDQuery = `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`

	listOrdersByUserQuery = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	listItemsForOrdersQuery = `
		SELECT op.order_id, op.quantity,
		       p.product_id, p.name, p.brand, p.price, p.image, p.category, p.gender, p.description, p.created_at, p.updated_at
		FROM order_products op
		JOIN products p ON p.product_id = op.product_id
		WHERE op.order_id = ANY($1::int[])
		ORDER BY op.id`

	listShipmentsForOrdersQuery = `
		SELECT shipment_id, order_id, tracking_number, carrier, status, current_location, estimated_delivery, actual_delivery, tracking_events, created_at, updated_at
		FROM shipments
		WHERE order_id = ANY($1::int[])`

	updateOrderStatusQuery = `
		UPDATE orders SET status = $1, updated_at = now()
		WHERE order_id = $2
		RETURNING ` + orderColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create wraps order + line items + shipment in one transaction so a
// failure never leaves a partial aggregate behind. Line items whose
// product id does not resolve are skipped silently.
func (r *PostgresRepository) Create(ord Order, items []LineItem, sh shipping.Shipment) (Order, shipping.Shipment, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, shipping.Shipment{}, err
	}
	defer tx.Rollback()

	created, err := scanOrder(tx.QueryRow(insertOrderQuery,
		ord.UserID, ord.Total, ord.Status,
		ord.ShippingAddress, ord.ShippingCity, ord.ShippingState, ord.ShippingZip,
		ord.ShippingCountry, ord.ShippingPhone, ord.ShippingMethod, ord.ShippingCost,
		ord.TrackingNumber, ord.Carrier, ord.EstimatedDelivery,
		ord.PaymentMethod, ord.PaymentDetails))
	if err != nil {
		return Order{}, shipping.Shipment{}, err
	}

	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}

		var exists int
		if err := tx.QueryRow(`SELECT 1 FROM products WHERE product_id = $1`, item.ProductID).Scan(&exists); err != nil {
			if err == sql.ErrNoRows {
				continue
			}
			return Order{}, shipping.Shipment{}, err
		}

		if _, err := tx.Exec(insertOrderItemQuery, created.ID, item.ProductID, qty); err != nil {
			return Order{}, shipping.Shipment{}, err
		}
		created.Items = append(created.Items, Item{ProductID: item.ProductID, Quantity: qty})
	}

	events, err := json.Marshal(sh.TrackingEvents)
	if err != nil {
		return Order{}, shipping.Shipment{}, err
	}
	createdShipment, err := shipping.ScanShipment(tx.QueryRow(insertShipmentQuery,
		created.ID, sh.TrackingNumber, sh.Carrier, sh.Status, sh.EstimatedDelivery, events))
	if err != nil {
		return Order{}, shipping.Shipment{}, err
	}

	if err := tx.Commit(); err != nil {
		return Order{}, shipping.Shipment{}, err
	}
	return created, createdShipment, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(getOrderByIDQuery, id))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetDetail(id int) (Order, error) {
	ord, err := r.GetByID(id)
	if err != nil {
		return Order{}, err
	}

	orders := []Order{ord}
	if err := r.attachItemsAndShipments(orders); err != nil {
		return Order{}, err
	}
	return orders[0], nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(listOrdersByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItemsAndShipments(orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateStatus(id int, status string) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(updateOrderStatusQuery, status, id))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) attachItemsAndShipments(orders []Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int, 0, len(orders))
	index := make(map[int]*Order, len(orders))
	for i := range orders {
		orders[i].Items = make([]Item, 0)
		ids = append(ids, orders[i].ID)
		index[orders[i].ID] = &orders[i]
	}

	rows, err := r.db.Query(listItemsForOrdersQuery, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID int
			item    Item
			p       product.Product
			gender  sql.NullString
			desc    sql.NullString
		)
		err := rows.Scan(&orderID, &item.Quantity,
			&p.ID, &p.Name, &p.Brand, &p.Price, &p.Image, &p.Category,
			&gender, &desc, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return err
		}
		if gender.Valid {
			p.Gender = &gender.String
		}
		if desc.Valid {
			p.Description = &desc.String
		}
		item.ProductID = p.ID
		item.Product = &p
		if ord, ok := index[orderID]; ok {
			ord.Items = append(ord.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	shRows, err := r.db.Query(listShipmentsForOrdersQuery, pq.Array(ids))
	if err != nil {
		return err
	}
	defer shRows.Close()

	for shRows.Next() {
		sh, err := shipping.ScanShipment(shRows)
		if err != nil {
			return err
		}
		if ord, ok := index[sh.OrderID]; ok {
			copied := sh
			ord.Shipment = &copied
		}
	}
	return shRows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		ord       Order
		addr      sql.NullString
		city      sql.NullString
		state     sql.NullString
		zip       sql.NullString
		country   sql.NullString
		phone     sql.NullString
		method    sql.NullString
		tracking  sql.NullString
		carrier   sql.NullString
		estimated sql.NullTime
		actual    sql.NullTime
		payMethod sql.NullString
		payBlob   sql.NullString
	)
	err := row.Scan(&ord.ID, &ord.UserID, &ord.Total, &ord.Status,
		&addr, &city, &state, &zip, &country, &phone, &method, &ord.ShippingCost,
		&tracking, &carrier, &estimated, &actual, &payMethod, &payBlob,
		&ord.CreatedAt, &ord.UpdatedAt)
	if err != nil {
		return Order{}, err
	}
	if addr.Valid {
		ord.ShippingAddress = &addr.String
	}
	if city.Valid {
		ord.ShippingCity = &city.String
	}
	if state.Valid {
		ord.ShippingState = &state.String
	}
	if zip.Valid {
		ord.ShippingZip = &zip.String
	}
	if country.Valid {
		ord.ShippingCountry = country.String
	}
	if phone.Valid {
		ord.ShippingPhone = &phone.String
	}
	if method.Valid {
		ord.ShippingMethod = method.String
	}
	if tracking.Valid {
		ord.TrackingNumber = tracking.String
	}
	if carrier.Valid {
		ord.Carrier = carrier.String
	}
	if estimated.Valid {
		t := estimated.Time
		ord.EstimatedDelivery = &t
	}
	if actual.Valid {
		t := actual.Time
		ord.ActualDelivery = &t
	}
	if payMethod.Valid {
		ord.PaymentMethod = payMethod.String
	}
	if payBlob.Valid {
		ord.PaymentDetails = &payBlob.String
	}
	return ord, nil
}

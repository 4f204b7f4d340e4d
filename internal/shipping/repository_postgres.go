package shipping

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	shipmentColumns = `shipment_id, order_id, tracking_number, carrier, status, current_location, estimated_delivery, actual_delivery, tracking_events, created_at, updated_at`

	getShipmentByOrderQuery    = `SELECT ` + shipmentColumns + ` FROM shipments WHERE order_id = $1`
	getShipmentByTrackingQuery = `SELECT ` + shipmentColumns + ` FROM shipments WHERE tracking_number = $1`

	saveShipmentQuery = `
		UPDATE shipments
		SET status = $1, current_location = $2, tracking_events = $3, actual_delivery = $4, updated_at = now()
		WHERE shipment_id = $5
		RETURNING ` + shipmentColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByOrderID(orderID int) (Shipment, error) {
	return r.getOne(getShipmentByOrderQuery, orderID)
}

func (r *PostgresRepository) GetByTrackingNumber(trackingNumber string) (Shipment, error) {
	return r.getOne(getShipmentByTrackingQuery, trackingNumber)
}

func (r *PostgresRepository) getOne(query string, arg interface{}) (Shipment, error) {
	sh, err := ScanShipment(r.db.QueryRow(query, arg))
	if err == sql.ErrNoRows {
		return Shipment{}, ErrNotFound
	}
	if err != nil {
		return Shipment{}, err
	}
	return sh, nil
}

func (r *PostgresRepository) Save(sh Shipment) (Shipment, error) {
	events, err := json.Marshal(sh.TrackingEvents)
	if err != nil {
		return Shipment{}, err
	}

	saved, err := ScanShipment(r.db.QueryRow(saveShipmentQuery,
		sh.Status, sh.CurrentLocation, events, sh.ActualDelivery, sh.ID))
	if err == sql.ErrNoRows {
		return Shipment{}, ErrNotFound
	}
	if err != nil {
		return Shipment{}, err
	}
	return saved, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanShipment reads one shipments row. Exported because the order
// repository selects shipments inside its own queries.
func ScanShipment(row rowScanner) (Shipment, error) {
	var (
		sh        Shipment
		location  sql.NullString
		estimated sql.NullTime
		actual    sql.NullTime
		events    []byte
	)
	err := row.Scan(&sh.ID, &sh.OrderID, &sh.TrackingNumber, &sh.Carrier, &sh.Status,
		&location, &estimated, &actual, &events, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return Shipment{}, err
	}
	if location.Valid {
		sh.CurrentLocation = &location.String
	}
	if estimated.Valid {
		t := estimated.Time
		sh.EstimatedDelivery = &t
	}
	if actual.Valid {
		t := actual.Time
		sh.ActualDelivery = &t
	}
	sh.TrackingEvents = make([]TrackingEvent, 0)
	if len(events) > 0 {
		if err := json.Unmarshal(events, &sh.TrackingEvents); err != nil {
			return Shipment{}, err
		}
	}
	return sh, nil
}

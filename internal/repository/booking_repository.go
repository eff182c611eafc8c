package repository

import (
	"context"
	"fmt"
	"time"

	"mela-ticketing/internal/model"
	apperrors "mela-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
	FindByID(ctx context.Context, id int) (*model.Booking, error)
	SetQRData(ctx context.Context, id int, qrData string) error
	AttachGatewayOrder(ctx context.Context, id int, orderID string) error
	MarkPaid(ctx context.Context, id int, paymentID, orderID string) (*model.Booking, error)
	Redeem(ctx context.Context, id int, requirePaid bool) error

	CountAll(ctx context.Context) (int, error)
	SumRevenue(ctx context.Context, statuses []model.BookingStatus) (int, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error)

	// Transaction methods
	DeleteByRideIDTx(ctx context.Context, tx pgx.Tx, rideID int) (int64, error)
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	query := `
		INSERT INTO bookings (
			ride_id, name, phone, email, quantity, total_amount, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, ride_id, name, phone, email, quantity, total_amount, status,
		          qr_data, gateway_order_id, gateway_payment_id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		booking.RideID, booking.Name, booking.Phone, booking.Email,
		booking.Quantity, booking.TotalAmount, booking.Status,
	).Scan(
		&booking.ID,
		&booking.RideID,
		&booking.Name,
		&booking.Phone,
		&booking.Email,
		&booking.Quantity,
		&booking.TotalAmount,
		&booking.Status,
		&booking.QRData,
		&booking.GatewayOrderID,
		&booking.GatewayPaymentID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepositoryImpl) List(ctx context.Context) ([]*model.Booking, error) {
	query := `
		SELECT b.id, b.ride_id, b.name, b.phone, b.email, b.quantity, b.total_amount,
		       b.status, b.qr_data, b.gateway_order_id, b.gateway_payment_id,
		       b.created_at, b.updated_at,
		       r.id, r.name, r.price
		FROM bookings b
		LEFT JOIN rides r ON r.id = b.ride_id
		ORDER BY b.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*model.Booking, 0)

	for rows.Next() {
		var booking model.Booking
		var rideID *int
		var rideName *string
		var ridePrice *int
		err := rows.Scan(
			&booking.ID,
			&booking.RideID,
			&booking.Name,
			&booking.Phone,
			&booking.Email,
			&booking.Quantity,
			&booking.TotalAmount,
			&booking.Status,
			&booking.QRData,
			&booking.GatewayOrderID,
			&booking.GatewayPaymentID,
			&booking.CreatedAt,
			&booking.UpdatedAt,
			&rideID,
			&rideName,
			&ridePrice,
		)
		if err != nil {
			return nil, err
		}
		if rideID != nil {
			booking.Ride = &model.Ride{ID: *rideID, Name: *rideName, Price: *ridePrice}
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Booking, error) {
	query := `
		SELECT id, ride_id, name, phone, email, quantity, total_amount, status,
		       qr_data, gateway_order_id, gateway_payment_id, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking model.Booking
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.RideID,
		&booking.Name,
		&booking.Phone,
		&booking.Email,
		&booking.Quantity,
		&booking.TotalAmount,
		&booking.Status,
		&booking.QRData,
		&booking.GatewayOrderID,
		&booking.GatewayPaymentID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

// SetQRData 寫入 qr_data；僅允許寫入一次，已有內容的列不再更新
func (r *BookingRepositoryImpl) SetQRData(ctx context.Context, id int, qrData string) error {
	query := `
		UPDATE bookings
		SET qr_data = $1, updated_at = $2
		WHERE id = $3 AND qr_data = ''
	`

	result, err := r.pool.Exec(ctx, query, qrData, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepositoryImpl) AttachGatewayOrder(ctx context.Context, id int, orderID string) error {
	query := `
		UPDATE bookings
		SET gateway_order_id = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.pool.Exec(ctx, query, orderID, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

// MarkPaid 標記已付款。已核銷的票不可退回 paid，條件式 UPDATE 擋下重放的回調
func (r *BookingRepositoryImpl) MarkPaid(ctx context.Context, id int, paymentID, orderID string) (*model.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1, gateway_payment_id = $2, gateway_order_id = $3, updated_at = $4
		WHERE id = $5 AND status <> $6
		RETURNING id, ride_id, name, phone, email, quantity, total_amount, status,
		          qr_data, gateway_order_id, gateway_payment_id, created_at, updated_at
	`

	var booking model.Booking
	err := r.pool.QueryRow(ctx, query,
		model.BookingStatusPaid, paymentID, orderID, time.Now().UTC(), id,
		model.BookingStatusUsed,
	).Scan(
		&booking.ID,
		&booking.RideID,
		&booking.Name,
		&booking.Phone,
		&booking.Email,
		&booking.Quantity,
		&booking.TotalAmount,
		&booking.Status,
		&booking.QRData,
		&booking.GatewayOrderID,
		&booking.GatewayPaymentID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			// 沒有列被更新：可能不存在，也可能已核銷
			existing, ferr := r.FindByID(ctx, id)
			if ferr != nil {
				return nil, ferr
			}
			if existing.Status == model.BookingStatusUsed {
				return nil, apperrors.ErrAlreadyUsed
			}
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to mark booking paid: %w", err)
	}

	return &booking, nil
}

// Redeem 將票券標記為已使用。單一條件式 UPDATE 配合 RowsAffected 判定，
// 兩個同時掃描同一張票的請求不會同時成功
func (r *BookingRepositoryImpl) Redeem(ctx context.Context, id int, requirePaid bool) error {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status <> $1
	`
	args := []interface{}{model.BookingStatusUsed, time.Now().UTC(), id}

	if requirePaid {
		query = `
			UPDATE bookings
			SET status = $1, updated_at = $2
			WHERE id = $3 AND status = $4
		`
		args = append(args, model.BookingStatusPaid)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	// 沒有列被更新：再查一次目前狀態以區分失敗原因
	booking, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status == model.BookingStatusUsed {
		return apperrors.ErrAlreadyUsed
	}

	return apperrors.ErrPaymentRequired
}

func (r *BookingRepositoryImpl) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingRepositoryImpl) SumRevenue(ctx context.Context, statuses []model.BookingStatus) (int, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM bookings
		WHERE status = ANY($1)
	`

	raw := make([]string, len(statuses))
	for i, s := range statuses {
		raw[i] = string(s)
	}

	var total int
	err := r.pool.QueryRow(ctx, query, raw).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *BookingRepositoryImpl) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE created_at >= $1 AND created_at <= $2
	`

	var count int
	err := r.pool.QueryRow(ctx, query, start, end).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingRepositoryImpl) DeleteByRideIDTx(ctx context.Context, tx pgx.Tx, rideID int) (int64, error) {
	query := `
		DELETE FROM bookings
		WHERE ride_id = $1
	`

	result, err := tx.Exec(ctx, query, rideID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

package model

import "time"

// BookingStatus 預訂狀態類型
type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusUsed      BookingStatus = "used"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid 驗證狀態是否有效
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusBooked, BookingStatusPaid, BookingStatusUsed, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
// booked → paid → used 單向前進；cancelled 可自 booked/paid 進入且不可離開
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	transitions := map[BookingStatus][]BookingStatus{
		BookingStatusBooked:    {BookingStatusPaid, BookingStatusUsed, BookingStatusCancelled},
		BookingStatusPaid:      {BookingStatusUsed, BookingStatusCancelled},
		BookingStatusUsed:      {},
		BookingStatusCancelled: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Booking 預訂模型
type Booking struct {
	ID               int           `json:"id" db:"id"`
	RideID           int           `json:"ride_id" db:"ride_id"`
	Name             string        `json:"name" db:"name"`
	Phone            *string       `json:"phone,omitempty" db:"phone"`
	Email            *string       `json:"email,omitempty" db:"email"`
	Quantity         int           `json:"quantity" db:"quantity"`
	TotalAmount      int           `json:"total_amount" db:"total_amount"`
	Status           BookingStatus `json:"status" db:"status"`
	QRData           string        `json:"qr_data" db:"qr_data"`
	GatewayOrderID   *string       `json:"gateway_order_id,omitempty" db:"gateway_order_id"`
	GatewayPaymentID *string       `json:"gateway_payment_id,omitempty" db:"gateway_payment_id"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`

	Ride *Ride `json:"ride,omitempty" db:"-"`
}

// IsRedeemed 檢查票券是否已使用
func (b *Booking) IsRedeemed() bool {
	return b.Status == BookingStatusUsed
}

// CreateBookingRequest 建立預訂請求；Quantity 缺漏或小於 1 時以 1 計
type CreateBookingRequest struct {
	RideID   int     `json:"ride_id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Quantity int     `json:"quantity"`
}

// ConfirmPaymentRequest 金流回調內容；Signature 可為空(未設定驗章時)
type ConfirmPaymentRequest struct {
	BookingID        int    `json:"booking_id" form:"booking_id" binding:"required"`
	GatewayPaymentID string `json:"razorpay_payment_id" form:"razorpay_payment_id" binding:"required"`
	GatewayOrderID   string `json:"razorpay_order_id" form:"razorpay_order_id" binding:"required"`
	Signature        string `json:"razorpay_signature" form:"razorpay_signature"`
}

// BookingResult 建立預訂的結果；未設定金流時 PaymentPending 為 false、直接出票
type BookingResult struct {
	Booking        *Booking `json:"booking"`
	PaymentPending bool     `json:"payment_pending"`
	GatewayKeyID   string   `json:"gateway_key_id,omitempty"`
}

// TicketLookup 掃描端查詢結果；僅回傳 id / 設施名 / 狀態，不帶購票人資料
type TicketLookup struct {
	ID     int           `json:"id"`
	Ride   string        `json:"ride"`
	Status BookingStatus `json:"status"`
}

package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "mela-ticketing/pkg/app_errors"
)

const ticketTokenPrefix = "BOOKING:"

// FormatTicketToken 產生票券 QR 內容：BOOKING:<id>:<建立時間的 epoch 秒>
// 時間戳目前僅作為保留欄位，驗票時不檢查
func FormatTicketToken(bookingID int, createdAt time.Time) string {
	return fmt.Sprintf("%s%d:%d", ticketTokenPrefix, bookingID, createdAt.Unix())
}

// ParseTicketToken 解析票券 token，回傳 booking id
// 接受 BOOKING:<id>:<ts> 格式，也接受純數字 id
func ParseTicketToken(token string) (int, error) {
	raw := strings.TrimSpace(token)
	if strings.HasPrefix(raw, ticketTokenPrefix) {
		parts := strings.Split(raw, ":")
		if len(parts) < 2 {
			return 0, apperrors.ErrInvalidToken
		}
		raw = parts[1]
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, apperrors.ErrInvalidToken
	}
	return id, nil
}

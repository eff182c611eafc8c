package payment

import "context"

// Gateway 金流供應商的建單介面。amountMinor 為最小幣值單位(盧比 → paise)
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error)
	// KeyID 前端付款元件需要的公開金鑰識別
	KeyID() string
}

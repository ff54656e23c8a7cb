package domain

const (
	NotificationIgnored   = "ignored"
	NotificationProcessed = "processed"

	DefaultSyncLimit = 20
	MaxSyncLimit     = 50
)

// NotificationResult descreve o destino de uma notificação do webhook
type NotificationResult struct {
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
	OrderID int64  `json:"order_id,omitempty"`
}

type SyncResult struct {
	Processed int `json:"processed"`
	Total     int `json:"total"`
}

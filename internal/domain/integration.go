package domain

import "time"

type IntegrationStatus struct {
	Connected bool  `json:"connected"`
	SellerID  int64 `json:"seller_id"`
}

type OAuthCallbackResult struct {
	OK        bool      `json:"ok"`
	SellerID  int64     `json:"seller_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

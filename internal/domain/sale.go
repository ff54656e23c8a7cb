package domain

import "time"

const DefaultItemTitle = "Sin título"

type SaleItem struct {
	ItemID    string  `json:"item_id"`
	Title     string  `json:"title"`
	SKU       *string `json:"sku"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type Sale struct {
	ID          string     `json:"-"`
	MeliOrderID int64      `json:"meli_order_id"`
	CustomerID  string     `json:"-"`
	Customer    *Customer  `json:"customer,omitempty"`
	Date        time.Time  `json:"date"`
	Total       float64    `json:"total"`
	Items       []SaleItem `json:"items"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type SaleList struct {
	Data  []*Sale `json:"data"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
	Total int     `json:"total"`
}

// MeliToken guarda o par OAuth de um vendedor. Os tokens nunca são serializados.
type MeliToken struct {
	SellerID     int64     `json:"seller_id"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

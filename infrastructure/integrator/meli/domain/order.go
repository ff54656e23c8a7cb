package melidomain

import (
	"errors"
	"time"
)

var ErrMissingDateCreated = errors.New("date_created ausente na ordem")

type Order struct {
	ID          FlexInt      `json:"id"`
	Status      string       `json:"status"`
	DateCreated string       `json:"date_created"`
	TotalAmount float64      `json:"total_amount"`
	Buyer       *Buyer       `json:"buyer"`
	OrderItems  []OrderItem  `json:"order_items"`
	Shipping    *ShippingRef `json:"shipping"`
}

type Buyer struct {
	ID        FlexInt `json:"id"`
	Nickname  string  `json:"nickname"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
}

type OrderItem struct {
	Item      ItemRef `json:"item"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type ItemRef struct {
	ID        FlexString `json:"id"`
	Title     string     `json:"title"`
	SellerSKU *string    `json:"seller_sku"`
}

type ShippingRef struct {
	ID FlexInt `json:"id"`
}

type OrderSearchResult struct {
	Results []Order `json:"results"`
	Paging  Paging  `json:"paging"`
}

type Paging struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CreatedAt interpreta date_created (ISO 8601 com fuso)
func (o *Order) CreatedAt() (time.Time, error) {
	if o.DateCreated == "" {
		return time.Time{}, ErrMissingDateCreated
	}

	return time.Parse(time.RFC3339, o.DateCreated)
}

func (o *Order) BuyerID() int64 {
	if o.Buyer == nil {
		return 0
	}
	return o.Buyer.ID.Int64()
}

// ShipmentID retorna 0 quando a ordem não tem envio
func (o *Order) ShipmentID() int64 {
	if o.Shipping == nil {
		return 0
	}
	return o.Shipping.ID.Int64()
}

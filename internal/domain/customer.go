package domain

import (
	"time"

	"github.com/vfg2006/meli-sales-api/pkg/utils"
)

const (
	DefaultCustomerName = "Sin nombre"

	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	FullText   string `json:"full_text"`
}

// Customer é identificado externamente pelo MeliUserID. O ID interno nunca sai da API.
type Customer struct {
	ID           string     `json:"-"`
	MeliUserID   int64      `json:"meli_user_id"`
	Name         string     `json:"name"`
	Alias        string     `json:"alias"`
	Phone        *string    `json:"phone"`
	Note         string     `json:"note"`
	Address      Address    `json:"address"`
	LastSaleDate *time.Time `json:"last_sale_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CustomerFilter struct {
	Page  int
	Limit int // 0 lista todos
	Query string
}

// Offset da página atual. Sem paginação quando Limit é 0.
func (f CustomerFilter) Offset() int {
	return utils.Offset(f.Page, f.Limit)
}

type CustomerList struct {
	Data  []*Customer `json:"data"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Total int         `json:"total"`
}

type CustomerSalesSummary struct {
	CustomerID int64   `json:"customer_id"`
	Count      int     `json:"count"`
	Total      float64 `json:"total"`
	Sales      []*Sale `json:"sales"`
}

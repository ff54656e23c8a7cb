package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meli-sales-api/internal/domain"
)

func TestBuildListCustomersQuery(t *testing.T) {
	tests := []struct {
		name         string
		filter       domain.CustomerFilter
		contains     []string
		notContains  []string
		expectedArgs []any
	}{
		{
			name:   "Segunda página de 10 pula os 10 primeiros",
			filter: domain.CustomerFilter{Page: 2, Limit: 10},
			contains: []string{
				"LEFT JOIN (SELECT customer_id, MAX(date) AS last_sale_date FROM sales GROUP BY customer_id) ls",
				"ORDER BY ls.last_sale_date DESC NULLS LAST, c.updated_at DESC",
				"LIMIT 10",
				"OFFSET 10",
			},
			notContains:  []string{"ILIKE"},
			expectedArgs: nil,
		},
		{
			name:   "Primeira página não tem deslocamento",
			filter: domain.CustomerFilter{Page: 1, Limit: 20},
			contains: []string{
				"LIMIT 20",
				"OFFSET 0",
			},
		},
		{
			name:   "Página enorme não estoura o deslocamento",
			filter: domain.CustomerFilter{Page: 9000000000000000000, Limit: 20},
			contains: []string{
				"LIMIT 20",
				"OFFSET 19999980",
			},
		},
		{
			name:        "Limite zero lista todos",
			filter:      domain.CustomerFilter{Page: 3, Limit: 0},
			notContains: []string{"LIMIT", "OFFSET"},
		},
		{
			name:   "Busca em nome, apelido e cidade",
			filter: domain.CustomerFilter{Page: 1, Limit: 20, Query: " córdoba "},
			contains: []string{
				"WHERE (c.name ILIKE $1 OR c.alias ILIKE $2 OR c.city ILIKE $3)",
			},
			expectedArgs: []any{"%córdoba%", "%córdoba%", "%córdoba%"},
		},
		{
			name:         "Curingas da busca são escapados",
			filter:       domain.CustomerFilter{Page: 1, Limit: 20, Query: "50%_off"},
			contains:     []string{"ILIKE"},
			expectedArgs: []any{`%50\%\_off%`, `%50\%\_off%`, `%50\%\_off%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListCustomersQuery(tt.filter).ToSql()
			require.NoError(t, err)

			for _, fragment := range tt.contains {
				assert.Contains(t, query, fragment)
			}
			for _, fragment := range tt.notContains {
				assert.NotContains(t, query, fragment)
			}
			if tt.expectedArgs != nil {
				assert.Equal(t, tt.expectedArgs, args)
			}
		})
	}
}

func TestBuildCountCustomersQuery(t *testing.T) {
	query, args, err := buildCountCustomersQuery(domain.CustomerFilter{Page: 5, Limit: 10, Query: "ana"}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM customers c WHERE (c.name ILIKE $1 OR c.alias ILIKE $2 OR c.city ILIKE $3)", query)
	assert.Len(t, args, 3)
	assert.NotContains(t, query, "LIMIT")
}

func TestBuildUpsertCustomerQuery(t *testing.T) {
	phone := "11 5555"
	customer := &domain.Customer{
		ID:         "abc123",
		MeliUserID: 42,
		Name:       "Ana",
		Alias:      "ANA_ML",
		Phone:      &phone,
		Note:       "não deve ser gravada",
		Address:    domain.Address{City: "Rosario"},
	}

	query, args, err := buildUpsertCustomerQuery(customer).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "ON CONFLICT (meli_user_id) DO UPDATE SET")
	assert.Contains(t, query, "RETURNING id, meli_user_id")
	assert.NotContains(t, query, "note = EXCLUDED.note")
	assert.NotContains(t, args, "não deve ser gravada")
	assert.Equal(t, "abc123", args[0])
	assert.Equal(t, int64(42), args[1])
}

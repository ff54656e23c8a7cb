package sale

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meli-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"github.com/vfg2006/meli-sales-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func TestService_ListSales(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		page          int
		limit         int
		expectedPage  int
		expectedLimit int
	}{
		{name: "Valores normais", page: 2, limit: 10, expectedPage: 2, expectedLimit: 10},
		{name: "Página negativa", page: -3, limit: 20, expectedPage: 1, expectedLimit: 20},
		{name: "Limite acima do máximo", page: 1, limit: 1000, expectedPage: 1, expectedLimit: 100},
		{name: "Limite zero vira 1", page: 1, limit: 0, expectedPage: 1, expectedLimit: 1},
		{name: "Página enorme é limitada", page: 9000000000000000000, limit: 20, expectedPage: utils.MaxPage, expectedLimit: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockSaleRepository(ctrl)
			service := NewService(repo)

			sales := []*domain.Sale{{MeliOrderID: 1, Customer: &domain.Customer{MeliUserID: 777}}}
			repo.EXPECT().List(ctx, tt.expectedPage, tt.expectedLimit).Return(sales, 7, nil)

			result, err := service.ListSales(ctx, tt.page, tt.limit)
			require.NoError(t, err)

			assert.Equal(t, sales, result.Data)
			assert.Equal(t, tt.expectedPage, result.Page)
			assert.Equal(t, tt.expectedLimit, result.Limit)
			assert.Equal(t, 7, result.Total)
		})
	}

	t.Run("Erro do repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSaleRepository(ctrl)
		service := NewService(repo)

		repo.EXPECT().List(ctx, 1, 20).Return(nil, 0, errors.New("falha"))

		_, err := service.ListSales(ctx, 1, 20)
		assert.ErrorIs(t, err, ErrFetchSales)
	})
}

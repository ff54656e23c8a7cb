package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sales-api/infrastructure/repository"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"github.com/vfg2006/meli-sales-api/pkg/utils"
)

var ErrFetchSales = errors.New("erro ao listar vendas no banco de dados")

type SaleService interface {
	ListSales(ctx context.Context, page, limit int) (*domain.SaleList, error)
}

type Service struct {
	saleRepository repository.SaleRepository
}

func NewService(saleRepository repository.SaleRepository) SaleService {
	return &Service{
		saleRepository: saleRepository,
	}
}

// ListSales lista as vendas mais recentes primeiro, com o cliente de cada uma
func (s *Service) ListSales(ctx context.Context, page, limit int) (*domain.SaleList, error) {
	page = utils.Clamp(page, 1, utils.MaxPage)
	limit = utils.Clamp(limit, 1, domain.MaxPageLimit)

	sales, total, err := s.saleRepository.List(ctx, page, limit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar vendas")
		return nil, fmt.Errorf("%w: %w", ErrFetchSales, err)
	}

	return &domain.SaleList{
		Data:  sales,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

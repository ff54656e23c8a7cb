package customer

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sales-api/infrastructure/repository"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"github.com/vfg2006/meli-sales-api/pkg/apiErrors"
	"github.com/vfg2006/meli-sales-api/pkg/utils"
)

type CustomerService interface {
	ListCustomers(ctx context.Context, filter domain.CustomerFilter) (*domain.CustomerList, error)
	ListCustomerSales(ctx context.Context, meliUserID int64) (*domain.CustomerSalesSummary, error)
	UpdatePhone(ctx context.Context, meliUserID int64, phone *string) (*domain.Customer, error)
	UpdateNote(ctx context.Context, meliUserID int64, note string) (*domain.Customer, error)
}

type Service struct {
	customerRepository repository.CustomerRepository
	saleRepository     repository.SaleRepository
}

func NewService(customerRepository repository.CustomerRepository, saleRepository repository.SaleRepository) CustomerService {
	return &Service{
		customerRepository: customerRepository,
		saleRepository:     saleRepository,
	}
}

// ListCustomers lista os clientes com a venda mais recente primeiro. Limit 0 devolve todos.
func (s *Service) ListCustomers(ctx context.Context, filter domain.CustomerFilter) (*domain.CustomerList, error) {
	filter.Page = utils.Clamp(filter.Page, 1, utils.MaxPage)
	if filter.Limit < 0 {
		filter.Limit = domain.DefaultPageLimit
	}
	if filter.Limit > domain.MaxPageLimit {
		filter.Limit = domain.MaxPageLimit
	}

	customers, total, err := s.customerRepository.List(ctx, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes")
		return nil, NewCustomerError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes no banco de dados")
	}

	return &domain.CustomerList{
		Data:  customers,
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
	}, nil
}

func (s *Service) ListCustomerSales(ctx context.Context, meliUserID int64) (*domain.CustomerSalesSummary, error) {
	customer, err := s.findCustomer(ctx, meliUserID)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepository.ListByCustomerID(ctx, customer.ID)
	if err != nil {
		logrus.WithError(err).WithField("meli_user_id", meliUserID).Error("Erro ao listar vendas do cliente")
		return nil, NewCustomerErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, meliUserID, "Falha ao listar vendas do cliente")
	}

	totals := make([]float64, 0, len(sales))
	for _, sale := range sales {
		totals = append(totals, sale.Total)
	}

	return &domain.CustomerSalesSummary{
		CustomerID: meliUserID,
		Count:      len(sales),
		Total:      utils.SumRounded(totals...),
		Sales:      sales,
	}, nil
}

// UpdatePhone substitui o telefone. nil apaga o valor armazenado.
func (s *Service) UpdatePhone(ctx context.Context, meliUserID int64, phone *string) (*domain.Customer, error) {
	customer, err := s.customerRepository.UpdatePhone(ctx, meliUserID, phone)
	if err != nil {
		logrus.WithError(err).WithField("meli_user_id", meliUserID).Error("Erro ao atualizar telefone")
		return nil, NewCustomerErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, meliUserID, "Falha ao atualizar telefone")
	}
	if customer == nil {
		return nil, NewCustomerErrorWithID(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, meliUserID, "")
	}

	return customer, nil
}

func (s *Service) UpdateNote(ctx context.Context, meliUserID int64, note string) (*domain.Customer, error) {
	customer, err := s.customerRepository.UpdateNote(ctx, meliUserID, note)
	if err != nil {
		logrus.WithError(err).WithField("meli_user_id", meliUserID).Error("Erro ao atualizar nota")
		return nil, NewCustomerErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, meliUserID, "Falha ao atualizar nota")
	}
	if customer == nil {
		return nil, NewCustomerErrorWithID(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, meliUserID, "")
	}

	return customer, nil
}

func (s *Service) findCustomer(ctx context.Context, meliUserID int64) (*domain.Customer, error) {
	customer, err := s.customerRepository.GetByMeliUserID(ctx, meliUserID)
	if err != nil {
		logrus.WithError(err).WithField("meli_user_id", meliUserID).Error("Erro ao buscar cliente")
		return nil, NewCustomerErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, meliUserID, "Falha ao buscar cliente")
	}
	if customer == nil {
		return nil, NewCustomerErrorWithID(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, meliUserID, "")
	}

	return customer, nil
}

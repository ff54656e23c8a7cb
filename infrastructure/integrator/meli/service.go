package meli

import (
	"context"

	"github.com/sirupsen/logrus"
	melidomain "github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/domain"
	"github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/meliclient"
	"github.com/vfg2006/meli-sales-api/infrastructure/repository"
	"github.com/vfg2006/meli-sales-api/internal/domain"
)

type MeliIntegrator interface {
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*melidomain.TokenGrant, error)
	StoreGrant(ctx context.Context, sellerID int64, grant *melidomain.TokenGrant) (*domain.MeliToken, error)
	IsConnected(ctx context.Context, sellerID int64) (bool, error)
	GetOrder(ctx context.Context, sellerID, orderID int64) (*melidomain.Order, error)
	GetShipment(ctx context.Context, sellerID, shipmentID int64) (*melidomain.Shipment, error)
	SearchRecentOrders(ctx context.Context, sellerID int64, limit int) ([]melidomain.Order, error)
}

type MeliService struct {
	Client       meliclient.Client
	tokenManager *meliclient.TokenManager
	tokenRepo    repository.MeliTokenRepository
}

func New(client meliclient.Client, tokenManager *meliclient.TokenManager, tokenRepo repository.MeliTokenRepository) MeliIntegrator {
	return &MeliService{
		Client:       client,
		tokenManager: tokenManager,
		tokenRepo:    tokenRepo,
	}
}

func (s *MeliService) AuthorizationURL(state string) string {
	return s.Client.AuthCodeURL(state)
}

func (s *MeliService) ExchangeCode(ctx context.Context, code string) (*melidomain.TokenGrant, error) {
	grant, err := s.Client.ExchangeCode(ctx, code)
	if err != nil {
		logrus.WithError(err).Error("oauth: falha ao trocar code por token")
		return nil, err
	}

	return grant, nil
}

func (s *MeliService) StoreGrant(ctx context.Context, sellerID int64, grant *melidomain.TokenGrant) (*domain.MeliToken, error) {
	return s.tokenManager.StoreGrant(ctx, sellerID, grant)
}

// IsConnected indica se já existe token armazenado para o vendedor
func (s *MeliService) IsConnected(ctx context.Context, sellerID int64) (bool, error) {
	token, err := s.tokenRepo.GetBySellerID(ctx, sellerID)
	if err != nil {
		return false, err
	}

	return token != nil, nil
}

func (s *MeliService) GetOrder(ctx context.Context, sellerID, orderID int64) (*melidomain.Order, error) {
	accessToken, err := s.tokenManager.GetValidAccessToken(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	order, err := s.Client.GetOrder(ctx, accessToken, orderID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"order_id": orderID,
			"error":    err.Error(),
		}).Error("orders: falha ao buscar ordem na API")
		return nil, err
	}

	return order, nil
}

func (s *MeliService) GetShipment(ctx context.Context, sellerID, shipmentID int64) (*melidomain.Shipment, error) {
	accessToken, err := s.tokenManager.GetValidAccessToken(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	return s.Client.GetShipment(ctx, accessToken, shipmentID)
}

func (s *MeliService) SearchRecentOrders(ctx context.Context, sellerID int64, limit int) ([]melidomain.Order, error) {
	accessToken, err := s.tokenManager.GetValidAccessToken(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	result, err := s.Client.SearchOrders(ctx, accessToken, sellerID, limit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"seller_id": sellerID,
			"error":     err.Error(),
		}).Error("orders: falha ao pesquisar ordens recentes")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"seller_id": sellerID,
		"returned":  len(result.Results),
		"total":     result.Paging.Total,
	}).Debug("orders: ordens recentes recuperadas")

	return result.Results, nil
}

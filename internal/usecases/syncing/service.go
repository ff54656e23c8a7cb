package syncing

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli"
	melidomain "github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/domain"
	"github.com/vfg2006/meli-sales-api/infrastructure/repository"
	"github.com/vfg2006/meli-sales-api/internal/config"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"github.com/vfg2006/meli-sales-api/pkg/apiErrors"
	"github.com/vfg2006/meli-sales-api/pkg/utils"
)

type SyncService interface {
	PersistOrderAndClient(ctx context.Context, order *melidomain.Order, shipment *melidomain.Shipment) error
	HandleNotification(ctx context.Context, payload []byte) (domain.NotificationResult, error)
	SyncRecent(ctx context.Context, limit int) (*domain.SyncResult, error)
}

type Service struct {
	customerRepository repository.CustomerRepository
	saleRepository     repository.SaleRepository
	meliService        meli.MeliIntegrator
	cfg                *config.Config
}

func NewService(
	customerRepository repository.CustomerRepository,
	saleRepository repository.SaleRepository,
	meliService meli.MeliIntegrator,
	cfg *config.Config,
) SyncService {
	return &Service{
		customerRepository: customerRepository,
		saleRepository:     saleRepository,
		meliService:        meliService,
		cfg:                cfg,
	}
}

// PersistOrderAndClient grava o cliente (comprador) e depois a venda da ordem.
// shipment pode ser nil. As duas gravações não compartilham transação.
func (s *Service) PersistOrderAndClient(ctx context.Context, order *melidomain.Order, shipment *melidomain.Shipment) error {
	buyerID := order.BuyerID()
	if buyerID == 0 {
		return ErrMissingBuyerID
	}

	orderID := order.ID.Int64()
	if orderID == 0 {
		return ErrMissingOrderID
	}

	date, err := order.CreatedAt()
	if errors.Is(err, melidomain.ErrMissingDateCreated) {
		return fmt.Errorf("%w: ordem %d", ErrMissingOrderDate, orderID)
	}
	if err != nil {
		return fmt.Errorf("date_created inválido na ordem %d: %w", orderID, err)
	}

	existing, err := s.customerRepository.GetByMeliUserID(ctx, buyerID)
	if err != nil {
		return err
	}

	customer := &domain.Customer{
		MeliUserID: buyerID,
		Name:       ResolveName(order.Buyer, shipment),
		Alias:      ResolveAlias(order.Buyer, existing),
		Phone:      MergePhone(existing, BuildPhone(shipment)),
	}

	incoming := BuildAddress(shipment)
	if existing != nil {
		customer.ID = existing.ID
		customer.Address = MergeAddress(&existing.Address, incoming)
	} else {
		customer.Address = MergeAddress(nil, incoming)
	}

	saved, err := s.customerRepository.Upsert(ctx, customer)
	if err != nil {
		return err
	}

	sale := &domain.Sale{
		MeliOrderID: orderID,
		CustomerID:  saved.ID,
		Date:        date,
		Total:       order.TotalAmount,
		Items:       MapItems(order.OrderItems),
	}

	if err := s.saleRepository.Upsert(ctx, sale); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"buyer_id": buyerID,
		"items":    len(sale.Items),
	}).Debug("sync: ordem persistida")

	return nil
}

// HandleNotification processa uma notificação do webhook. Tópicos diferentes de
// "orders" e notificações sem id de ordem são ignorados sem erro.
func (s *Service) HandleNotification(ctx context.Context, payload []byte) (domain.NotificationResult, error) {
	notification, err := melidomain.ParseNotification(payload)
	if err != nil {
		return ignored("payload inválido"), fmt.Errorf("não foi possível interpretar o webhook: %w", err)
	}

	if !notification.IsOrder() {
		return ignored("tópico " + notification.Topic), nil
	}

	orderID := notification.OrderID()
	if orderID == 0 {
		return ignored("notificação sem id de ordem válido"), nil
	}

	sellerID := s.cfg.Meli.SellerIDValue()
	if sellerID == 0 {
		sellerID = notification.UserID
	}
	if sellerID == 0 {
		return domain.NotificationResult{}, ErrSellerNotConfigured
	}

	order, err := s.meliService.GetOrder(ctx, sellerID, orderID)
	if err != nil {
		return domain.NotificationResult{}, fmt.Errorf("%w %d: %w", ErrFetchOrder, orderID, err)
	}

	shipment := s.fetchShipment(ctx, sellerID, order)

	if err := s.PersistOrderAndClient(ctx, order, shipment); err != nil {
		return domain.NotificationResult{}, err
	}

	return domain.NotificationResult{
		Status:  domain.NotificationProcessed,
		OrderID: orderID,
	}, nil
}

// SyncRecent busca as ordens mais recentes do vendedor configurado e persiste uma a uma.
// Falhas individuais são registradas e não interrompem o lote.
func (s *Service) SyncRecent(ctx context.Context, limit int) (*domain.SyncResult, error) {
	sellerID := s.cfg.Meli.SellerIDValue()
	if sellerID == 0 {
		return nil, NewSyncError(ErrSellerNotConfigured, apiErrors.ErrMissingConfiguration, "Configure MELI_SELLER_ID")
	}

	// 0 é limite não informado; negativos sobem para 1
	if limit == 0 {
		limit = domain.DefaultSyncLimit
	}
	limit = utils.Clamp(limit, 1, domain.MaxSyncLimit)

	orders, err := s.meliService.SearchRecentOrders(ctx, sellerID, limit)
	if err != nil {
		return nil, NewSyncError(fmt.Errorf("%w: %w", ErrSearchOrders, err), searchErrorCode(err), "")
	}

	result := &domain.SyncResult{Total: len(orders)}

	for i := range orders {
		order := &orders[i]
		shipment := s.fetchShipment(ctx, sellerID, order)

		if err := s.PersistOrderAndClient(ctx, order, shipment); err != nil {
			logrus.WithFields(logrus.Fields{
				"order_id": order.ID.Int64(),
				"error":    err.Error(),
			}).Error("sync: não foi possível processar a ordem")
			continue
		}

		result.Processed++
	}

	logrus.WithFields(logrus.Fields{
		"seller_id": sellerID,
		"processed": result.Processed,
		"total":     result.Total,
	}).Info("sync: sincronização concluída")

	return result, nil
}

// fetchShipment devolve nil quando a ordem não tem envio ou a consulta falha
func (s *Service) fetchShipment(ctx context.Context, sellerID int64, order *melidomain.Order) *melidomain.Shipment {
	shipmentID := order.ShipmentID()
	if shipmentID == 0 {
		return nil
	}

	shipment, err := s.meliService.GetShipment(ctx, sellerID, shipmentID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"shipment_id": shipmentID,
			"order_id":    order.ID.Int64(),
			"error":       err.Error(),
		}).Warn("sync: não foi possível obter o envio, seguindo sem ele")
		return nil
	}

	return shipment
}

func ignored(reason string) domain.NotificationResult {
	return domain.NotificationResult{
		Status: domain.NotificationIgnored,
		Reason: reason,
	}
}

// searchErrorCode separa recusa do Mercado Libre (502) de falha de rede (503)
func searchErrorCode(err error) string {
	var apiErr *melidomain.APIError
	var urlErr *url.Error

	switch {
	case errors.As(err, &apiErr):
		return apiErrors.ErrExternalService
	case errors.As(err, &urlErr):
		return apiErrors.ErrCommunication
	default:
		return apiErrors.ErrInternalServer
	}
}

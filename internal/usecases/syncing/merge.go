package syncing

import (
	"strings"

	melidomain "github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/domain"
	"github.com/vfg2006/meli-sales-api/internal/domain"
)

// BuildPhone formata o telefone do destinatário. Nil quando o envio não traz telefone.
func BuildPhone(shipment *melidomain.Shipment) *string {
	return shipment.Phone().Format()
}

func BuildAddress(shipment *melidomain.Shipment) domain.Address {
	if shipment == nil || shipment.ReceiverAddress == nil {
		return domain.Address{}
	}

	addr := shipment.ReceiverAddress

	fullText := addr.Comment
	if fullText == "" {
		fullText = addr.AddressLine
	}

	return domain.Address{
		Street:     addr.StreetName,
		Number:     addr.StreetNumber.String(),
		City:       addr.City.NameOrEmpty(),
		Province:   addr.State.NameOrEmpty(),
		PostalCode: addr.ZipCode.String(),
		FullText:   fullText,
	}
}

// ResolveName escolhe o nome do cliente: destinatário, nome do comprador, apelido ou "Sin nombre"
func ResolveName(buyer *melidomain.Buyer, shipment *melidomain.Shipment) string {
	if shipment != nil && shipment.ReceiverAddress != nil {
		if name := strings.TrimSpace(shipment.ReceiverAddress.ReceiverName); name != "" {
			return name
		}
	}

	if buyer == nil {
		return domain.DefaultCustomerName
	}

	parts := make([]string, 0, 2)
	for _, part := range []string{buyer.FirstName, buyer.LastName} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if fullName := strings.TrimSpace(strings.Join(parts, " ")); fullName != "" {
		return fullName
	}

	if buyer.Nickname != "" {
		return buyer.Nickname
	}

	return domain.DefaultCustomerName
}

func ResolveAlias(buyer *melidomain.Buyer, existing *domain.Customer) string {
	if buyer != nil && buyer.Nickname != "" {
		return buyer.Nickname
	}

	if existing != nil {
		return existing.Alias
	}

	return ""
}

// MergeAddress mantém o valor armazenado em cada campo que chegou vazio
func MergeAddress(existing *domain.Address, incoming domain.Address) domain.Address {
	if existing == nil {
		return incoming
	}

	return domain.Address{
		Street:     firstNonEmpty(incoming.Street, existing.Street),
		Number:     firstNonEmpty(incoming.Number, existing.Number),
		City:       firstNonEmpty(incoming.City, existing.City),
		Province:   firstNonEmpty(incoming.Province, existing.Province),
		PostalCode: firstNonEmpty(incoming.PostalCode, existing.PostalCode),
		FullText:   firstNonEmpty(incoming.FullText, existing.FullText),
	}
}

// MergePhone prioriza o telefone novo, depois o armazenado
func MergePhone(existing *domain.Customer, incoming *string) *string {
	if incoming != nil {
		return incoming
	}

	if existing != nil {
		return existing.Phone
	}

	return nil
}

func MapItems(items []melidomain.OrderItem) []domain.SaleItem {
	mapped := make([]domain.SaleItem, 0, len(items))

	for _, item := range items {
		title := item.Item.Title
		if title == "" {
			title = domain.DefaultItemTitle
		}

		var sku *string
		if item.Item.SellerSKU != nil && *item.Item.SellerSKU != "" {
			value := *item.Item.SellerSKU
			sku = &value
		}

		mapped = append(mapped, domain.SaleItem{
			ItemID:    item.Item.ID.String(),
			Title:     title,
			SKU:       sku,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return mapped
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

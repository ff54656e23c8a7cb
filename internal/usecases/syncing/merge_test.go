package syncing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	melidomain "github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/domain"
	"github.com/vfg2006/meli-sales-api/internal/domain"
)

func TestBuildPhone(t *testing.T) {
	tests := []struct {
		name     string
		shipment *melidomain.Shipment
		expected *string
	}{
		{
			name:     "Sem envio",
			shipment: nil,
			expected: nil,
		},
		{
			name:     "Telefone em texto livre",
			shipment: &melidomain.Shipment{ReceiverPhone: &melidomain.Phone{Text: "+54 11 5555-1234"}},
			expected: stringPtr("+54 11 5555-1234"),
		},
		{
			name: "Telefone em partes ignora vazias",
			shipment: &melidomain.Shipment{ReceiverPhone: &melidomain.Phone{
				AreaCode: "11",
				Number:   "55551234",
			}},
			expected: stringPtr("11 55551234"),
		},
		{
			name:     "Objeto sem partes vira nil",
			shipment: &melidomain.Shipment{ReceiverPhone: &melidomain.Phone{}},
			expected: nil,
		},
		{
			name: "Usa o telefone do endereço quando a raiz não tem",
			shipment: &melidomain.Shipment{ReceiverAddress: &melidomain.ReceiverAddress{
				ReceiverPhone: &melidomain.Phone{Number: "4444"},
			}},
			expected: stringPtr("4444"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildPhone(tt.shipment))
		})
	}
}

func TestBuildAddress(t *testing.T) {
	shipment := &melidomain.Shipment{ReceiverAddress: &melidomain.ReceiverAddress{
		StreetName:   "Av. Corrientes",
		StreetNumber: "1234",
		ZipCode:      "C1043",
		City:         &melidomain.NamedRef{Name: "Buenos Aires"},
		AddressLine:  "Av. Corrientes 1234",
	}}

	assert.Equal(t, domain.Address{
		Street:     "Av. Corrientes",
		Number:     "1234",
		City:       "Buenos Aires",
		Province:   "",
		PostalCode: "C1043",
		FullText:   "Av. Corrientes 1234",
	}, BuildAddress(shipment))

	shipment.ReceiverAddress.Comment = "Depto 3B"
	assert.Equal(t, "Depto 3B", BuildAddress(shipment).FullText, "comment tem prioridade sobre address_line")

	assert.Equal(t, domain.Address{}, BuildAddress(nil))
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		name     string
		buyer    *melidomain.Buyer
		shipment *melidomain.Shipment
		expected string
	}{
		{
			name:  "Nome do destinatário sem espaços nas pontas",
			buyer: &melidomain.Buyer{FirstName: "Ana", LastName: "Gómez", Nickname: "ANAG"},
			shipment: &melidomain.Shipment{ReceiverAddress: &melidomain.ReceiverAddress{
				ReceiverName: "  Juan Pérez ",
			}},
			expected: "Juan Pérez",
		},
		{
			name:  "Destinatário em branco usa nome e sobrenome",
			buyer: &melidomain.Buyer{FirstName: "Ana", LastName: "Gómez", Nickname: "ANAG"},
			shipment: &melidomain.Shipment{ReceiverAddress: &melidomain.ReceiverAddress{
				ReceiverName: "   ",
			}},
			expected: "Ana Gómez",
		},
		{
			name:     "Só o primeiro nome",
			buyer:    &melidomain.Buyer{FirstName: "Ana"},
			expected: "Ana",
		},
		{
			name:     "Sem nomes usa o apelido",
			buyer:    &melidomain.Buyer{Nickname: "ANAG"},
			expected: "ANAG",
		},
		{
			name:     "Nada disponível",
			buyer:    &melidomain.Buyer{},
			expected: "Sin nombre",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveName(tt.buyer, tt.shipment))
		})
	}
}

func TestResolveAlias(t *testing.T) {
	existing := &domain.Customer{Alias: "ANTIGO"}

	assert.Equal(t, "NOVO", ResolveAlias(&melidomain.Buyer{Nickname: "NOVO"}, existing))
	assert.Equal(t, "ANTIGO", ResolveAlias(&melidomain.Buyer{}, existing))
	assert.Equal(t, "", ResolveAlias(&melidomain.Buyer{}, nil))
}

func TestMergeAddress(t *testing.T) {
	existing := &domain.Address{
		Street:     "Calle Vieja",
		Number:     "10",
		City:       "Rosario",
		Province:   "Santa Fe",
		PostalCode: "2000",
		FullText:   "Casa",
	}

	tests := []struct {
		name     string
		existing *domain.Address
		incoming domain.Address
		expected domain.Address
	}{
		{
			name:     "Cliente novo usa o endereço recebido",
			existing: nil,
			incoming: domain.Address{City: "Córdoba"},
			expected: domain.Address{City: "Córdoba"},
		},
		{
			name:     "Campos vazios mantêm o valor armazenado",
			existing: existing,
			incoming: domain.Address{Street: "Calle Nueva", City: "Funes"},
			expected: domain.Address{
				Street:     "Calle Nueva",
				Number:     "10",
				City:       "Funes",
				Province:   "Santa Fe",
				PostalCode: "2000",
				FullText:   "Casa",
			},
		},
		{
			name:     "Envio sem endereço preserva tudo",
			existing: existing,
			incoming: domain.Address{},
			expected: *existing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MergeAddress(tt.existing, tt.incoming))
		})
	}
}

func TestMergePhone(t *testing.T) {
	stored := &domain.Customer{Phone: stringPtr("111")}

	assert.Equal(t, stringPtr("222"), MergePhone(stored, stringPtr("222")))
	assert.Equal(t, stringPtr("111"), MergePhone(stored, nil))
	assert.Nil(t, MergePhone(nil, nil))
	assert.Nil(t, MergePhone(&domain.Customer{}, nil))
}

func TestMapItems(t *testing.T) {
	items := MapItems([]melidomain.OrderItem{
		{
			Item:      melidomain.ItemRef{ID: "MLA123", Title: "Caneca", SellerSKU: stringPtr("SKU-1")},
			Quantity:  2,
			UnitPrice: 10.5,
		},
		{
			Item:     melidomain.ItemRef{SellerSKU: stringPtr("")},
			Quantity: 1,
		},
	})

	assert.Equal(t, []domain.SaleItem{
		{ItemID: "MLA123", Title: "Caneca", SKU: stringPtr("SKU-1"), Quantity: 2, UnitPrice: 10.5},
		{ItemID: "", Title: "Sin título", SKU: nil, Quantity: 1, UnitPrice: 0},
	}, items)

	empty := MapItems(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func stringPtr(s string) *string {
	return &s
}

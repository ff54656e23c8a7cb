package syncing

import (
	"errors"
	"fmt"
)

var (
	ErrMissingBuyerID      = errors.New("buyer.id não disponível na ordem")
	ErrMissingOrderID      = errors.New("id não disponível na ordem")
	ErrMissingOrderDate    = errors.New("date_created não disponível na ordem")
	ErrSellerNotConfigured = errors.New("MELI_SELLER_ID não configurado")

	ErrSearchOrders = errors.New("não foi possível listar as ordens")
	ErrFetchOrder   = errors.New("não foi possível obter a ordem")
)

// SyncError é um erro com contexto adicional para a sincronização
type SyncError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	OrderID int64  // Ordem envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, code string, details string) *SyncError {
	return &SyncError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

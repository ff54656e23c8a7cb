package integrating

import (
	"errors"
	"fmt"
)

var (
	ErrSellerNotConfigured = errors.New("MELI_SELLER_ID não configurado")
	ErrSellerUnknown       = errors.New("não foi possível determinar o seller id")
	ErrMissingCode         = errors.New(`parâmetro "code" ausente no callback`)
	ErrOAuthNotConfigured  = errors.New("variáveis de ambiente OAuth incompletas")
	ErrInvalidState        = errors.New("state inválido ou expirado")
	ErrExchangeCode        = errors.New("não foi possível obter o token do Mercado Libre")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// IntegrationError é um erro com contexto adicional para a integração OAuth
type IntegrationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *IntegrationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}

func NewIntegrationError(err error, code string, details string) *IntegrationError {
	return &IntegrationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

package customer

import (
	"errors"
	"fmt"
)

var (
	ErrCustomerNotFound  = errors.New("cliente não encontrado")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// CustomerError é um erro com contexto adicional para clientes
type CustomerError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	MeliUserID int64  // Cliente envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *CustomerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CustomerError) Unwrap() error {
	return e.Err
}

func NewCustomerError(err error, code string, details string) *CustomerError {
	return &CustomerError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCustomerErrorWithID(err error, code string, meliUserID int64, details string) *CustomerError {
	return &CustomerError{
		Err:        err,
		Code:       code,
		MeliUserID: meliUserID,
		Details:    details,
	}
}

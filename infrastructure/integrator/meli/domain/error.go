package melidomain

import "fmt"

// APIError representa uma resposta não-2xx da API do Mercado Libre
type APIError struct {
	StatusCode int    `json:"status"`
	Status     string `json:"status_text,omitempty"`
	Body       string `json:"body"`
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("mercadolibre: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("mercadolibre: status %d: %s", e.StatusCode, e.Body)
}

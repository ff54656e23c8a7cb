package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/meli-sales-api/pkg/apiErrors"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name           string
		db             DatabasePinger
		expectedStatus int
		validate       func(t *testing.T, body string)
	}{
		{
			name: "Banco respondendo devolve o horário",
			db: pingerFunc(func(ctx context.Context) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline, "o ping deve ter prazo")
				return nil
			}),
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body string) {
				_, err := time.Parse(time.RFC3339, body)
				assert.NoError(t, err)
			},
		},
		{
			name: "Banco fora do ar devolve 503",
			db: pingerFunc(func(ctx context.Context) error {
				return errors.New("dial tcp 127.0.0.1:5432: connection refused")
			}),
			expectedStatus: http.StatusServiceUnavailable,
			validate: func(t *testing.T, body string) {
				assert.Contains(t, body, apiErrors.ErrCommunication)
				assert.NotContains(t, body, "127.0.0.1")
			},
		},
		{
			name:           "Sem banco configurado responde apenas o horário",
			db:             nil,
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body string) {
				assert.NotEmpty(t, body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(Healthcheck(tt.db), http.MethodGet, "/healthcheck", "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validate(t, rec.Body.String())
		})
	}
}

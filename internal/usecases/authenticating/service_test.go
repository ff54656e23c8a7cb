package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meli-sales-api/internal/config"
	"github.com/vfg2006/meli-sales-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, password string) *Service {
	var hash string
	if password != "" {
		raw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		hash = string(raw)
	}

	return NewService(&config.Config{Auth: config.Auth{
		Secret:            "segredo-de-teste",
		AdminEmail:        "Operador@Loja.com ",
		AdminPasswordHash: hash,
		TokenTTL:          time.Hour,
	}}).(*Service)
}

func TestService_LoginUser(t *testing.T) {
	service := newTestService(t, "senha-forte")

	tests := []struct {
		name         string
		email        string
		password     string
		expectedErr  error
		expectedCode string
	}{
		{
			name:     "Credenciais corretas com email normalizado",
			email:    " operador@loja.com",
			password: "senha-forte",
		},
		{
			name:         "Senha errada",
			email:        "operador@loja.com",
			password:     "outra",
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:         "Email desconhecido",
			email:        "intruso@loja.com",
			password:     "senha-forte",
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:         "Campos vazios",
			email:        "",
			password:     "",
			expectedErr:  ErrMissingRequiredData,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginUser(tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)

				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, tt.expectedCode, authErr.Code)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "operador@loja.com", claims.Email)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	t.Run("Token expirado", func(t *testing.T) {
		service := newTestService(t, "senha-forte")
		issued := time.Now().Add(-2 * time.Hour)
		service.now = func() time.Time { return issued }

		token, err := service.LoginUser("operador@loja.com", "senha-forte")
		require.NoError(t, err)

		service.now = time.Now
		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token assinado com outro segredo", func(t *testing.T) {
		service := newTestService(t, "senha-forte")
		token, err := service.LoginUser("operador@loja.com", "senha-forte")
		require.NoError(t, err)

		other := newTestService(t, "senha-forte")
		other.secret = []byte("outro-segredo")

		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Texto que não é JWT", func(t *testing.T) {
		service := newTestService(t, "senha-forte")

		_, err := service.ValidateToken("nao-e-um-token")
		assert.True(t, IsAuthorizationError(err))
	})
}

func TestService_Enabled(t *testing.T) {
	assert.True(t, newTestService(t, "senha").Enabled())

	disabled := newTestService(t, "")
	assert.False(t, disabled.Enabled())

	_, err := disabled.LoginUser("operador@loja.com", "qualquer")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

package integrating

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	melidomain "github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/domain"
	melimocks "github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/mocks"
	"github.com/vfg2006/meli-sales-api/internal/config"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"github.com/vfg2006/meli-sales-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func oauthConfig(sellerID string) *config.Config {
	return &config.Config{
		Meli: config.Meli{
			ClientID:     "client",
			ClientSecret: "secret",
			RedirectURI:  "https://app.example.com/integration/oauth/callback",
			SellerID:     sellerID,
		},
		Auth: config.Auth{Secret: "segredo"},
	}
}

func newTestService(t *testing.T, cfg *config.Config) (*Service, *melimocks.MockMeliIntegrator) {
	ctrl := gomock.NewController(t)
	integrator := melimocks.NewMockMeliIntegrator(ctrl)

	return NewService(integrator, cfg).(*Service), integrator
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()

	var integrationErr *IntegrationError
	require.True(t, errors.As(err, &integrationErr), "erro inesperado: %v", err)
	assert.Equal(t, code, integrationErr.Code)
}

func TestService_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("Vendedor conectado", func(t *testing.T) {
		service, integrator := newTestService(t, oauthConfig("123456"))
		integrator.EXPECT().IsConnected(ctx, int64(123456)).Return(true, nil)

		status, err := service.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, &domain.IntegrationStatus{Connected: true, SellerID: 123456}, status)
	})

	t.Run("Sem MELI_SELLER_ID", func(t *testing.T) {
		service, _ := newTestService(t, oauthConfig(""))

		_, err := service.Status(ctx)
		assert.ErrorIs(t, err, ErrSellerNotConfigured)
		assertCode(t, err, apiErrors.ErrSellerNotConfigured)
	})
}

func TestService_AuthorizationURLStateRoundTrip(t *testing.T) {
	service, integrator := newTestService(t, oauthConfig("123456"))

	var captured string
	integrator.EXPECT().AuthorizationURL(gomock.Any()).DoAndReturn(func(state string) string {
		captured = state
		return "https://auth.example.com/authorization?state=" + url.QueryEscape(state)
	})

	authURL, err := service.AuthorizationURL()
	require.NoError(t, err)
	assert.Contains(t, authURL, "state=")
	require.NotEmpty(t, captured)

	assert.NoError(t, service.validateState(captured))

	service.now = func() time.Time { return time.Now().Add(11 * time.Minute) }
	assert.Error(t, service.validateState(captured), "state vale apenas 10 minutos")
}

func TestService_HandleCallback(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		cfg      *config.Config
		code     string
		state    string
		setup    func(integrator *melimocks.MockMeliIntegrator)
		validate func(t *testing.T, result *domain.OAuthCallbackResult, err error)
	}{
		{
			name: "Code ausente",
			cfg:  oauthConfig("123456"),
			code: "",
			validate: func(t *testing.T, result *domain.OAuthCallbackResult, err error) {
				assert.ErrorIs(t, err, ErrMissingCode)
				assertCode(t, err, apiErrors.ErrMissingRequiredData)
			},
		},
		{
			name: "Variáveis OAuth incompletas",
			cfg:  &config.Config{Meli: config.Meli{ClientID: "client"}},
			code: "TG-1",
			validate: func(t *testing.T, result *domain.OAuthCallbackResult, err error) {
				assert.ErrorIs(t, err, ErrOAuthNotConfigured)
				assertCode(t, err, apiErrors.ErrMissingConfiguration)
			},
		},
		{
			name:  "State adulterado",
			cfg:   oauthConfig("123456"),
			code:  "TG-1",
			state: "nao-assinado",
			validate: func(t *testing.T, result *domain.OAuthCallbackResult, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
				assertCode(t, err, apiErrors.ErrInvalidState)
			},
		},
		{
			name: "Falha na troca do code",
			cfg:  oauthConfig("123456"),
			code: "TG-1",
			setup: func(integrator *melimocks.MockMeliIntegrator) {
				integrator.EXPECT().ExchangeCode(ctx, "TG-1").Return(nil, &melidomain.APIError{
					StatusCode: http.StatusBadRequest,
					Body:       `{"error":"invalid_grant"}`,
				})
			},
			validate: func(t *testing.T, result *domain.OAuthCallbackResult, err error) {
				assert.ErrorIs(t, err, ErrExchangeCode)
				assertCode(t, err, apiErrors.ErrExternalService)

				var apiErr *melidomain.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
			},
		},
		{
			name: "Vendedor configurado tem prioridade sobre o user_id do token",
			cfg:  oauthConfig("123456"),
			code: "TG-1",
			setup: func(integrator *melimocks.MockMeliIntegrator) {
				grant := &melidomain.TokenGrant{AccessToken: "APP", ExpiresIn: 21600, UserID: 999}
				integrator.EXPECT().ExchangeCode(ctx, "TG-1").Return(grant, nil)
				integrator.EXPECT().StoreGrant(ctx, int64(123456), grant).Return(&domain.MeliToken{
					SellerID:  123456,
					ExpiresAt: expiresAt,
				}, nil)
			},
			validate: func(t *testing.T, result *domain.OAuthCallbackResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, &domain.OAuthCallbackResult{OK: true, SellerID: 123456, ExpiresAt: expiresAt}, result)
			},
		},
		{
			name: "Sem vendedor configurado usa o user_id do token",
			cfg:  oauthConfig(""),
			code: "TG-1",
			setup: func(integrator *melimocks.MockMeliIntegrator) {
				grant := &melidomain.TokenGrant{AccessToken: "APP", ExpiresIn: 21600, UserID: 999}
				integrator.EXPECT().ExchangeCode(ctx, "TG-1").Return(grant, nil)
				integrator.EXPECT().StoreGrant(ctx, int64(999), grant).Return(&domain.MeliToken{SellerID: 999, ExpiresAt: expiresAt}, nil)
			},
			validate: func(t *testing.T, result *domain.OAuthCallbackResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(999), result.SellerID)
			},
		},
		{
			name: "Nenhum seller id disponível",
			cfg:  oauthConfig(""),
			code: "TG-1",
			setup: func(integrator *melimocks.MockMeliIntegrator) {
				integrator.EXPECT().ExchangeCode(ctx, "TG-1").Return(&melidomain.TokenGrant{AccessToken: "APP", ExpiresIn: 60}, nil)
			},
			validate: func(t *testing.T, result *domain.OAuthCallbackResult, err error) {
				assert.ErrorIs(t, err, ErrSellerUnknown)
				assertCode(t, err, apiErrors.ErrSellerNotConfigured)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, integrator := newTestService(t, tt.cfg)
			if tt.setup != nil {
				tt.setup(integrator)
			}

			result, err := service.HandleCallback(ctx, tt.code, tt.state)
			tt.validate(t, result, err)
		})
	}

	t.Run("State válido é aceito", func(t *testing.T) {
		service, integrator := newTestService(t, oauthConfig("123456"))

		state, err := service.signState()
		require.NoError(t, err)

		grant := &melidomain.TokenGrant{AccessToken: "APP", ExpiresIn: 21600}
		integrator.EXPECT().ExchangeCode(ctx, "TG-1").Return(grant, nil)
		integrator.EXPECT().StoreGrant(ctx, int64(123456), grant).Return(&domain.MeliToken{ExpiresAt: expiresAt}, nil)

		result, err := service.HandleCallback(ctx, "TG-1", state)
		require.NoError(t, err)
		assert.True(t, result.OK)
	})
}

package meliclient

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	melidomain "github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/domain"
	clientMocks "github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/meliclient/mocks"
	repoMocks "github.com/vfg2006/meli-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/meli-sales-api/internal/config"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const sellerID int64 = 123456

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T, cfg config.Meli) (*TokenManager, *clientMocks.MockClient, *repoMocks.MockMeliTokenRepository) {
	ctrl := gomock.NewController(t)
	client := clientMocks.NewMockClient(ctrl)
	repo := repoMocks.NewMockMeliTokenRepository(ctrl)

	manager := NewTokenManager(&config.Config{Meli: cfg}, client, repo)
	manager.now = func() time.Time { return fixedNow }

	return manager, client, repo
}

func credentials() config.Meli {
	return config.Meli{ClientID: "client", ClientSecret: "secret"}
}

func TestGetValidAccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Token com mais de 60s de validade é devolvido sem renovar", func(t *testing.T) {
		manager, _, repo := newTestManager(t, credentials())

		repo.EXPECT().GetBySellerID(ctx, sellerID).Return(&domain.MeliToken{
			SellerID:     sellerID,
			AccessToken:  "cached",
			RefreshToken: "refresh",
			ExpiresAt:    fixedNow.Add(61 * time.Second),
		}, nil)

		token, err := manager.GetValidAccessToken(ctx, sellerID)
		require.NoError(t, err)
		assert.Equal(t, "cached", token)
	})

	t.Run("Token vencendo em exatamente 60s é renovado", func(t *testing.T) {
		manager, client, repo := newTestManager(t, credentials())

		repo.EXPECT().GetBySellerID(ctx, sellerID).Return(&domain.MeliToken{
			SellerID:     sellerID,
			AccessToken:  "old",
			RefreshToken: "refresh-old",
			ExpiresAt:    fixedNow.Add(60 * time.Second),
		}, nil)
		client.EXPECT().RefreshToken(gomock.Any(), "refresh-old").Return(&melidomain.TokenGrant{
			AccessToken:  "new",
			RefreshToken: "refresh-new",
			ExpiresIn:    21600,
		}, nil)
		repo.EXPECT().Upsert(gomock.Any(), &domain.MeliToken{
			SellerID:     sellerID,
			AccessToken:  "new",
			RefreshToken: "refresh-new",
			ExpiresAt:    fixedNow.Add(21600 * time.Second),
		}).Return(nil)

		token, err := manager.GetValidAccessToken(ctx, sellerID)
		require.NoError(t, err)
		assert.Equal(t, "new", token)
	})

	t.Run("Resposta sem refresh token mantém o anterior", func(t *testing.T) {
		manager, client, repo := newTestManager(t, credentials())

		repo.EXPECT().GetBySellerID(ctx, sellerID).Return(&domain.MeliToken{
			SellerID:     sellerID,
			AccessToken:  "old",
			RefreshToken: "refresh-old",
			ExpiresAt:    fixedNow.Add(-time.Hour),
		}, nil)
		client.EXPECT().RefreshToken(gomock.Any(), "refresh-old").Return(&melidomain.TokenGrant{
			AccessToken: "new",
			ExpiresIn:   3600,
		}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, token *domain.MeliToken) error {
			assert.Equal(t, "refresh-old", token.RefreshToken)
			assert.Equal(t, fixedNow.Add(time.Hour), token.ExpiresAt)
			return nil
		})

		token, err := manager.GetValidAccessToken(ctx, sellerID)
		require.NoError(t, err)
		assert.Equal(t, "new", token)
	})

	t.Run("Vendedor sem token armazenado", func(t *testing.T) {
		manager, _, repo := newTestManager(t, credentials())

		repo.EXPECT().GetBySellerID(ctx, sellerID).Return(nil, nil)

		_, err := manager.GetValidAccessToken(ctx, sellerID)
		assert.ErrorIs(t, err, ErrTokenNotFound)
	})

	t.Run("Erro do endpoint de token é propagado sem gravar", func(t *testing.T) {
		manager, client, repo := newTestManager(t, credentials())

		repo.EXPECT().GetBySellerID(ctx, sellerID).Return(&domain.MeliToken{
			SellerID:     sellerID,
			RefreshToken: "revoked",
			ExpiresAt:    fixedNow,
		}, nil)
		client.EXPECT().RefreshToken(gomock.Any(), "revoked").Return(nil, &melidomain.APIError{
			StatusCode: http.StatusBadRequest,
			Body:       `{"error":"invalid_grant"}`,
		})
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

		_, err := manager.GetValidAccessToken(ctx, sellerID)

		var apiErr *melidomain.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "invalid_grant")
	})

	t.Run("Credenciais ausentes impedem a renovação", func(t *testing.T) {
		manager, client, repo := newTestManager(t, config.Meli{})

		repo.EXPECT().GetBySellerID(ctx, sellerID).Return(&domain.MeliToken{
			SellerID:  sellerID,
			ExpiresAt: fixedNow,
		}, nil)
		client.EXPECT().RefreshToken(gomock.Any(), gomock.Any()).Times(0)

		_, err := manager.GetValidAccessToken(ctx, sellerID)
		assert.ErrorIs(t, err, ErrOAuthNotConfigured)
	})
}

func TestStoreGrant(t *testing.T) {
	ctx := context.Background()
	manager, _, repo := newTestManager(t, credentials())

	expected := &domain.MeliToken{
		SellerID:     sellerID,
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    fixedNow.Add(6 * time.Hour),
	}
	repo.EXPECT().Upsert(ctx, expected).Return(nil)

	token, err := manager.StoreGrant(ctx, sellerID, &melidomain.TokenGrant{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    21600,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, token)
}

func TestGetValidAccessTokenConcurrency(t *testing.T) {
	expired := &domain.MeliToken{
		SellerID:     sellerID,
		AccessToken:  "old",
		RefreshToken: "refresh-old",
		ExpiresAt:    fixedNow.Add(-time.Minute),
	}

	t.Run("Chamadas concorrentes compartilham uma única renovação", func(t *testing.T) {
		const callers = 5
		manager, client, repo := newTestManager(t, credentials())

		repo.EXPECT().GetBySellerID(gomock.Any(), sellerID).Return(expired, nil).Times(callers)
		client.EXPECT().RefreshToken(gomock.Any(), "refresh-old").DoAndReturn(
			func(_ context.Context, _ string) (*melidomain.TokenGrant, error) {
				time.Sleep(100 * time.Millisecond)
				return &melidomain.TokenGrant{
					AccessToken:  "new",
					RefreshToken: "refresh-new",
					ExpiresIn:    21600,
				}, nil
			}).Times(1)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		var wg sync.WaitGroup
		tokens := make([]string, callers)
		errs := make([]error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				tokens[i], errs[i] = manager.GetValidAccessToken(context.Background(), sellerID)
			}(i)
		}
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, "new", tokens[i])
		}
	})

	t.Run("Contexto cancelado de quem chamou não cancela a renovação", func(t *testing.T) {
		manager, client, repo := newTestManager(t, credentials())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		repo.EXPECT().GetBySellerID(ctx, sellerID).Return(expired, nil)
		client.EXPECT().RefreshToken(gomock.Any(), "refresh-old").DoAndReturn(
			func(flightCtx context.Context, _ string) (*melidomain.TokenGrant, error) {
				assert.NoError(t, flightCtx.Err())
				return &melidomain.TokenGrant{AccessToken: "new", ExpiresIn: 21600}, nil
			})
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(flightCtx context.Context, _ *domain.MeliToken) error {
				assert.NoError(t, flightCtx.Err())
				return nil
			})

		token, err := manager.GetValidAccessToken(ctx, sellerID)
		require.NoError(t, err)
		assert.Equal(t, "new", token)
	})
}

package meliclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	melidomain "github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/domain"
	"github.com/vfg2006/meli-sales-api/infrastructure/repository"
	"github.com/vfg2006/meli-sales-api/internal/config"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"golang.org/x/sync/singleflight"
)

// refreshWindow antecedência mínima antes do vencimento para renovar o token
const refreshWindow = 60 * time.Second

var (
	ErrTokenNotFound      = errors.New("nenhum token armazenado para o vendedor")
	ErrOAuthNotConfigured = errors.New("MELI_CLIENT_ID e MELI_CLIENT_SECRET não configurados")
)

type TokenManager struct {
	cfg    config.Meli
	client Client
	repo   repository.MeliTokenRepository
	group  singleflight.Group
	now    func() time.Time
}

func NewTokenManager(cfg *config.Config, client Client, repo repository.MeliTokenRepository) *TokenManager {
	return &TokenManager{
		cfg:    cfg.Meli,
		client: client,
		repo:   repo,
		now:    time.Now,
	}
}

// GetValidAccessToken devolve o access token do vendedor, renovando-o quando
// faltam 60 segundos ou menos para o vencimento
func (tm *TokenManager) GetValidAccessToken(ctx context.Context, sellerID int64) (string, error) {
	token, err := tm.repo.GetBySellerID(ctx, sellerID)
	if err != nil {
		return "", err
	}
	if token == nil {
		return "", fmt.Errorf("%w: sellerId=%d", ErrTokenNotFound, sellerID)
	}

	if !tm.needsRefresh(token) {
		return token.AccessToken, nil
	}

	// A renovação é compartilhada entre chamadas; o cancelamento de quem
	// abriu o voo não pode derrubar as demais
	flightCtx := context.WithoutCancel(ctx)

	key := strconv.FormatInt(sellerID, 10)
	accessToken, err, shared := tm.group.Do(key, func() (any, error) {
		return tm.refresh(flightCtx, token)
	})
	if err != nil {
		return "", err
	}

	if shared {
		logrus.WithField("seller_id", sellerID).Debug("Renovação de token compartilhada entre chamadas concorrentes")
	}

	return accessToken.(string), nil
}

// StoreGrant grava o token recebido na autorização inicial
func (tm *TokenManager) StoreGrant(ctx context.Context, sellerID int64, grant *melidomain.TokenGrant) (*domain.MeliToken, error) {
	token := &domain.MeliToken{
		SellerID:     sellerID,
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		ExpiresAt:    tm.now().Add(time.Duration(grant.ExpiresIn) * time.Second),
	}

	if err := tm.repo.Upsert(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}

func (tm *TokenManager) needsRefresh(token *domain.MeliToken) bool {
	return !token.ExpiresAt.After(tm.now().Add(refreshWindow))
}

func (tm *TokenManager) refresh(ctx context.Context, current *domain.MeliToken) (string, error) {
	if tm.cfg.ClientID == "" || tm.cfg.ClientSecret == "" {
		return "", ErrOAuthNotConfigured
	}

	log := logrus.WithField("seller_id", current.SellerID)
	log.Info("Renovando access token do Mercado Libre")

	grant, err := tm.client.RefreshToken(ctx, current.RefreshToken)
	if err != nil {
		log.WithError(err).Error("Falha ao renovar access token")
		return "", err
	}

	refreshToken := grant.RefreshToken
	if refreshToken == "" {
		refreshToken = current.RefreshToken
	}

	refreshed := &domain.MeliToken{
		SellerID:     current.SellerID,
		AccessToken:  grant.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    tm.now().Add(time.Duration(grant.ExpiresIn) * time.Second),
	}

	if err := tm.repo.Upsert(ctx, refreshed); err != nil {
		return "", err
	}

	log.WithField("expires_at", refreshed.ExpiresAt).Info("Access token renovado")

	return refreshed.AccessToken, nil
}

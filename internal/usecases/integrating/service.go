package integrating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli"
	"github.com/vfg2006/meli-sales-api/internal/config"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"github.com/vfg2006/meli-sales-api/pkg/apiErrors"
)

const stateTTL = 10 * time.Minute

type IntegrationService interface {
	Status(ctx context.Context) (*domain.IntegrationStatus, error)
	AuthorizationURL() (string, error)
	HandleCallback(ctx context.Context, code, state string) (*domain.OAuthCallbackResult, error)
}

type Service struct {
	meliService meli.MeliIntegrator
	cfg         *config.Config
	now         func() time.Time
}

func NewService(meliService meli.MeliIntegrator, cfg *config.Config) IntegrationService {
	return &Service{
		meliService: meliService,
		cfg:         cfg,
		now:         time.Now,
	}
}

// Status informa se há token armazenado para o vendedor configurado
func (s *Service) Status(ctx context.Context) (*domain.IntegrationStatus, error) {
	sellerID := s.cfg.Meli.SellerIDValue()
	if sellerID == 0 {
		return nil, NewIntegrationError(ErrSellerNotConfigured, apiErrors.ErrSellerNotConfigured, "Configure MELI_SELLER_ID")
	}

	connected, err := s.meliService.IsConnected(ctx, sellerID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar token do vendedor")
		return nil, NewIntegrationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	return &domain.IntegrationStatus{
		Connected: connected,
		SellerID:  sellerID,
	}, nil
}

// AuthorizationURL monta a URL de consentimento com um state assinado (HS256, 10 minutos)
func (s *Service) AuthorizationURL() (string, error) {
	if !s.cfg.Meli.HasOAuthCredentials() {
		return "", NewIntegrationError(ErrOAuthNotConfigured, apiErrors.ErrMissingConfiguration, "Configure MELI_CLIENT_ID, MELI_CLIENT_SECRET e MELI_REDIRECT_URI")
	}

	state, err := s.signState()
	if err != nil {
		return "", NewIntegrationError(err, apiErrors.ErrInternalServer, "Erro ao gerar state")
	}

	return s.meliService.AuthorizationURL(state), nil
}

func (s *Service) HandleCallback(ctx context.Context, code, state string) (*domain.OAuthCallbackResult, error) {
	if code == "" {
		return nil, NewIntegrationError(ErrMissingCode, apiErrors.ErrMissingRequiredData, "")
	}

	if !s.cfg.Meli.HasOAuthCredentials() {
		return nil, NewIntegrationError(ErrOAuthNotConfigured, apiErrors.ErrMissingConfiguration, "")
	}

	// state ausente é aceito; quando presente precisa ser válido
	if state != "" {
		if err := s.validateState(state); err != nil {
			logrus.WithError(err).Warn("oauth: state rejeitado")
			return nil, NewIntegrationError(ErrInvalidState, apiErrors.ErrInvalidState, "")
		}
	}

	grant, err := s.meliService.ExchangeCode(ctx, code)
	if err != nil {
		return nil, NewIntegrationError(fmt.Errorf("%w: %w", ErrExchangeCode, err), apiErrors.ErrExternalService, "")
	}

	sellerID := s.cfg.Meli.SellerIDValue()
	if sellerID == 0 {
		sellerID = grant.UserID
	}
	if sellerID == 0 {
		return nil, NewIntegrationError(ErrSellerUnknown, apiErrors.ErrSellerNotConfigured, "Configure MELI_SELLER_ID")
	}

	token, err := s.meliService.StoreGrant(ctx, sellerID, grant)
	if err != nil {
		logrus.WithError(err).WithField("seller_id", sellerID).Error("oauth: erro ao gravar token")
		return nil, NewIntegrationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	logrus.WithFields(logrus.Fields{
		"seller_id":  sellerID,
		"expires_at": token.ExpiresAt,
	}).Info("oauth: vendedor conectado")

	return &domain.OAuthCallbackResult{
		OK:        true,
		SellerID:  sellerID,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

func (s *Service) signState() (string, error) {
	now := s.now()
	claims := domain.OAuthStateClaims{
		Nonce: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.stateSecret())
}

func (s *Service) validateState(state string) error {
	token, err := jwt.ParseWithClaims(state, &domain.OAuthStateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.stateSecret(), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(*domain.OAuthStateClaims)
	if !ok || !token.Valid || claims.Nonce == "" {
		return errors.New("state sem nonce")
	}

	return nil
}

// stateSecret usa o segredo da API e, na falta dele, o client secret da aplicação
func (s *Service) stateSecret() []byte {
	if s.cfg.Auth.Secret != "" {
		return []byte(s.cfg.Auth.Secret)
	}
	return []byte(s.cfg.Meli.ClientSecret)
}

package meliclient

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	melidomain "github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/domain"
	"github.com/vfg2006/meli-sales-api/internal/config"
	"golang.org/x/oauth2"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*melidomain.TokenGrant, error)
	RefreshToken(ctx context.Context, refreshToken string) (*melidomain.TokenGrant, error)
	GetOrder(ctx context.Context, accessToken string, orderID int64) (*melidomain.Order, error)
	GetShipment(ctx context.Context, accessToken string, shipmentID int64) (*melidomain.Shipment, error)
	SearchOrders(ctx context.Context, accessToken string, sellerID int64, limit int) (*melidomain.OrderSearchResult, error)
}

type MeliClient struct {
	httpClient *http.Client
	cfg        config.Meli
	oauth      *oauth2.Config
	validate   *validator.Validate
}

func NewClient(cfg *config.Config) Client {
	return newClient(cfg.Meli, &http.Client{
		Timeout: 30 * time.Second,
	})
}

func newClient(cfg config.Meli, httpClient *http.Client) *MeliClient {
	return &MeliClient{
		httpClient: httpClient,
		cfg:        cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL + "/authorization",
				TokenURL:  cfg.APIURL + "/oauth/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		validate: validator.New(),
	}
}

// AuthCodeURL monta a URL de autorização para onde o vendedor é redirecionado
func (c *MeliClient) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// ExchangeCode troca o code recebido no callback (grant_type=authorization_code)
func (c *MeliClient) ExchangeCode(ctx context.Context, code string) (*melidomain.TokenGrant, error) {
	token, err := c.oauth.Exchange(c.oauthContext(ctx), code)
	if err != nil {
		return nil, tokenError(err)
	}

	return c.toGrant(token)
}

// RefreshToken renova o access token (grant_type=refresh_token). Não há retentativa.
func (c *MeliClient) RefreshToken(ctx context.Context, refreshToken string) (*melidomain.TokenGrant, error) {
	source := c.oauth.TokenSource(c.oauthContext(ctx), &oauth2.Token{RefreshToken: refreshToken})

	token, err := source.Token()
	if err != nil {
		return nil, tokenError(err)
	}

	return c.toGrant(token)
}

func (c *MeliClient) GetOrder(ctx context.Context, accessToken string, orderID int64) (*melidomain.Order, error) {
	var order melidomain.Order
	if err := c.get(ctx, accessToken, "/orders/"+strconv.FormatInt(orderID, 10), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *MeliClient) GetShipment(ctx context.Context, accessToken string, shipmentID int64) (*melidomain.Shipment, error) {
	var shipment melidomain.Shipment
	if err := c.get(ctx, accessToken, "/shipments/"+strconv.FormatInt(shipmentID, 10), nil, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// SearchOrders lista as ordens mais recentes do vendedor
func (c *MeliClient) SearchOrders(ctx context.Context, accessToken string, sellerID int64, limit int) (*melidomain.OrderSearchResult, error) {
	query := url.Values{}
	query.Set("seller", strconv.FormatInt(sellerID, 10))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("sort", "date_desc")

	var result melidomain.OrderSearchResult
	if err := c.get(ctx, accessToken, "/orders/search", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *MeliClient) get(ctx context.Context, accessToken, resource string, query url.Values, out any) error {
	endpoint, err := url.Parse(c.cfg.APIURL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, resource)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "erro ao executar a requisição para %s", resource)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &melidomain.APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	if err := jsonAPI.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar resposta de %s", resource)
	}

	return nil
}

func (c *MeliClient) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

func (c *MeliClient) toGrant(token *oauth2.Token) (*melidomain.TokenGrant, error) {
	grant := &melidomain.TokenGrant{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		ExpiresIn:    token.ExpiresIn,
		UserID:       extraInt64(token.Extra("user_id")),
	}

	if scope, ok := token.Extra("scope").(string); ok {
		grant.Scope = scope
	}

	// expires_in original da resposta; Expiry já descontou o tempo da chamada
	if grant.ExpiresIn == 0 {
		grant.ExpiresIn = extraInt64(token.Extra("expires_in"))
	}
	if grant.ExpiresIn == 0 && !token.Expiry.IsZero() {
		grant.ExpiresIn = int64(math.Round(time.Until(token.Expiry).Seconds()))
	}

	if err := c.validate.Struct(grant); err != nil {
		return nil, errors.Wrap(err, "resposta de token inválida")
	}

	return grant, nil
}

// tokenError converte respostas não-2xx do endpoint de token em APIError
func tokenError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		return &melidomain.APIError{
			StatusCode: retrieveErr.Response.StatusCode,
			Status:     retrieveErr.Response.Status,
			Body:       string(retrieveErr.Body),
		}
	}

	return errors.Wrap(err, "erro ao chamar endpoint de token")
}

func extraInt64(value any) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case json.Number:
		n, _ := v.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

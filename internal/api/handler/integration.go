package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
	melidomain "github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/domain"
	"github.com/vfg2006/meli-sales-api/internal/usecases/integrating"
	"github.com/vfg2006/meli-sales-api/internal/usecases/syncing"
	"github.com/vfg2006/meli-sales-api/pkg/apiErrors"
)

// OrderSyncTrigger é a parte do agendador exposta pela API
type OrderSyncTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

type AuthorizationURLResponse struct {
	URL string `json:"url"`
}

type SyncResponse struct {
	OK        bool `json:"ok"`
	Processed int  `json:"processed"`
	Total     int  `json:"total"`
}

func IntegrationStatus(service integrating.IntegrationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := service.Status(r.Context())
		if err != nil {
			handleIntegrationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

// Authorize devolve a URL de consentimento. Com ?redirect=true redireciona direto.
func Authorize(service integrating.IntegrationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authURL, err := service.AuthorizationURL()
		if err != nil {
			handleIntegrationError(w, err)
			return
		}

		if redirect, _ := strconv.ParseBool(r.URL.Query().Get("redirect")); redirect {
			http.Redirect(w, r, authURL, http.StatusFound)
			return
		}

		writeJSON(w, http.StatusOK, AuthorizationURLResponse{URL: authURL})
	}
}

func OAuthCallback(service integrating.IntegrationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		result, err := service.HandleCallback(r.Context(), query.Get("code"), query.Get("state"))
		if err != nil {
			handleIntegrationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// SyncOrders executa a sincronização manual de forma síncrona
func SyncOrders(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := syncLimitFromBody(r)

		result, err := service.SyncRecent(r.Context(), limit)
		if err != nil {
			handleSyncError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SyncResponse{
			OK:        true,
			Processed: result.Processed,
			Total:     result.Total,
		})
	}
}

func TriggerSync(trigger OrderSyncTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !trigger.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Já existe uma sincronização em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, OKResponse{OK: true})
	}
}

func SyncStatus(trigger OrderSyncTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, trigger.GetStatus())
	}
}

// Webhook recebe as notificações do Mercado Libre. Sempre responde {ok:true}
// para que o Mercado Libre não reenvie a notificação.
func Webhook(service syncing.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			logrus.WithError(err).Error("webhook: erro ao ler corpo")
			writeJSON(w, http.StatusOK, OKResponse{OK: true})
			return
		}

		result, err := service.HandleNotification(r.Context(), payload)
		if err != nil {
			logrus.WithError(err).Error("webhook: erro ao processar notificação")
		} else {
			logrus.WithFields(logrus.Fields{
				"status":   result.Status,
				"reason":   result.Reason,
				"order_id": result.OrderID,
			}).Info("webhook: notificação tratada")
		}

		writeJSON(w, http.StatusOK, OKResponse{OK: true})
	}
}

// syncLimitFromBody lê {limit}. Ausente ou inválido devolve 0 e o serviço aplica o padrão.
func syncLimitFromBody(r *http.Request) int {
	v := readBodyValue(r)
	if v == nil {
		return 0
	}

	field := v.Get("limit")
	if field == nil {
		return 0
	}

	switch field.Type() {
	case fastjson.TypeNumber:
		limit, err := field.Float64()
		if err != nil {
			return 0
		}
		return int(limit)
	case fastjson.TypeString:
		limit, err := strconv.Atoi(strings.TrimSpace(string(field.GetStringBytes())))
		if err != nil {
			return 0
		}
		return limit
	default:
		return 0
	}
}

func handleIntegrationError(w http.ResponseWriter, err error) {
	var integrationErr *integrating.IntegrationError
	if errors.As(err, &integrationErr) {
		apiErrors.WriteError(w, integrationErr.Code, integrationErr.Error(), upstreamDetails(err))
		return
	}

	logrus.WithError(err).Error("Erro inesperado na integração")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

func handleSyncError(w http.ResponseWriter, err error) {
	var syncErr *syncing.SyncError
	if errors.As(err, &syncErr) {
		apiErrors.WriteError(w, syncErr.Code, syncErr.Error(), upstreamDetails(err))
		return
	}

	logrus.WithError(err).Error("Erro inesperado na sincronização")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha na sincronização manual", nil)
}

// upstreamDetails expõe status e corpo da resposta do Mercado Libre quando houver
func upstreamDetails(err error) map[string]any {
	var apiErr *melidomain.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	return map[string]any{
		"status": apiErr.StatusCode,
		"body":   apiErr.Body,
	}
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sales-api/pkg/apiErrors"
)

const healthcheckTimeout = 2 * time.Second

// DatabasePinger é a parte do pool de conexões usada pelo healthcheck
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde o horário atual quando o banco responde ao ping.
// Sem banco configurado responde apenas o horário.
func HealthcheckHandler(db DatabasePinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Error("healthcheck: banco de dados indisponível")
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Banco de dados indisponível", nil)
				return
			}
		}

		_, err := w.Write([]byte(time.Now().Format(time.RFC3339)))
		if err != nil {
			logrus.WithError(err).Warn("erro ao responder o healthcheck")
		}
	})
}

package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"github.com/vfg2006/meli-sales-api/internal/usecases/sale"
	"github.com/vfg2006/meli-sales-api/pkg/apiErrors"
	"github.com/vfg2006/meli-sales-api/pkg/utils"
)

func ListSales(service sale.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		page := utils.ParsePage(query.Get("page"))
		limit := utils.ParseLimit(query.Get("limit"), domain.DefaultPageLimit, domain.MaxPageLimit)

		sales, err := service.ListSales(r.Context(), page, limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	}
}

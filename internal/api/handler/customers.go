package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"github.com/vfg2006/meli-sales-api/internal/usecases/customer"
	"github.com/vfg2006/meli-sales-api/pkg/apiErrors"
	"github.com/vfg2006/meli-sales-api/pkg/utils"
)

// CustomerUpdateResponse é a resposta das atualizações manuais de cliente
type CustomerUpdateResponse struct {
	OK       bool             `json:"ok"`
	Customer *domain.Customer `json:"customer"`
}

// ListCustomers lista os clientes. limit=0 ou limit=all devolve todos sem paginação.
func ListCustomers(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := domain.CustomerFilter{
			Page:  utils.ParsePage(query.Get("page")),
			Limit: parseCustomerLimit(query.Get("limit")),
			Query: strings.TrimSpace(query.Get("q")),
		}

		customers, err := service.ListCustomers(r.Context(), filter)
		if err != nil {
			handleCustomerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, customers)
	}
}

func ListCustomerSales(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meliUserID, ok := customerIDParam(w, r)
		if !ok {
			return
		}

		summary, err := service.ListCustomerSales(r.Context(), meliUserID)
		if err != nil {
			handleCustomerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// UpdateCustomerPhone grava o telefone informado. Corpo ausente ou inválido limpa o campo.
func UpdateCustomerPhone(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meliUserID, ok := customerIDParam(w, r)
		if !ok {
			return
		}

		phone := phoneFromBody(r)

		updated, err := service.UpdatePhone(r.Context(), meliUserID, phone)
		if err != nil {
			handleCustomerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, CustomerUpdateResponse{OK: true, Customer: updated})
	}
}

func UpdateCustomerNote(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meliUserID, ok := customerIDParam(w, r)
		if !ok {
			return
		}

		note := noteFromBody(r)

		updated, err := service.UpdateNote(r.Context(), meliUserID, note)
		if err != nil {
			handleCustomerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, CustomerUpdateResponse{OK: true, Customer: updated})
	}
}

func parseCustomerLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "0" || strings.EqualFold(raw, "all") {
		return 0
	}
	return utils.ParseLimit(raw, domain.DefaultPageLimit, domain.MaxPageLimit)
}

func customerIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não informado", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
		return 0, false
	}

	return id, true
}

// readBodyValue devolve o JSON do corpo ou nil quando ausente ou malformado
func readBodyValue(r *http.Request) *fastjson.Value {
	if r.Body == nil {
		return nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		return nil
	}

	v, err := fastjson.ParseBytes(body)
	if err != nil {
		logrus.WithError(err).Debug("Corpo da requisição não é JSON válido")
		return nil
	}

	return v
}

func phoneFromBody(r *http.Request) *string {
	v := readBodyValue(r)
	if v == nil {
		return nil
	}

	field := v.Get("phone")
	if field == nil {
		return nil
	}

	var phone string
	switch field.Type() {
	case fastjson.TypeString:
		phone = string(field.GetStringBytes())
	case fastjson.TypeNumber:
		phone = field.String()
	default:
		return nil
	}

	return &phone
}

func noteFromBody(r *http.Request) string {
	v := readBodyValue(r)
	if v == nil {
		return ""
	}

	field := v.Get("note")
	if field == nil {
		return ""
	}

	switch field.Type() {
	case fastjson.TypeString:
		return string(field.GetStringBytes())
	case fastjson.TypeNumber:
		return field.String()
	default:
		return ""
	}
}

func handleCustomerError(w http.ResponseWriter, err error) {
	var customerErr *customer.CustomerError
	if errors.As(err, &customerErr) {
		apiErrors.WriteError(w, customerErr.Code, customerErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro inesperado no serviço de clientes")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

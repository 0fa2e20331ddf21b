package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseFilterQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		response, err := service.GetDashboard(r.Context(), query)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, response)
	}
}

func GetFilterOptions(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := service.GetFilterOptions(r.Context())
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, options)
	}
}

func ResetFilters(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := service.ResetFilters(r.Context())
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, state)
	}
}

// parseFilterQuery lê store, start_date, end_date e top da query string
func parseFilterQuery(r *http.Request) (reporting.FilterQuery, error) {
	values := r.URL.Query()

	startDate, err := utils.ParseDate(values.Get("start_date"))
	if err != nil {
		return reporting.FilterQuery{}, errors.New("start_date inválida, use o formato AAAA-MM-DD")
	}

	endDate, err := utils.ParseDate(values.Get("end_date"))
	if err != nil {
		return reporting.FilterQuery{}, errors.New("end_date inválida, use o formato AAAA-MM-DD")
	}

	query := reporting.FilterQuery{
		Store:     values.Get("store"),
		StartDate: startDate,
		EndDate:   endDate,
	}

	if top := values.Get("top"); top != "" {
		query.Top, err = strconv.Atoi(top)
		if err != nil {
			return reporting.FilterQuery{}, errors.New("top deve ser um número inteiro")
		}
	}

	return query, nil
}

func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	var reportErr *reporting.ReportError
	if !errors.As(err, &reportErr) {
		log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no dashboard")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
		return
	}

	var details any
	if reportErr.Details != "" {
		details = reportErr.Details
	}

	if reporting.IsRecoverable(err) {
		logrus.WithField("error", err.Error()).Debug("Filtros inválidos")
	} else {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao montar o dashboard")
	}

	apiErrors.WriteError(w, reportErr.Code, reportErr.Err.Error(), details)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

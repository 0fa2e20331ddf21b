package reporting

import (
	"slices"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// FilterQuery são os filtros recebidos na requisição, ainda não validados
type FilterQuery struct {
	Store     string
	StartDate *time.Time
	EndDate   *time.Time
	// Top é a quantidade de vendedores no ranking. Zero usa o padrão.
	Top int
}

// DefaultFilters é o estado inicial e o estado após resetar os filtros
func DefaultFilters(bounds domain.DateBounds) domain.FilterState {
	var state domain.FilterState
	state.Reset(bounds)
	return state
}

// ResolveFilters converte os filtros da requisição no estado aplicado ao dashboard.
// Sem datas usa o período completo; apenas uma das datas é um erro recuperável.
func ResolveFilters(query FilterQuery, stores []string, bounds domain.DateBounds) (domain.FilterState, error) {
	state := DefaultFilters(bounds)

	if query.Store != "" && query.Store != domain.AllStores {
		if !slices.Contains(stores, query.Store) {
			return domain.FilterState{}, NewReportError(ErrInvalidStore, apiErrors.ErrInvalidRequest, query.Store)
		}
		state.Store = query.Store
	}

	switch {
	case query.StartDate == nil && query.EndDate == nil:
	case query.StartDate == nil || query.EndDate == nil:
		return domain.FilterState{}, NewReportError(ErrIncompleteDateRange, apiErrors.ErrIncompleteDateRange, "")
	case query.StartDate.After(*query.EndDate):
		return domain.FilterState{}, NewReportError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, "")
	default:
		state.StartDate = *query.StartDate
		state.EndDate = *query.EndDate
	}

	if query.Top < 0 {
		return domain.FilterState{}, NewReportError(ErrInvalidTopCount, apiErrors.ErrInvalidRequest, "")
	}

	return state, nil
}

// FilterOptionsFor monta as opções dos seletores a partir das tabelas carregadas
func FilterOptionsFor(datasets *domain.Datasets) *domain.FilterOptions {
	bounds, _ := datasets.DateBounds()

	stores := append([]string{domain.AllStores}, datasets.Stores()...)

	return &domain.FilterOptions{
		Stores:   stores,
		Bounds:   bounds,
		Defaults: DefaultFilters(bounds),
	}
}

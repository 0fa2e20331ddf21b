package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type Service struct {
	source   SalesSource
	settings SettingsLoader
	exporter Exporter
	now      func() time.Time
}

func NewService(source SalesSource, settings SettingsLoader, exporter Exporter) Reporter {
	return &Service{
		source:   source,
		settings: settings,
		exporter: exporter,
		now:      time.Now,
	}
}

func (s *Service) GetDashboard(ctx context.Context, query FilterQuery) (*domain.DashboardResponse, error) {
	settings, err := s.settings.Load()
	if err != nil {
		return nil, settingsError(err)
	}

	datasets, state, err := s.load(ctx, query)
	if err != nil {
		return nil, err
	}

	sales := FilterSales(datasets.Sales, state)
	salespersonSales := FilterSalespersonSales(datasets.SalespersonSales, state)

	kpis := ComputeKPIs(sales, settings)

	salespeople := SalespersonTotals(salespersonSales)
	top := query.Top
	if top == 0 {
		top = DefaultTopCount(len(salespeople))
	}

	distribution := DistributePrizes(salespersonSales, kpis.RealizedTotal, kpis.TotalPrizePool)

	response := &domain.DashboardResponse{
		Filters:             state,
		Settings:            settings,
		KPIs:                kpis,
		Formatted:           FormatKPIs(kpis),
		StoreTotals:         StoreTotals(FilterSalesByPeriod(datasets.Sales, state.Period())),
		TopSalespeople:      TopSalespeople(salespeople, top),
		SalespeopleCount:    len(salespeople),
		PrizeDistribution:   distribution,
		NothingToDistribute: len(distribution) == 0,
	}

	if !state.AllStoresSelected() {
		response.DailyPerformance = DailyPerformance(sales)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"filter_store": state.Store,
		"filter_start": state.StartDate.Format(time.DateOnly),
		"filter_end":   state.EndDate.Format(time.DateOnly),
	}).Debugf("Dashboard calculado com %d vendas e %d vendedores", len(sales), len(salespeople))

	return response, nil
}

func (s *Service) GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	datasets, err := s.source.LoadDatasets(ctx)
	if err != nil {
		return nil, dataSourceError(err)
	}

	return FilterOptionsFor(datasets), nil
}

func (s *Service) ResetFilters(ctx context.Context) (*domain.FilterState, error) {
	options, err := s.GetFilterOptions(ctx)
	if err != nil {
		return nil, err
	}

	state := options.Defaults
	return &state, nil
}

func (s *Service) Export(ctx context.Context, query FilterQuery) (*domain.ExportFile, error) {
	datasets, state, err := s.load(ctx, query)
	if err != nil {
		return nil, err
	}

	sales := FilterSales(datasets.Sales, state)
	if len(sales) == 0 {
		return nil, NewReportError(ErrNothingToExport, apiErrors.ErrNothingToExport, "")
	}

	salespersonSales := FilterSalespersonSales(datasets.SalespersonSales, state)

	content, err := s.exporter.Build(sales, salespersonSales)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar a planilha de exportação")
		return nil, NewReportError(ErrExportFailed, apiErrors.ErrInternalServer, err.Error())
	}

	return &domain.ExportFile{
		FileName:    ExportFileName(state.Store, s.now()),
		ContentType: domain.XLSXContentType,
		Content:     content,
	}, nil
}

func (s *Service) load(ctx context.Context, query FilterQuery) (*domain.Datasets, domain.FilterState, error) {
	datasets, err := s.source.LoadDatasets(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar as tabelas de vendas")
		return nil, domain.FilterState{}, dataSourceError(err)
	}

	bounds, _ := datasets.DateBounds()
	state, err := ResolveFilters(query, datasets.Stores(), bounds)
	if err != nil {
		return nil, domain.FilterState{}, err
	}

	return datasets, state, nil
}

// FormatKPIs formata os indicadores para exibição
func FormatKPIs(kpis domain.KPIs) domain.FormattedKPIs {
	return domain.FormattedKPIs{
		GoalTotal:         utils.FormatBRL(kpis.GoalTotal),
		RealizedTotal:     utils.FormatBRL(kpis.RealizedTotal),
		AttainmentPct:     utils.FormatPercent(kpis.AttainmentPct),
		DaysGoalMet:       fmt.Sprintf("%d dias", kpis.DaysGoalMet),
		StorePrizeAwarded: utils.FormatBRL(kpis.StorePrizeAwarded),
		DailyBonusAwarded: utils.FormatBRL(kpis.DailyBonusAwarded),
		TotalPrizePool:    utils.FormatBRL(kpis.TotalPrizePool),
	}
}

// ExportFileName monta o nome do arquivo: relatorio_<loja>_<data>.xlsx
func ExportFileName(store string, day time.Time) string {
	if store == "" {
		store = domain.AllStores
	}
	return fmt.Sprintf("relatorio_%s_%s.xlsx", strings.ReplaceAll(store, " ", "_"), day.Format(time.DateOnly))
}

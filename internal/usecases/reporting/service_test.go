package reporting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	source   *mocks.MockSalesSource
	settings *mocks.MockSettingsLoader
	exporter *mocks.MockExporter
}

func newTestService(t *testing.T) (reporting.Reporter, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		source:   mocks.NewMockSalesSource(ctrl),
		settings: mocks.NewMockSettingsLoader(ctrl),
		exporter: mocks.NewMockExporter(ctrl),
	}
	return reporting.NewService(m.source, m.settings, m.exporter), m
}

func sampleDatasets() *domain.Datasets {
	return &domain.Datasets{
		Sales: []domain.SalesRecord{
			{Date: day(1), Store: "Centro", Goal: 500, Realized: 600},
			{Date: day(1), Store: "Shopping", Goal: 400, Realized: 300},
			{Date: day(2), Store: "Centro", Goal: 500, Realized: 400},
			{Date: day(2), Store: "Shopping", Goal: 400, Realized: 500},
		},
		SalespersonSales: []domain.SalespersonRecord{
			{Date: day(1), Store: "Centro", Salesperson: "Ana", Realized: 600},
			{Date: day(1), Store: "Shopping", Salesperson: "Bruno", Realized: 300},
			{Date: day(2), Store: "Centro", Salesperson: "Carla", Realized: 400},
			{Date: day(2), Store: "Shopping", Salesperson: "Bruno", Realized: 500},
		},
	}
}

func TestGetDashboard_AllStores(t *testing.T) {
	service, m := newTestService(t)

	m.settings.EXPECT().Load().Return(domain.Settings{StorePrize: 1000, DailyBonus: 25}, nil)
	m.source.EXPECT().LoadDatasets(gomock.Any()).Return(sampleDatasets(), nil)

	response, err := service.GetDashboard(context.Background(), reporting.FilterQuery{})
	require.NoError(t, err)

	assert.Equal(t, domain.AllStores, response.Filters.Store)
	assert.Equal(t, day(1), response.Filters.StartDate)
	assert.Equal(t, day(2), response.Filters.EndDate)

	assert.Equal(t, 1800.0, response.KPIs.GoalTotal)
	assert.Equal(t, 1800.0, response.KPIs.RealizedTotal)
	assert.Equal(t, 2, response.KPIs.DaysGoalMet)
	assert.Equal(t, 1000.0, response.KPIs.StorePrizeAwarded)
	assert.Equal(t, 1050.0, response.KPIs.TotalPrizePool)
	assert.Equal(t, "R$ 1.050,00", response.Formatted.TotalPrizePool)
	assert.Equal(t, "2 dias", response.Formatted.DaysGoalMet)

	require.Len(t, response.StoreTotals, 2)
	assert.Equal(t, 3, response.SalespeopleCount)
	require.Len(t, response.TopSalespeople, 3)
	assert.Equal(t, "Bruno", response.TopSalespeople[0].Salesperson)

	assert.Nil(t, response.DailyPerformance)
	assert.False(t, response.NothingToDistribute)

	var sum float64
	for _, share := range response.PrizeDistribution {
		sum += share.Prize
	}
	assert.InDelta(t, 1050, sum, 1e-6)
}

func TestGetDashboard_SingleStore(t *testing.T) {
	service, m := newTestService(t)

	m.settings.EXPECT().Load().Return(domain.Settings{StorePrize: 1000, DailyBonus: 25}, nil)
	m.source.EXPECT().LoadDatasets(gomock.Any()).Return(sampleDatasets(), nil)

	response, err := service.GetDashboard(context.Background(), reporting.FilterQuery{Store: "Shopping", Top: 1})
	require.NoError(t, err)

	assert.Equal(t, 800.0, response.KPIs.GoalTotal)
	assert.Equal(t, 800.0, response.KPIs.RealizedTotal)
	assert.Equal(t, 1, response.KPIs.DaysGoalMet)

	// o gráfico por loja considera apenas o período
	assert.Len(t, response.StoreTotals, 2)

	assert.Equal(t, 1, response.SalespeopleCount)
	require.Len(t, response.TopSalespeople, 1)
	assert.Equal(t, "Bruno", response.TopSalespeople[0].Salesperson)

	require.Len(t, response.DailyPerformance, 2)
	assert.False(t, response.DailyPerformance[0].GoalMet)
	assert.True(t, response.DailyPerformance[1].GoalMet)

	require.Len(t, response.PrizeDistribution, 1)
	assert.InDelta(t, 1025, response.PrizeDistribution[0].Prize, 1e-9)
}

func TestGetDashboard_NothingToDistribute(t *testing.T) {
	service, m := newTestService(t)

	datasets := &domain.Datasets{
		Sales: []domain.SalesRecord{
			{Date: day(1), Store: "Centro", Goal: 500, Realized: 100},
		},
		SalespersonSales: []domain.SalespersonRecord{
			{Date: day(1), Store: "Centro", Salesperson: "Ana", Realized: 100},
		},
	}

	m.settings.EXPECT().Load().Return(domain.Settings{StorePrize: 1000, DailyBonus: 25}, nil)
	m.source.EXPECT().LoadDatasets(gomock.Any()).Return(datasets, nil)

	response, err := service.GetDashboard(context.Background(), reporting.FilterQuery{})
	require.NoError(t, err)

	assert.Zero(t, response.KPIs.TotalPrizePool)
	assert.Empty(t, response.PrizeDistribution)
	assert.True(t, response.NothingToDistribute)
}

func TestGetDashboard_Errors(t *testing.T) {
	start := day(1)

	t.Run("falha na fonte de dados", func(t *testing.T) {
		service, m := newTestService(t)
		m.settings.EXPECT().Load().Return(domain.DefaultSettings(), nil)
		m.source.EXPECT().LoadDatasets(gomock.Any()).Return(nil, errors.New("403 Forbidden"))

		_, err := service.GetDashboard(context.Background(), reporting.FilterQuery{})

		assert.ErrorIs(t, err, reporting.ErrDataSource)
		assert.False(t, reporting.IsRecoverable(err))

		var reportErr *reporting.ReportError
		require.True(t, errors.As(err, &reportErr))
		assert.Equal(t, apiErrors.ErrExternalService, reportErr.Code)
		assert.Contains(t, reportErr.Details, "403 Forbidden")
	})

	t.Run("falha na configuração", func(t *testing.T) {
		service, m := newTestService(t)
		m.settings.EXPECT().Load().Return(domain.Settings{}, errors.New("permission denied"))

		_, err := service.GetDashboard(context.Background(), reporting.FilterQuery{})

		assert.ErrorIs(t, err, reporting.ErrSettingsStorage)
	})

	t.Run("período incompleto", func(t *testing.T) {
		service, m := newTestService(t)
		m.settings.EXPECT().Load().Return(domain.DefaultSettings(), nil)
		m.source.EXPECT().LoadDatasets(gomock.Any()).Return(sampleDatasets(), nil)

		_, err := service.GetDashboard(context.Background(), reporting.FilterQuery{StartDate: &start})

		assert.ErrorIs(t, err, reporting.ErrIncompleteDateRange)
		assert.True(t, reporting.IsRecoverable(err))
	})
}

func TestGetDashboard_EmptyDatasets(t *testing.T) {
	service, m := newTestService(t)

	m.settings.EXPECT().Load().Return(domain.DefaultSettings(), nil)
	m.source.EXPECT().LoadDatasets(gomock.Any()).Return(&domain.Datasets{}, nil)

	response, err := service.GetDashboard(context.Background(), reporting.FilterQuery{})
	require.NoError(t, err)

	assert.Equal(t, domain.KPIs{}, response.KPIs)
	assert.Empty(t, response.StoreTotals)
	assert.Empty(t, response.TopSalespeople)
	assert.True(t, response.NothingToDistribute)
}

func TestResetFilters(t *testing.T) {
	service, m := newTestService(t)

	m.source.EXPECT().LoadDatasets(gomock.Any()).Return(sampleDatasets(), nil)

	state, err := service.ResetFilters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.FilterState{Store: domain.AllStores, StartDate: day(1), EndDate: day(2)}, *state)
}

func TestGetFilterOptions_SourceError(t *testing.T) {
	service, m := newTestService(t)

	m.source.EXPECT().LoadDatasets(gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := service.GetFilterOptions(context.Background())
	assert.ErrorIs(t, err, reporting.ErrDataSource)
}

func TestExport(t *testing.T) {
	service, m := newTestService(t)

	m.source.EXPECT().LoadDatasets(gomock.Any()).Return(sampleDatasets(), nil)
	m.exporter.EXPECT().
		Build(gomock.Any(), gomock.Any()).
		DoAndReturn(func(sales []domain.SalesRecord, salespersonSales []domain.SalespersonRecord) ([]byte, error) {
			assert.Len(t, sales, 2)
			assert.Len(t, salespersonSales, 2)
			for _, record := range sales {
				assert.Equal(t, "Centro", record.Store)
			}
			return []byte("xlsx"), nil
		})

	file, err := service.Export(context.Background(), reporting.FilterQuery{Store: "Centro"})
	require.NoError(t, err)

	assert.Equal(t, []byte("xlsx"), file.Content)
	assert.Equal(t, domain.XLSXContentType, file.ContentType)
	assert.Equal(t, reporting.ExportFileName("Centro", time.Now()), file.FileName)
}

func TestExport_NothingToExport(t *testing.T) {
	service, m := newTestService(t)

	start, end := day(20), day(25)
	m.source.EXPECT().LoadDatasets(gomock.Any()).Return(sampleDatasets(), nil)

	_, err := service.Export(context.Background(), reporting.FilterQuery{StartDate: &start, EndDate: &end})

	assert.ErrorIs(t, err, reporting.ErrNothingToExport)
}

func TestExport_BuildError(t *testing.T) {
	service, m := newTestService(t)

	m.source.EXPECT().LoadDatasets(gomock.Any()).Return(sampleDatasets(), nil)
	m.exporter.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, errors.New("zip error"))

	_, err := service.Export(context.Background(), reporting.FilterQuery{})
	assert.ErrorIs(t, err, reporting.ErrExportFailed)
}

func TestExportFileName(t *testing.T) {
	date := time.Date(2024, time.June, 5, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, "relatorio_Todas_as_Lojas_2024-06-05.xlsx", reporting.ExportFileName(domain.AllStores, date))
	assert.Equal(t, "relatorio_Loja_do_Centro_2024-06-05.xlsx", reporting.ExportFileName("Loja do Centro", date))
	assert.Equal(t, "relatorio_Todas_as_Lojas_2024-06-05.xlsx", reporting.ExportFileName("", date))
}

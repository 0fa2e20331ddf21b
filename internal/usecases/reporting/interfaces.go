package reporting

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SalesSource fornece as duas tabelas de vendas
type SalesSource interface {
	LoadDatasets(ctx context.Context) (*domain.Datasets, error)
}

// SettingsLoader fornece as regras de premiação vigentes
type SettingsLoader interface {
	Load() (domain.Settings, error)
}

// Exporter gera o arquivo com as duas tabelas filtradas
type Exporter interface {
	Build(sales []domain.SalesRecord, salespersonSales []domain.SalespersonRecord) ([]byte, error)
}

// Reporter é a interface completa do dashboard de vendas
type Reporter interface {
	// GetDashboard calcula indicadores, agrupamentos e premiação para os filtros
	GetDashboard(ctx context.Context, query FilterQuery) (*domain.DashboardResponse, error)

	// GetFilterOptions retorna as lojas, o período disponível e os filtros padrão
	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)

	// ResetFilters retorna o estado dos filtros restaurado para o padrão
	ResetFilters(ctx context.Context) (*domain.FilterState, error)

	// Export gera a planilha com as vendas filtradas
	Export(ctx context.Context, query FilterQuery) (*domain.ExportFile, error)
}

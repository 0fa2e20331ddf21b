package scheduler

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheets"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
)

// DatabaseImporter copia as abas da planilha para as tabelas do Postgres
type DatabaseImporter struct {
	sheets    gsheets.GSheetsIntegrator
	salesRepo repository.SalesRepository
}

func NewDatabaseImporter(sheets gsheets.GSheetsIntegrator, salesRepo repository.SalesRepository) *DatabaseImporter {
	return &DatabaseImporter{
		sheets:    sheets,
		salesRepo: salesRepo,
	}
}

// Refresh relê a planilha ignorando o cache e substitui o conteúdo das tabelas
func (i *DatabaseImporter) Refresh(ctx context.Context) error {
	if err := i.sheets.Refresh(ctx); err != nil {
		return err
	}

	datasets, err := i.sheets.LoadDatasets(ctx)
	if err != nil {
		return err
	}

	if err := i.salesRepo.ReplaceDatasets(ctx, datasets); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"store_sales":       len(datasets.Sales),
		"salesperson_sales": len(datasets.SalespersonSales),
	}).Info("DatabaseImporter: planilha importada para o banco de dados")

	return nil
}

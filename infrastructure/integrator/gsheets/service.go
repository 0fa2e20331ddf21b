package gsheets

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheets/gsheetsclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type GSheetsIntegrator interface {
	// LoadDatasets lê as duas tabelas de vendas, usando o cache enquanto estiver válido
	LoadDatasets(ctx context.Context) (*domain.Datasets, error)
	// Refresh relê as duas abas ignorando o cache e atualiza o cache
	Refresh(ctx context.Context) error
}

type GSheetsService struct {
	cfg    config.GSheets
	Client gsheetsclient.Client
	cache  *worksheetCache
}

func New(cfg *config.Config, client gsheetsclient.Client) GSheetsIntegrator {
	return &GSheetsService{
		cfg:    cfg.GSheets,
		Client: client,
		cache:  newWorksheetCache(cfg.GSheets.CacheTTL),
	}
}

func (s *GSheetsService) LoadDatasets(ctx context.Context) (*domain.Datasets, error) {
	return s.load(ctx, false)
}

func (s *GSheetsService) Refresh(ctx context.Context) error {
	_, err := s.load(ctx, true)
	return err
}

// load só grava no cache as abas lidas depois que as duas forem interpretadas sem erro
func (s *GSheetsService) load(ctx context.Context, skipCache bool) (*domain.Datasets, error) {
	storeSheet, storeCached, err := s.worksheet(ctx, s.cfg.StoreSalesSheet, skipCache)
	if err != nil {
		return nil, err
	}

	salespersonSheet, salespersonCached, err := s.worksheet(ctx, s.cfg.SalespersonSalesSheet, skipCache)
	if err != nil {
		return nil, err
	}

	datasets, err := toDatasets(storeSheet, salespersonSheet)
	if err != nil {
		return nil, err
	}

	if !storeCached {
		s.cache.put(s.cfg.StoreSalesSheet, storeSheet)
	}
	if !salespersonCached {
		s.cache.put(s.cfg.SalespersonSalesSheet, salespersonSheet)
	}

	return datasets, nil
}

func (s *GSheetsService) worksheet(ctx context.Context, name string, skipCache bool) (*gsheetsclient.Worksheet, bool, error) {
	if !skipCache {
		if worksheet, ok := s.cache.get(name); ok {
			return worksheet, true, nil
		}
	}

	logrus.WithField("worksheet", name).Debug("GSheetsService: lendo aba da planilha")

	worksheet, err := s.Client.ReadWorksheet(ctx, gsheetsclient.WorksheetParams{
		Name:    name,
		Columns: len(domain.StoreSalesColumns),
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, "erro ao ler a aba %s da planilha", name)
	}

	logrus.WithFields(logrus.Fields{
		"worksheet": name,
		"rows":      len(worksheet.Rows),
	}).Debug("GSheetsService: aba carregada")

	return worksheet, false, nil
}

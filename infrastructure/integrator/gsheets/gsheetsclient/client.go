package gsheetsclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// Client lê abas de uma planilha Google publicada
type Client interface {
	ReadWorksheet(ctx context.Context, params WorksheetParams) (*Worksheet, error)
}

type GSheetsClient struct {
	httpClient *http.Client
	config     config.GSheets
}

// NewClient cria um cliente HTTP com o timeout configurado
func NewClient(cfg *config.Config) Client {
	return &GSheetsClient{
		httpClient: &http.Client{
			Timeout: cfg.GSheets.Timeout,
		},
		config: cfg.GSheets,
	}
}

// Importa as abas LOJAS e VENDEDORES da planilha para as tabelas do Postgres.
// Usa as mesmas variáveis de ambiente da API (GSHEETS_*, DATABASE_*).
package main

import (
	"context"
	"log"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheets"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheets/gsheetsclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
)

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de importação...")
}

func main() {
	setupLogger()
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	if cfg.GSheets.URL == "" {
		log.Fatal("ERRO: GSHEETS_URL não definido")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	salesRepo := repository.NewSalesRepository(conn)
	if err := salesRepo.EnsureSchema(ctx); err != nil {
		log.Fatalf("ERRO ao criar as tabelas: %v", err)
	}
	log.Println("Tabelas verificadas")

	sheets := gsheets.New(cfg, gsheetsclient.NewClient(cfg))
	importer := scheduler.NewDatabaseImporter(sheets, salesRepo)

	if err := importer.Refresh(ctx); err != nil {
		log.Fatalf("ERRO ao importar a planilha: %v", err)
	}

	datasets, err := salesRepo.LoadDatasets(ctx)
	if err != nil {
		log.Fatalf("ERRO ao conferir os dados importados: %v", err)
	}

	log.Printf("Importação concluída em %v. Vendas por loja: %d, vendas por vendedor: %d",
		time.Since(startTime), len(datasets.Sales), len(datasets.SalespersonSales))
}

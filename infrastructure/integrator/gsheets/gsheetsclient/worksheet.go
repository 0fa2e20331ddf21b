package gsheetsclient

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
)

type WorksheetParams struct {
	Name    string
	Columns int // Quantidade de colunas lidas a partir da primeira
}

// Worksheet é o conteúdo bruto de uma aba: cabeçalho e linhas não vazias
type Worksheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// ReadWorksheet baixa a aba em CSV pelo endpoint de visualização da planilha
func (c *GSheetsClient) ReadWorksheet(ctx context.Context, params WorksheetParams) (*Worksheet, error) {
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL da planilha: %w", err)
	}
	endpoint.Path = path.Join(spreadsheetPath(endpoint.Path), "gviz/tq")
	endpoint.Fragment = ""

	query := endpoint.Query()
	query.Set("tqx", "out:csv")
	query.Set("sheet", params.Name)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("leitura da aba %s falhou com status %s: %s", params.Name, resp.Status, strings.TrimSpace(string(body)))
	}

	worksheet, err := decodeCSV(resp.Body, params)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar a aba %s: %w", params.Name, err)
	}

	return worksheet, nil
}

// spreadsheetPath remove sufixos como /edit da URL copiada do navegador
func spreadsheetPath(p string) string {
	for _, suffix := range []string{"/edit", "/view", "/"} {
		if idx := strings.LastIndex(p, suffix); idx > 0 && idx == len(p)-len(suffix) {
			p = p[:idx]
		}
	}
	return p
}

func decodeCSV(r io.Reader, params WorksheetParams) (*Worksheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	worksheet := &Worksheet{Name: params.Name, Rows: make([][]string, 0, len(records))}
	if len(records) == 0 {
		return worksheet, nil
	}

	worksheet.Header = firstColumns(records[0], params.Columns)
	for _, record := range records[1:] {
		row := firstColumns(record, params.Columns)
		if isBlank(row) {
			continue
		}
		worksheet.Rows = append(worksheet.Rows, row)
	}

	return worksheet, nil
}

// firstColumns devolve exatamente n colunas, completando com vazio quando faltarem
func firstColumns(record []string, n int) []string {
	if n <= 0 {
		n = len(record)
	}
	row := make([]string, n)
	for i := 0; i < n && i < len(record); i++ {
		row[i] = strings.TrimSpace(record[i])
	}
	return row
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

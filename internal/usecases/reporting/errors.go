package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var (
	ErrDataSource          = errors.New("erro ao conectar ou ler a planilha de vendas")
	ErrSettingsStorage     = errors.New("erro ao ler a configuração de premiação")
	ErrIncompleteDateRange = errors.New("por favor, selecione uma data de início e de fim para continuar")
	ErrInvalidDateRange    = errors.New("a data de início deve ser anterior ou igual à data de fim")
	ErrInvalidStore        = errors.New("loja não encontrada")
	ErrInvalidTopCount     = errors.New("quantidade de vendedores inválida")
	ErrNothingToExport     = errors.New("não há dados para os filtros selecionados")
	ErrExportFailed        = errors.New("erro ao gerar a planilha")
)

// ReportError é um erro com contexto adicional para o dashboard
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(baseErr error, code string, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsRecoverable indica erros em que o usuário só precisa ajustar os filtros
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrIncompleteDateRange) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrInvalidStore) ||
		errors.Is(err, ErrInvalidTopCount)
}

func dataSourceError(err error) *ReportError {
	return NewReportError(ErrDataSource, apiErrors.ErrExternalService, err.Error())
}

func settingsError(err error) *ReportError {
	return NewReportError(ErrSettingsStorage, apiErrors.ErrSettingsStorage, err.Error())
}

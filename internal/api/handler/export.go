package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

const downloadPath = "/v1/export/download/"

type CreateExportResponse struct {
	Token       string    `json:"token"`
	FileName    string    `json:"file_name"`
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ExportXLSX gera e devolve a planilha filtrada na mesma requisição
func ExportXLSX(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseFilterQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		file, err := service.Export(r.Context(), query)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeExportFile(w, file)
	}
}

// CreateExport gera a planilha e devolve um link de download temporário
func CreateExport(service reporting.Reporter, downloads *exportDownloadStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseFilterQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		file, err := service.Export(r.Context(), query)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		token, expiresAt, err := downloads.put(file)
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar token de download")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar link de download", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateExportResponse{
			Token:       token,
			FileName:    file.FileName,
			DownloadURL: downloadPath + token,
			ExpiresAt:   expiresAt,
		})
	}
}

func DownloadExport(downloads *exportDownloadStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := httprouter.ParamsFromContext(r.Context()).ByName("token")

		file, ok := downloads.take(token)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrDownloadTokenNotFound, "Link de download inexistente ou expirado", nil)
			return
		}

		writeExportFile(w, file)
	}
}

func writeExportFile(w http.ResponseWriter, file *domain.ExportFile) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))

	if _, err := w.Write(file.Content); err != nil {
		logrus.WithError(err).Error("Erro ao enviar a planilha")
	}
}

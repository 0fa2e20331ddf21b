package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/settings"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// SettingsResponse são as regras de premiação e os valores formatados exibidos como dica
type SettingsResponse struct {
	domain.Settings
	StorePrizeFormatted string `json:"store_prize_formatted"`
	DailyBonusFormatted string `json:"daily_bonus_formatted"`
}

// UpdateSettingsRequest usa ponteiros para exigir os dois campos
type UpdateSettingsRequest struct {
	StorePrize *float64 `json:"store_prize"`
	DailyBonus *float64 `json:"daily_bonus"`
}

func GetSettings(service settings.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := service.Load()
		if err != nil {
			logrus.WithError(err).Error("Erro ao carregar a configuração de premiação")
			apiErrors.WriteError(w, apiErrors.ErrSettingsStorage, "Erro ao ler o arquivo de configuração", err.Error())
			return
		}

		writeJSON(w, newSettingsResponse(current))
	}
}

func UpdateSettings(service settings.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateSettings")

		var req UpdateSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.StorePrize == nil || req.DailyBonus == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "store_prize e daily_bonus são obrigatórios", nil)
			return
		}

		// Mesmo mínimo do formulário de administração
		if *req.StorePrize < 0 || *req.DailyBonus < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Os valores não podem ser negativos", nil)
			return
		}

		updated := domain.Settings{
			StorePrize: *req.StorePrize,
			DailyBonus: *req.DailyBonus,
		}

		if err := service.Save(updated); err != nil {
			logrus.WithError(err).Error("Erro ao salvar a configuração de premiação")
			apiErrors.WriteError(w, apiErrors.ErrSettingsStorage, "Erro ao gravar o arquivo de configuração", err.Error())
			return
		}

		writeJSON(w, newSettingsResponse(updated))
	}
}

func newSettingsResponse(s domain.Settings) SettingsResponse {
	return SettingsResponse{
		Settings:            s,
		StorePrizeFormatted: utils.FormatBRL(s.StorePrize),
		DailyBonusFormatted: utils.FormatBRL(s.DailyBonus),
	}
}

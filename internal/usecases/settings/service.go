package settings

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/settingsfile"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// ErrStorage indica falha de leitura ou gravação do arquivo de configuração
var ErrStorage = errors.New("erro no armazenamento da configuração")

type Manager interface {
	// Load retorna a configuração atual, criando o arquivo com os valores padrão se ele não existir
	Load() (domain.Settings, error)
	// Save sobrescreve a configuração atual
	Save(settings domain.Settings) error
}

type Service struct {
	repo settingsfile.Repository
	// Serializa as chamadas deste processo. Entre processos vale o último a gravar.
	mu sync.Mutex
}

func NewService(repo settingsfile.Repository) Manager {
	return &Service{repo: repo}
}

func (s *Service) Load() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.repo.Exists()
	if err != nil {
		return domain.Settings{}, storageError(err)
	}

	if !exists {
		defaults := domain.DefaultSettings()
		if err := s.repo.Write(defaults); err != nil {
			return domain.Settings{}, storageError(err)
		}

		logrus.WithFields(logrus.Fields{
			"store_prize": defaults.StorePrize,
			"daily_bonus": defaults.DailyBonus,
		}).Info("Arquivo de configuração criado com os valores padrão")

		return defaults, nil
	}

	settings, err := s.repo.Read()
	if err != nil {
		return domain.Settings{}, storageError(err)
	}

	return settings, nil
}

func (s *Service) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Write(settings); err != nil {
		return storageError(err)
	}

	logrus.WithFields(logrus.Fields{
		"store_prize": settings.StorePrize,
		"daily_bonus": settings.DailyBonus,
	}).Info("Configuração de premiação atualizada")

	return nil
}

// IsStorageError verifica se o erro veio do armazenamento da configuração
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}

type storageErr struct {
	cause error
}

func (e *storageErr) Error() string {
	return ErrStorage.Error() + ": " + e.cause.Error()
}

func (e *storageErr) Is(target error) bool {
	return target == ErrStorage
}

func (e *storageErr) Unwrap() error {
	return e.cause
}

func storageError(err error) error {
	return &storageErr{cause: err}
}

// Package settingsfile persiste as regras de premiação em um arquivo JSON plano
package settingsfile

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Arquivo legível por outros usuários, como um arquivo editado à mão
const fileMode os.FileMode = 0o644

// ErrMissingKey indica que o arquivo existe mas não tem uma das duas chaves
var ErrMissingKey = errors.New("chave ausente no arquivo de configuração")

type Repository interface {
	Exists() (bool, error)
	Read() (domain.Settings, error)
	Write(settings domain.Settings) error
}

type fileRepository struct {
	path string
}

func NewRepository(path string) Repository {
	return &fileRepository{path: path}
}

// fileContent usa ponteiros para diferenciar chave ausente de valor zero
type fileContent struct {
	StorePrize *float64 `json:"store_prize"`
	DailyBonus *float64 `json:"daily_bonus"`
}

func (r *fileRepository) Exists() (bool, error) {
	_, err := os.Stat(r.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "erro ao verificar o arquivo %s", r.path)
}

func (r *fileRepository) Read() (domain.Settings, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return domain.Settings{}, errors.Wrapf(err, "erro ao ler o arquivo %s", r.path)
	}

	var content fileContent
	if err := json.Unmarshal(data, &content); err != nil {
		return domain.Settings{}, errors.Wrapf(err, "erro ao decodificar o arquivo %s", r.path)
	}

	if content.StorePrize == nil {
		return domain.Settings{}, errors.Wrap(ErrMissingKey, "store_prize")
	}
	if content.DailyBonus == nil {
		return domain.Settings{}, errors.Wrap(ErrMissingKey, "daily_bonus")
	}

	return domain.Settings{
		StorePrize: *content.StorePrize,
		DailyBonus: *content.DailyBonus,
	}, nil
}

// Write grava em um arquivo temporário no mesmo diretório e renomeia por cima do atual,
// assim um leitor nunca vê o arquivo pela metade
func (r *fileRepository) Write(settings domain.Settings) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return errors.Wrap(err, "erro ao codificar a configuração")
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "erro ao criar arquivo temporário em %s", dir)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "erro ao gravar arquivo temporário")
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return errors.Wrap(err, "erro ao ajustar permissões do arquivo temporário")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "erro ao fechar arquivo temporário")
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return errors.Wrapf(err, "erro ao substituir o arquivo %s", r.path)
	}

	return nil
}

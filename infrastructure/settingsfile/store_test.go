package settingsfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestFileRepository_WriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	repo := NewRepository(path)

	exists, err := repo.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	want := domain.Settings{StorePrize: 1234.56, DailyBonus: 0.1}
	require.NoError(t, repo.Write(want))

	exists, err = repo.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.Read()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"store_prize"`)
	assert.Contains(t, string(raw), `"daily_bonus"`)
}

func TestFileRepository_WriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(filepath.Join(dir, "config.json"))

	require.NoError(t, repo.Write(domain.Settings{StorePrize: 1, DailyBonus: 2}))
	require.NoError(t, repo.Write(domain.Settings{StorePrize: 3, DailyBonus: 4}))

	got, err := repo.Read()
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{StorePrize: 3, DailyBonus: 4}, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "nenhum arquivo temporário deve sobrar")
}

func TestFileRepository_ReadHumanEditedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"daily_bonus": 30, "store_prize": 1500}`), 0o644))

	got, err := NewRepository(path).Read()
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{StorePrize: 1500, DailyBonus: 30}, got)
}

func TestFileRepository_ReadMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"store_prize": 1500}`), 0o644))

	_, err := NewRepository(path).Read()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingKey))
}

func TestFileRepository_ReadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`store_prize=1`), 0o644))

	_, err := NewRepository(path).Read()
	assert.Error(t, err)
}

func TestFileRepository_WriteToMissingDirectory(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "missing", "config.json"))
	assert.Error(t, repo.Write(domain.DefaultSettings()))
}

func TestFileRepository_WriteKeepsFileReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	repo := NewRepository(path)

	require.NoError(t, repo.Write(domain.DefaultSettings()))
	require.NoError(t, repo.Write(domain.Settings{StorePrize: 10, DailyBonus: 1}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

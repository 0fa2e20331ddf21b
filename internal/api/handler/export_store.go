package handler

import (
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const exportDownloadTTL = 10 * time.Minute

type exportDownload struct {
	file      *domain.ExportFile
	expiresAt time.Time
}

// exportDownloadStore guarda em memória as planilhas geradas até o download
type exportDownloadStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]exportDownload
}

func newExportDownloadStore(ttl time.Duration) *exportDownloadStore {
	return &exportDownloadStore{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]exportDownload),
	}
}

func (s *exportDownloadStore) put(file *domain.ExportFile) (token string, expiresAt time.Time, err error) {
	token, err = utils.GenerateID()
	if err != nil {
		return "", time.Time{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeExpiredLocked(now)

	expiresAt = now.Add(s.ttl)
	s.items[token] = exportDownload{
		file:      file,
		expiresAt: expiresAt,
	}
	return token, expiresAt, nil
}

// take retorna o arquivo e remove o token: cada link serve um único download
func (s *exportDownloadStore) take(token string) (*domain.ExportFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(s.now())

	v, ok := s.items[token]
	if !ok {
		return nil, false
	}
	delete(s.items, token)
	return v.file, true
}

func (s *exportDownloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}

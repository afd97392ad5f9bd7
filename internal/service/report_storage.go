package service

import (
	"fmt"
	"path"
	"path/filepath"

	"clinic-backend/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ReportStorage persists uploaded lab report files and hands back a
// retrievable reference. Backed by the OS filesystem in production and
// by an in-memory filesystem in tests.
type ReportStorage struct {
	fs        afero.Fs
	log       *logrus.Logger
	uploadDir string
}

func NewReportStorage(fs afero.Fs, log *logrus.Logger, cfg config.StorageConfig) (*ReportStorage, error) {
	if err := fs.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &ReportStorage{
		fs:        fs,
		log:       log,
		uploadDir: cfg.UploadDir,
	}, nil
}

// Save writes the report content under a generated unique name and
// returns the public URL path for it.
func (s *ReportStorage) Save(originalName string, content []byte) (string, error) {
	name := uuid.New().String() + filepath.Ext(originalName)

	if err := afero.WriteFile(s.fs, filepath.Join(s.uploadDir, name), content, 0o644); err != nil {
		s.log.Warnf("Failed to store report file %s: %+v", name, err)
		return "", err
	}

	return "/" + path.Join(s.uploadDir, name), nil
}

// Remove deletes a stored report given the URL path Save returned.
func (s *ReportStorage) Remove(reportURL string) error {
	return s.fs.Remove(filepath.Join(s.uploadDir, path.Base(reportURL)))
}

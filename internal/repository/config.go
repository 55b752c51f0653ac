package repository

import (
	errUtils "github.com/BerryBytes/ssocreds/internal/errors"
	"github.com/BerryBytes/ssocreds/internal/logger"
	"github.com/BerryBytes/ssocreds/models"
	"github.com/spf13/afero"
)

type FileConfigRepository struct {
	fs   afero.Fs
	path string
}

func NewFileConfigRepository(fs afero.Fs, path string) *FileConfigRepository {
	return &FileConfigRepository{fs: fs, path: path}
}

// Load parses the config file into its sections, keeping file order.
func (r *FileConfigRepository) Load() (*models.RawConfig, error) {
	file, exists, err := loadINI(r.fs, r.path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errUtils.ConfigMissing(r.path)
	}

	raw := &models.RawConfig{}
	for _, sec := range file.Sections() {
		if isImplicitDefault(sec) {
			continue
		}
		raw.Sections = append(raw.Sections, models.RawSection{
			Name: sec.Name(),
			Keys: sec.KeysHash(),
		})
	}

	logger.Debug("Loaded AWS config", "path", r.path, "sections", len(raw.Sections))
	return raw, nil
}

package repository

import (
	"fmt"

	"github.com/spf13/afero"
	ini "gopkg.in/ini.v1"
)

const (
	PermissionRWX = 0o700
	PermissionRW  = 0o600
)

var loadOptions = ini.LoadOptions{
	// Start URLs may legitimately end in '#'.
	IgnoreInlineComment: true,
}

// loadINI reads path from fs. A missing file yields an empty document and exists=false.
func loadINI(fs afero.Fs, path string) (*ini.File, bool, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !exists {
		return ini.Empty(loadOptions), false, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read %s: %w", path, err)
	}

	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, true, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file, true, nil
}

// isImplicitDefault reports whether sec is ini's unnamed leading section.
func isImplicitDefault(sec *ini.Section) bool {
	return sec.Name() == ini.DefaultSection
}

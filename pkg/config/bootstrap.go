package config

import (
	"os"
	"path/filepath"

	"github.com/MilosSubotic/coloring-tee/pkg/errors"
	"github.com/MilosSubotic/coloring-tee/pkg/filesystem"
	"github.com/MilosSubotic/coloring-tee/pkg/logging"
	"github.com/MilosSubotic/coloring-tee/pkg/paths"
)

// Resolution is the outcome of choosing the configuration file
type Resolution struct {
	// Path to load; empty means the embedded template
	Path string
	// Created is set when the per-user file was written by this run
	Created bool
	// Warning reports a per-user file that could not be created. The
	// embedded template is used instead.
	Warning error
}

// Resolve picks the configuration file. An explicit path must exist.
// Otherwise the per-user file is used, created from the template when
// missing.
func Resolve(p paths.Paths, fsys filesystem.FS, explicit string) (Resolution, error) {
	if explicit != "" {
		path := paths.ExpandHome(explicit)
		info, err := fsys.Stat(path)
		if err != nil {
			return Resolution{}, errors.Wrapf(err, errors.ErrConfigLoad, "cannot open configuration file %q", explicit).
				WithDetail("path", path)
		}
		if info.IsDir() {
			return Resolution{}, errors.Newf(errors.ErrConfigLoad, "configuration file %q is a directory", explicit).
				WithDetail("path", path)
		}
		return Resolution{Path: path}, nil
	}

	path := p.UserConfigPath()
	created, err := EnsureUserConfig(fsys, path)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrConfigInvalid) {
			return Resolution{}, err
		}
		return Resolution{Warning: err}, nil
	}
	return Resolution{Path: path, Created: created}, nil
}

// EnsureUserConfig writes the configuration template to path unless a file
// is already there. A directory in its place is a configuration error.
func EnsureUserConfig(fsys filesystem.FS, path string) (bool, error) {
	logger := logging.GetLogger("config")

	info, err := fsys.Stat(path)
	if err == nil {
		if info.IsDir() {
			return false, errors.Newf(errors.ErrConfigInvalid, "configuration path %s is a directory", path).
				WithDetail("path", path)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "cannot stat %s", path).
			WithDetail("path", path)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "cannot create %s", filepath.Dir(path)).
			WithDetail("path", path)
	}
	if err := fsys.WriteFile(path, userTemplate, 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "cannot write %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Msg("Created user configuration")
	return true, nil
}

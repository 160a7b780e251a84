// Package sources discovers and reads the files a run lints. It is the
// external collaborator in front of the core: the scan/evaluate
// pipeline only ever sees already-read (path, language, text) triples.
package sources

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/arthur-debert/sglint/pkg/logging"
	"github.com/arthur-debert/sglint/pkg/types"
)

// skipDirs are directory names never descended into
var skipDirs = map[string]bool{
	".git": true, ".hg": true, ".svn": true,
	"node_modules": true, "elm-stuff": true, "vendor": true,
}

// Discover walks the given paths and returns every .sql and .elm file,
// skipping VCS/build directories and the configured ignore globs.
// A path that is itself a file is taken as-is regardless of ignores.
func Discover(roots []string, ignore []string) ([]string, error) {
	logger := logging.GetLogger("sources")
	var found []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", root)
		}
		if !info.IsDir() {
			found = append(found, root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot walk %s", path)
			}
			if d.IsDir() {
				if skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if _, ok := types.LanguageForPath(path); !ok {
				return nil
			}
			if ignored(path, ignore) {
				return nil
			}
			found = append(found, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	logger.Debug().Int("files", len(found)).Strs("roots", roots).Msg("Discovery completed")
	return found, nil
}

// Read loads one file into a SourceFile. The token stream is filled in
// by the pipeline after scanning. Unclassifiable files keep an empty
// Language; the pipeline reports them as unsupported.
func Read(path string) (*types.SourceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path)
	}
	lang, _ := types.LanguageForPath(path)
	return &types.SourceFile{
		Path:     filepath.ToSlash(path),
		Language: lang,
		Content:  string(data),
	}, nil
}

// Collect discovers and reads everything in one step. Any read error
// is fatal per the propagation policy: config and file errors surface
// immediately, only linting-domain findings degrade to violations.
func Collect(roots []string, ignore []string) ([]*types.SourceFile, error) {
	paths, err := Discover(roots, ignore)
	if err != nil {
		return nil, err
	}
	files := make([]*types.SourceFile, 0, len(paths))
	for _, path := range paths {
		file, err := Read(path)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

func ignored(path string, ignore []string) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range ignore {
		if ok, _ := filepath.Match(pattern, slashed); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}

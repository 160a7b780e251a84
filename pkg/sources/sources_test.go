package sources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/arthur-debert/sglint/pkg/sources"
	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree lays out files under root, creating directories as needed
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Run("finds sql and elm files", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"schema.sql":          "SELECT 1",
			"src/Main.elm":        "module Main exposing (main)",
			"README.md":           "docs",
			"scripts/deploy.sh":   "#!/bin/sh",
			"src/Views/Login.elm": "module Views.Login exposing (view)",
		})

		found, err := sources.Discover([]string{root}, nil)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"schema.sql", "Main.elm", "Login.elm"}, basenames(found))
	})

	t.Run("skips build and vcs directories", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"keep.sql":                "SELECT 1",
			"elm-stuff/dep/Cache.elm": "module Cache exposing (x)",
			"node_modules/pkg/x.sql":  "SELECT 1",
			"vendor/lib/y.sql":        "SELECT 1",
		})

		found, err := sources.Discover([]string{root}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"keep.sql"}, basenames(found))
	})

	t.Run("ignore globs filter by base name", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"keep.sql":          "SELECT 1",
			"legacy_dump.sql":   "SELECT 1",
			"legacy_schema.sql": "SELECT 1",
		})

		found, err := sources.Discover([]string{root}, []string{"legacy_*.sql"})
		require.NoError(t, err)
		assert.Equal(t, []string{"keep.sql"}, basenames(found))
	})

	t.Run("explicit file bypasses ignores", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"legacy.sql": "SELECT 1"})

		found, err := sources.Discover([]string{filepath.Join(root, "legacy.sql")}, []string{"legacy*"})
		require.NoError(t, err)
		assert.Equal(t, []string{"legacy.sql"}, basenames(found))
	})

	t.Run("missing root fails", func(t *testing.T) {
		_, err := sources.Discover([]string{filepath.Join(t.TempDir(), "absent")}, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})

	t.Run("empty directory yields nothing", func(t *testing.T) {
		found, err := sources.Discover([]string{t.TempDir()}, nil)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestRead(t *testing.T) {
	t.Run("classifies by extension", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"q.sql": "SELECT 1"})

		file, err := sources.Read(filepath.Join(root, "q.sql"))
		require.NoError(t, err)
		assert.Equal(t, types.LangSQL, file.Language)
		assert.Equal(t, "SELECT 1", file.Content)
		assert.Nil(t, file.Tokens)
		assert.NotContains(t, file.Path, "\\")
	})

	t.Run("unknown extension keeps empty language", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"notes.txt": "hi"})

		file, err := sources.Read(filepath.Join(root, "notes.txt"))
		require.NoError(t, err)
		assert.Equal(t, types.Language(""), file.Language)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := sources.Read(filepath.Join(t.TempDir(), "absent.sql"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
	})
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.sql":        "SELECT 1",
		"src/Main.elm": "module Main exposing (main)",
	})

	files, err := sources.Collect([]string{root}, nil)
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.NotEmpty(t, f.Content)
		assert.NotEmpty(t, f.Language)
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLoad_Discovery(t *testing.T) {
	t.Run("nearest file wins", func(t *testing.T) {
		outer := t.TempDir()
		inner := filepath.Join(outer, "android")
		writeFile(t, filepath.Join(outer, domain.ConfigFileName), "name: outer\nandroid:\n  namespace: com.example.outer\n")
		writeFile(t, filepath.Join(inner, domain.ConfigFileName), "name: inner\nandroid:\n  namespace: com.example.inner\n")

		project, err := newLoader(t).Load(t.Context(), filepath.Join(inner, "app"), nil)
		require.NoError(t, err)
		assert.Equal(t, "inner", project.Name)
		assert.Equal(t, inner, project.Root)
	})

	t.Run("not found", func(t *testing.T) {
		cwd := filepath.Join(t.TempDir(), "empty")
		require.NoError(t, os.MkdirAll(cwd, 0o750))

		_, err := newLoader(t).Load(t.Context(), cwd, nil)
		require.ErrorIs(t, err, domain.ErrConfigNotFound)

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, cwd, zErr.Metadata()["cwd"])
	})

	t.Run("unreadable path", func(t *testing.T) {
		root := t.TempDir()
		// A directory named like the config file is found but cannot be read.
		require.NoError(t, os.MkdirAll(filepath.Join(root, domain.ConfigFileName), 0o750))

		_, err := newLoader(t).Load(t.Context(), root, nil)
		require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	})
}

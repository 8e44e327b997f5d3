package lockfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droidplan/internal/adapters/lockfile"
	"go.trai.ch/droidplan/internal/core/domain"
)

func sampleLock() *domain.Lockfile {
	lock := domain.NewLockfile()
	lock.Variants["release"] = domain.LockedPlan{
		Fingerprint: "00000000deadbeef",
		Plugins:     []string{domain.PluginAndroidApplication, domain.PluginFlutter},
		Dependencies: map[string]string{
			"com.google.firebase:firebase-analytics": "32.7.0",
		},
	}
	return lock
}

func TestStore_PutAndGet(t *testing.T) {
	root := t.TempDir()
	store := lockfile.NewStore()

	require.NoError(t, store.Put(root, sampleLock()))

	got, err := store.Get(root)
	require.NoError(t, err)
	assert.Equal(t, sampleLock(), got)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files are renamed into place")
	assert.Equal(t, domain.LockFileName, entries[0].Name())
}

func TestStore_Overwrite(t *testing.T) {
	root := t.TempDir()
	store := lockfile.NewStore()

	require.NoError(t, store.Put(root, sampleLock()))

	updated := sampleLock()
	updated.Variants["debug"] = domain.LockedPlan{Fingerprint: "1"}
	require.NoError(t, store.Put(root, updated))

	got, err := store.Get(root)
	require.NoError(t, err)
	assert.Len(t, got.Variants, 2)
}

func TestStore_GetMissing(t *testing.T) {
	got, err := lockfile.NewStore().Get(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetEmptyFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.LockFileName), nil, domain.FilePerm))

	got, err := lockfile.NewStore().Get(root)
	require.NoError(t, err)
	assert.Equal(t, domain.NewLockfile(), got)
}

func TestStore_GetCorrupted(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.LockFileName), []byte("{not json"), domain.FilePerm))

	_, err := lockfile.NewStore().Get(root)
	assert.ErrorIs(t, err, domain.ErrLockUnmarshalFailed)
}

func TestStore_PutCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "app")

	require.NoError(t, lockfile.NewStore().Put(root, sampleLock()))

	_, err := os.Stat(filepath.Join(root, domain.LockFileName))
	assert.NoError(t, err)
}

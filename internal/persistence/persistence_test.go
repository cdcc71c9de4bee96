package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uw2go/uw2go/internal/hal"
	bolt "go.etcd.io/bbolt"
)

func newTestPersistence(t *testing.T) Persistence {
	p := NewPersistence(filepath.Join(t.TempDir(), "db", "uw2go.db"))
	require.NoError(t, p.Init())
	return p
}

func TestPersistence_Init_CreatesDirectory(t *testing.T) {
	// GIVEN
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	p := NewPersistence(filepath.Join(dir, "uw2go.db"))

	// WHEN
	err := p.Init()

	// THEN
	assert.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestPersistence_LoadProfile_Missing(t *testing.T) {
	// GIVEN
	p := newTestPersistence(t)

	// WHEN
	_, err := p.LoadProfile()

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_SaveAndLoadProfile(t *testing.T) {
	// GIVEN
	p := newTestPersistence(t)

	// WHEN
	require.NoError(t, p.SaveProfile(hal.ProfileOverboost))
	profile, err := p.LoadProfile()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, hal.ProfileOverboost, profile)
}

func TestPersistence_DeleteProfile(t *testing.T) {
	// GIVEN
	p := newTestPersistence(t)
	require.NoError(t, p.SaveProfile(hal.ProfileBalanced))

	// WHEN
	err := p.DeleteProfile()

	// THEN
	require.NoError(t, err)
	_, err = p.LoadProfile()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_FanSpeeds(t *testing.T) {
	// GIVEN
	p := newTestPersistence(t)

	// WHEN
	require.NoError(t, p.SaveFanSpeed("cpu", 40))
	require.NoError(t, p.SaveFanSpeed("gpu", 100))
	require.NoError(t, p.SaveFanSpeed("cpu", 55))

	// THEN
	speeds, err := p.LoadFanSpeeds()
	require.NoError(t, err)
	assert.Equal(t, map[string]uint8{"cpu": 55, "gpu": 100}, speeds)

	require.NoError(t, p.DeleteFanSpeed("gpu"))
	require.NoError(t, p.DeleteFanSpeed("unknown"))
	speeds, err = p.LoadFanSpeeds()
	require.NoError(t, err)
	assert.Equal(t, map[string]uint8{"cpu": 55}, speeds)
}

func TestPersistence_LoadFanSpeeds_Empty(t *testing.T) {
	// GIVEN
	p := newTestPersistence(t)

	// WHEN
	speeds, err := p.LoadFanSpeeds()

	// THEN
	require.NoError(t, err)
	assert.Empty(t, speeds)
}

func TestPersistence_LoadFanSpeeds_DropsCorruptEntries(t *testing.T) {
	// GIVEN
	dbPath := filepath.Join(t.TempDir(), "uw2go.db")
	p := NewPersistence(dbPath)
	require.NoError(t, p.SaveFanSpeed("cpu", 30))

	db, err := bolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(BucketFanSpeeds)).Put([]byte("gpu"), []byte("not json"))
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// WHEN
	speeds, err := p.LoadFanSpeeds()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, map[string]uint8{"cpu": 30}, speeds)
}

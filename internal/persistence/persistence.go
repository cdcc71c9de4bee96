package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketProfile   = "profile"
	BucketFanSpeeds = "fanSpeeds"

	keyProfile = "current"
)

// Persistence remembers settings applied to the device, so they can be restored
// after a reboot or a resume, which both reset the EC.
type Persistence interface {
	Init() error

	SaveProfile(profile hal.PerformanceProfile) error
	LoadProfile() (hal.PerformanceProfile, error)
	DeleteProfile() error

	// SaveFanSpeed stores a manually set fan speed in percent
	SaveFanSpeed(fanId string, percent uint8) error
	LoadFanSpeeds() (map[string]uint8, error)
	DeleteFanSpeed(fanId string) error
}

type persistence struct {
	dbPath string
}

func NewPersistence(dbPath string) Persistence {
	return &persistence{
		dbPath: dbPath,
	}
}

func (p persistence) Init() (err error) {
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
	}
	return err
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 1 * time.Minute})
	if err != nil {
		return nil, fmt.Errorf("open db %s: %w", p.dbPath, err)
	}
	return db, nil
}

func (p persistence) update(fn func(tx *bolt.Tx) error) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)
	return db.Update(fn)
}

func (p persistence) view(fn func(tx *bolt.Tx) error) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)
	return db.View(fn)
}

func put(tx *bolt.Tx, bucket string, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	b, err := tx.CreateBucketIfNotExists([]byte(bucket))
	if err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	return b.Put([]byte(key), data)
}

func remove(tx *bolt.Tx, bucket string, key string) error {
	b := tx.Bucket([]byte(bucket))
	if b == nil {
		// nothing stored yet
		return nil
	}
	return b.Delete([]byte(key))
}

// SaveProfile stores the given profile as the last applied one
func (p persistence) SaveProfile(profile hal.PerformanceProfile) error {
	return p.update(func(tx *bolt.Tx) error {
		return put(tx, BucketProfile, keyProfile, profile.String())
	})
}

// LoadProfile returns the last applied profile, os.ErrNotExist if there is none
func (p persistence) LoadProfile() (hal.PerformanceProfile, error) {
	var name string
	err := p.view(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketProfile))
		if b == nil {
			return os.ErrNotExist
		}
		v := b.Get([]byte(keyProfile))
		if v == nil {
			return os.ErrNotExist
		}
		return json.Unmarshal(v, &name)
	})
	if err != nil {
		return 0, err
	}
	return hal.ParseProfile(name)
}

func (p persistence) DeleteProfile() error {
	return p.update(func(tx *bolt.Tx) error {
		return remove(tx, BucketProfile, keyProfile)
	})
}

func (p persistence) SaveFanSpeed(fanId string, percent uint8) error {
	return p.update(func(tx *bolt.Tx) error {
		return put(tx, BucketFanSpeeds, fanId, percent)
	})
}

// LoadFanSpeeds returns all stored manual fan speeds by fan id,
// entries that cannot be decoded are dropped
func (p persistence) LoadFanSpeeds() (map[string]uint8, error) {
	speeds := map[string]uint8{}
	err := p.update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketFanSpeeds))
		if b == nil {
			return nil
		}

		var corrupt [][]byte
		err := b.ForEach(func(k, v []byte) error {
			var percent uint8
			if err := json.Unmarshal(v, &percent); err != nil {
				ui.Warning("Unable to unmarshal saved fan speed for %s: %v", string(k), err)
				corrupt = append(corrupt, k)
				return nil
			}
			speeds[string(k)] = percent
			return nil
		})
		if err != nil {
			return err
		}

		// keys must not be deleted while iterating
		for _, k := range corrupt {
			if err := b.Delete(k); err != nil {
				ui.Error("Unable to delete corrupt data key %s: %v", string(k), err)
			}
		}
		return nil
	})
	return speeds, err
}

func (p persistence) DeleteFanSpeed(fanId string) error {
	return p.update(func(tx *bolt.Tx) error {
		return remove(tx, BucketFanSpeeds, fanId)
	})
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/heroes/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketPresets = "presets" // key: preset ID -> Preset JSON
	boltBucketBattles = "battles" // key: battle ID -> BattleRecord JSON
)

type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates a new Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	instance, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketPresets)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketBattles)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(boltBucketPresets)) == nil {
			return errors.New("presets bucket missing")
		}

		return nil
	})
}

func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) SavePreset(p *model.Preset) error {
	if p == nil || p.Army == nil {
		return errors.New("preset with an army is required")
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketPresets)).Put([]byte(p.ID), data)
	})
}

func (b *Bolt) GetPreset(id string) (*model.Preset, error) {
	var p *model.Preset

	err := b.storage.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketPresets)).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("preset %s: %w", id, model.ErrNotFound)
		}

		p = &model.Preset{}

		return json.Unmarshal(v, p)
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (b *Bolt) ListPresets() ([]model.Preset, error) {
	var out []model.Preset

	err := b.storage.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketPresets)).ForEach(func(_, v []byte) error {
			var p model.Preset

			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}

			out = append(out, p)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}

		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (b *Bolt) DeletePreset(id string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		presets := tx.Bucket([]byte(boltBucketPresets))

		if presets.Get([]byte(id)) == nil {
			return fmt.Errorf("preset %s: %w", id, model.ErrNotFound)
		}

		return presets.Delete([]byte(id))
	})
}

func (b *Bolt) SaveBattle(r *model.BattleRecord) error {
	if r == nil {
		return errors.New("battle record is required")
	}

	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	if r.FoughtAt.IsZero() {
		r.FoughtAt = time.Now()
	}

	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketBattles)).Put([]byte(r.ID), data)
	})
}

func (b *Bolt) GetBattle(id string) (*model.BattleRecord, error) {
	var r *model.BattleRecord

	err := b.storage.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketBattles)).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("battle %s: %w", id, model.ErrNotFound)
		}

		r = &model.BattleRecord{}

		return json.Unmarshal(v, r)
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (b *Bolt) ListBattles() ([]model.BattleRecord, error) {
	var out []model.BattleRecord

	err := b.storage.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketBattles)).ForEach(func(_, v []byte) error {
			var r model.BattleRecord

			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}

			out = append(out, r)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].FoughtAt.Equal(out[j].FoughtAt) {
			return out[i].FoughtAt.Before(out[j].FoughtAt)
		}

		return out[i].ID < out[j].ID
	})

	return out, nil
}

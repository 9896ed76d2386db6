// file: internals/features/finance/billing/service/draft_cache.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DraftCache menyimpan draft pilihan tagihan di Redis supaya selamat dari
// reload layar. Key per siswa:
//   selectedMonths_{id}, uncheckedItems_{id}, excludedStudents_{id}
// Dibersihkan setelah pembayaran sukses tersimpan. Client nil = fitur mati:
// Load mengembalikan draft kosong, Save/Clear jadi no-op (bukan error).
type DraftCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDraftCache(rdb *redis.Client) *DraftCache {
	return &DraftCache{rdb: rdb, ttl: 24 * time.Hour}
}

func keySelectedMonths(id uuid.UUID) string { return fmt.Sprintf("selectedMonths_%s", id) }
func keyUncheckedItems(id uuid.UUID) string { return fmt.Sprintf("uncheckedItems_%s", id) }
func keyExcluded(id uuid.UUID) string { return fmt.Sprintf("excludedStudents_%s", id) }

// SaveStudent menulis draft satu siswa (dipanggil tiap toggle di layar).
func (dc *DraftCache) SaveStudent(ctx context.Context, id uuid.UUID, months, unchecked []string, excluded bool) error {
	if dc == nil || dc.rdb == nil {
		return nil
	}

	monthsRaw, err := json.Marshal(months)
	if err != nil {
		return err
	}
	uncheckedRaw, err := json.Marshal(unchecked)
	if err != nil {
		return err
	}

	pipe := dc.rdb.TxPipeline()
	pipe.Set(ctx, keySelectedMonths(id), monthsRaw, dc.ttl)
	pipe.Set(ctx, keyUncheckedItems(id), uncheckedRaw, dc.ttl)
	if excluded {
		pipe.Set(ctx, keyExcluded(id), "1", dc.ttl)
	} else {
		pipe.Del(ctx, keyExcluded(id))
	}
	_, err = pipe.Exec(ctx)
	return err
}

// LoadFamily membaca draft seluruh anggota keluarga. Error baca di-log dan
// di-degrade jadi kosong — layar tetap jalan tanpa draft.
func (dc *DraftCache) LoadFamily(ctx context.Context, ids []uuid.UUID) SelectionDraft {
	draft := NewSelectionDraft()
	if dc == nil || dc.rdb == nil {
		return draft
	}

	for _, id := range ids {
		if raw, err := dc.rdb.Get(ctx, keySelectedMonths(id)).Result(); err == nil {
			var months []string
			if err := json.Unmarshal([]byte(raw), &months); err == nil && len(months) > 0 {
				draft.SelectedMonths[id.String()] = months
			}
		} else if err != redis.Nil {
			log.Printf("[WARN] draft cache read err (months, %s): %v", id, err)
		}

		if raw, err := dc.rdb.Get(ctx, keyUncheckedItems(id)).Result(); err == nil {
			var items []string
			if err := json.Unmarshal([]byte(raw), &items); err == nil && len(items) > 0 {
				draft.UncheckedItems[id.String()] = items
			}
		} else if err != redis.Nil {
			log.Printf("[WARN] draft cache read err (unchecked, %s): %v", id, err)
		}

		if _, err := dc.rdb.Get(ctx, keyExcluded(id)).Result(); err == nil {
			draft.ExcludedStudents[id.String()] = true
		} else if err != redis.Nil {
			log.Printf("[WARN] draft cache read err (excluded, %s): %v", id, err)
		}
	}

	return draft
}

// ClearFamily membuang seluruh draft keluarga (setelah commit sukses).
func (dc *DraftCache) ClearFamily(ctx context.Context, ids []uuid.UUID) error {
	if dc == nil || dc.rdb == nil || len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids)*3)
	for _, id := range ids {
		keys = append(keys, keySelectedMonths(id), keyUncheckedItems(id), keyExcluded(id))
	}
	return dc.rdb.Del(ctx, keys...).Err()
}

// file: internals/features/finance/billing/service/draft_cache_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Tanpa Redis (client nil) fitur draft harus mati dengan anggun,
// bukan error — layar billing tetap bisa dipakai.
func TestDraftCacheNilClientDegrades(t *testing.T) {
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	dc := NewDraftCache(nil)

	assert.NoError(t, dc.SaveStudent(ctx, ids[0], []string{"April"}, nil, false))
	assert.NoError(t, dc.ClearFamily(ctx, ids))

	draft := dc.LoadFamily(ctx, ids)
	assert.True(t, draft.IsEmpty())
}

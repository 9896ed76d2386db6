// file: internals/features/finance/billing/service/selection_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSelectionDraftZeroValueSafe(t *testing.T) {
	var d SelectionDraft // map nil semua

	id := uuid.New()
	assert.Nil(t, d.MonthsFor(id))
	assert.False(t, d.IsUnchecked(id, "Tuition Fee"))
	assert.False(t, d.IsExcluded(id))
	assert.True(t, d.IsEmpty())
}

func TestNormalizeMonths(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"duplikat & bulan asing", []string{"April", "April", "NotAMonth"}, []string{"April"}},
		{"urutan input dipertahankan", []string{"May", "April", "May"}, []string{"May", "April"}},
		{"semua asing", []string{"Smarch", ""}, []string{}},
		{"nil", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMonths(tt.in))
		})
	}
}

func TestMonthsForNormalizes(t *testing.T) {
	id := uuid.New()
	d := NewSelectionDraft()
	d.SelectedMonths[id.String()] = []string{"April", "April", "NotAMonth", "May"}

	assert.Equal(t, []string{"April", "May"}, d.MonthsFor(id))
}

func TestSelectionDraftLookups(t *testing.T) {
	id := uuid.New()
	other := uuid.New()

	d := NewSelectionDraft()
	d.SelectedMonths[id.String()] = []string{"April"}
	d.UncheckedItems[id.String()] = []string{"Exam Fee"}
	d.ExcludedStudents[other.String()] = true

	assert.Equal(t, []string{"April"}, d.MonthsFor(id))
	assert.True(t, d.IsUnchecked(id, "Exam Fee"))
	assert.False(t, d.IsUnchecked(id, "Tuition Fee"))
	assert.True(t, d.IsExcluded(other))
	assert.False(t, d.IsExcluded(id))
	assert.False(t, d.IsEmpty())
}

// file: internals/features/finance/billing/service/selection.go
package service

import (
	"github.com/google/uuid"

	helper "sekolahku_backend/internals/helpers"
)

// SelectionDraft: state pilihan operator untuk satu keluarga, di-keyed
// per student id (string). Ini ephemeral — hidup di layar + cache draft,
// dan dibersihkan setelah pembayaran sukses tersimpan.
type SelectionDraft struct {
	// student id -> bulan yang dipilih
	SelectedMonths map[string][]string `json:"selected_months"`
	// student id -> nama item yang di-uncheck manual (tetap tampil, tidak dihitung)
	UncheckedItems map[string][]string `json:"unchecked_items"`
	// student id -> true kalau siswa dikecualikan dari tagihan keluarga
	ExcludedStudents map[string]bool `json:"excluded_students"`
}

func NewSelectionDraft() SelectionDraft {
	return SelectionDraft{
		SelectedMonths:   map[string][]string{},
		UncheckedItems:   map[string][]string{},
		ExcludedStudents: map[string]bool{},
	}
}

func (d SelectionDraft) MonthsFor(id uuid.UUID) []string {
	if d.SelectedMonths == nil {
		return nil
	}
	return NormalizeMonths(d.SelectedMonths[id.String()])
}

// NormalizeMonths memperlakukan daftar bulan sebagai himpunan: duplikat dan
// bulan di luar tahun ajaran dibuang. Semua hitungan tagihan lewat sini —
// input layar/cache tidak pernah dipercaya mentah.
func NormalizeMonths(months []string) []string {
	seen := make(map[string]struct{}, len(months))
	out := make([]string, 0, len(months))
	for _, m := range months {
		if !helper.IsAcademicMonth(m) {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

func (d SelectionDraft) IsUnchecked(id uuid.UUID, item string) bool {
	if d.UncheckedItems == nil {
		return false
	}
	for _, name := range d.UncheckedItems[id.String()] {
		if name == item {
			return true
		}
	}
	return false
}

func (d SelectionDraft) IsExcluded(id uuid.UUID) bool {
	if d.ExcludedStudents == nil {
		return false
	}
	return d.ExcludedStudents[id.String()]
}

// IsEmpty: true kalau draft tidak membawa pilihan apa pun.
func (d SelectionDraft) IsEmpty() bool {
	for _, months := range d.SelectedMonths {
		if len(months) > 0 {
			return false
		}
	}
	return len(d.UncheckedItems) == 0 && len(d.ExcludedStudents) == 0
}

// file: internals/features/finance/billing/service/committer_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feeService "sekolahku_backend/internals/features/finance/fee_settings/service"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

func TestBuildStudentCommits_PrimaryAndSecondary(t *testing.T) {
	primary := newStudent("Aisyah", "Class 5", "2025-26", 0, 0)
	sibling := newStudent("Bilal", "Class 3", "2025-26", 50, 0)

	draft := NewSelectionDraft()
	draft.SelectedMonths[primary.StudentID.String()] = []string{"May", "April"}
	draft.SelectedMonths[sibling.StudentID.String()] = []string{"April"}

	cfg := feeConfigTwoClasses()
	members := []studentModel.Student{primary, sibling}
	bill := BuildFamilyBill(members, draft, cfg, []ExtraCharge{{Name: "Denda", Amount: 10}}, 20, 1400)

	paidAt := time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)
	commits := BuildStudentCommits(CommitInput{
		Primary:     primary,
		Members:     members,
		Bill:        bill,
		PaymentMode: "Cash",
		PaidAt:      paidAt,
		ReceiptNo:   "RCP260410093000-0001",
	})

	require.Len(t, commits, 2)

	var prim, sec *StudentCommit
	for i := range commits {
		if commits[i].IsPrimary {
			prim = &commits[i]
		} else {
			sec = &commits[i]
		}
	}
	require.NotNil(t, prim)
	require.NotNil(t, sec)

	// uang hanya dicatat di primary
	assert.Equal(t, primary.StudentID, prim.StudentID)
	assert.Equal(t, 1400.0, prim.Entry.AmountReceived)
	assert.Equal(t, 20.0, prim.Entry.Discount)
	assert.Len(t, prim.Entry.ExtraCharges, 1)
	assert.Equal(t, bill.FinalNewBalance, prim.Entry.NewBalance)
	assert.Equal(t, []string{"April", "May"}, prim.Entry.Months)

	// anggota lain nol; saldonya tidak berubah pada pass ini
	assert.Equal(t, sibling.StudentID, sec.StudentID)
	assert.Equal(t, 0.0, sec.Entry.AmountReceived)
	assert.Equal(t, 0.0, sec.Entry.Discount)
	assert.Empty(t, sec.Entry.ExtraCharges)
	assert.Equal(t, 50.0, sec.Entry.OldBalance)
	assert.Equal(t, 50.0, sec.Entry.NewBalance)

	for _, sc := range commits {
		assert.Equal(t, "RCP260410093000-0001", sc.Entry.ReceiptNo)
		assert.Equal(t, "2025-26", sc.Entry.Session)
		assert.Equal(t, "Cash", sc.Entry.PaymentMode)
		assert.Equal(t, paidAt, sc.Entry.PaidAt)
	}
}

func TestBuildStudentCommits_BalanceSettlementOnly(t *testing.T) {
	// tanpa bulan terpilih: primary tetap dapat entri (pelunasan saldo)
	primary := newStudent("Citra", "Class 5", "2025-26", 300, 0)

	members := []studentModel.Student{primary}
	bill := BuildFamilyBill(members, NewSelectionDraft(), feeConfigTwoClasses(), nil, 0, 300)

	commits := BuildStudentCommits(CommitInput{
		Primary:     primary,
		Members:     members,
		Bill:        bill,
		PaymentMode: "UPI",
		PaidAt:      time.Now(),
		ReceiptNo:   "RCP260410100000-0002",
	})

	require.Len(t, commits, 1)
	sc := commits[0]
	assert.True(t, sc.IsPrimary)
	assert.Empty(t, sc.Entry.Months)
	assert.Empty(t, sc.Entry.Items)
	assert.Equal(t, 300.0, sc.Entry.OldBalance)
	assert.Equal(t, 0.0, sc.Entry.NewBalance) // 300 - 300
	assert.Equal(t, 300.0, sc.Entry.AmountReceived)
}

func TestBuildStudentCommits_OnlyCheckedItemsRecorded(t *testing.T) {
	primary := newStudent("Dewi", "Class 5", "2025-26", 0, 0)

	draft := NewSelectionDraft()
	draft.SelectedMonths[primary.StudentID.String()] = []string{"April"}
	draft.UncheckedItems[primary.StudentID.String()] = []string{"Exam Fee"}

	cfg := feeConfigTwoClasses()
	cfg.Plans["Class 5"]["Exam Fee"] = 100

	members := []studentModel.Student{primary}
	bill := BuildFamilyBill(members, draft, cfg, nil, 0, 500)

	commits := BuildStudentCommits(CommitInput{
		Primary: primary, Members: members, Bill: bill,
		PaymentMode: "Cash", PaidAt: time.Now(), ReceiptNo: "RCP260410110000-0003",
	})

	require.Len(t, commits, 1)
	items := commits[0].Entry.Items
	require.Len(t, items, 1) // Exam Fee (unchecked) tidak ikut ke history
	assert.Equal(t, "Tuition Fee", items[0].Name)
}

func feeConfigTwoClasses() feeService.FeeConfig {
	return feeService.FeeConfig{
		Plans: map[string]map[string]float64{
			"Class 5": {"Tuition Fee": 500},
			"Class 3": {"Tuition Fee": 300},
		},
		Schedule: map[string][]string{},
	}
}

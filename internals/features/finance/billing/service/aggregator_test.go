// file: internals/features/finance/billing/service/aggregator_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feeService "sekolahku_backend/internals/features/finance/fee_settings/service"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

func newStudent(name, class, session string, balance, transport float64) studentModel.Student {
	return studentModel.Student{
		StudentID:           uuid.New(),
		StudentName:         name,
		StudentClassName:    class,
		StudentSession:      session,
		StudentBalance:      balance,
		StudentTransportFee: transport,
	}
}

func TestBuildFamilyBill_FamilyScenario(t *testing.T) {
	// keluarga 2 anak: A pilih April+May, B dikecualikan tapi saldonya
	// tetap ikut ke total saldo lama
	a := newStudent("Aisyah", "Class 5", "2025-26", 0, 0)
	b := newStudent("Bilal", "Class 3", "2025-26", 200, 0)

	draft := NewSelectionDraft()
	draft.SelectedMonths[a.StudentID.String()] = []string{"May", "April"}
	draft.ExcludedStudents[b.StudentID.String()] = true

	cfg := feeService.FeeConfig{
		Plans: map[string]map[string]float64{
			"Class 5": {"Tuition Fee": 500},
			"Class 3": {"Tuition Fee": 300},
		},
		Schedule: map[string][]string{},
	}

	bill := BuildFamilyBill([]studentModel.Student{a, b}, draft, cfg, nil, 0, 1200)

	assert.Equal(t, "2025-26", bill.Session)
	require.Len(t, bill.StudentWiseBreakdown, 1)

	bd := bill.StudentWiseBreakdown[0]
	assert.Equal(t, a.StudentID.String(), bd.StudentID)
	assert.Equal(t, []string{"April", "May"}, bd.SelectedMonths)
	require.Len(t, bd.Items, 1)
	assert.Equal(t, LineItem{Name: "Tuition Fee", Rate: 500, Count: 2, Total: 1000, IsChecked: true}, bd.Items[0])

	assert.Equal(t, 1000.0, bill.CurrentBillTotal)
	assert.Equal(t, 200.0, bill.TotalOldBalance)
	assert.Equal(t, 1200.0, bill.NetPayable)
	assert.Equal(t, 0.0, bill.FinalNewBalance)
}

func TestBuildFamilyBill_UncheckedItemStaysInBreakdown(t *testing.T) {
	st := newStudent("Citra", "Class 5", "2025-26", 0, 0)

	draft := NewSelectionDraft()
	draft.SelectedMonths[st.StudentID.String()] = []string{"April"}
	draft.UncheckedItems[st.StudentID.String()] = []string{"Exam Fee"}

	cfg := feeService.FeeConfig{
		Plans: map[string]map[string]float64{
			"Class 5": {"Tuition Fee": 500, "Exam Fee": 100},
		},
	}

	bill := BuildFamilyBill([]studentModel.Student{st}, draft, cfg, nil, 0, 0)

	require.Len(t, bill.StudentWiseBreakdown, 1)
	items := bill.StudentWiseBreakdown[0].Items
	require.Len(t, items, 2)

	// urut abjad: Exam Fee dulu
	assert.Equal(t, "Exam Fee", items[0].Name)
	assert.False(t, items[0].IsChecked)
	assert.Equal(t, 100.0, items[0].Total) // rate & total tetap utuh untuk audit

	assert.Equal(t, "Tuition Fee", items[1].Name)
	assert.True(t, items[1].IsChecked)

	// hanya yang checked masuk total
	assert.Equal(t, 500.0, bill.CurrentBillTotal)
	assert.Equal(t, 500.0, bill.StudentWiseBreakdown[0].CurrentTotal)
}

func TestBuildFamilyBill_ScheduleFiltersMonths(t *testing.T) {
	st := newStudent("Dewi", "Class 5", "2025-26", 0, 0)

	draft := NewSelectionDraft()
	draft.SelectedMonths[st.StudentID.String()] = []string{"April", "May", "June"}

	cfg := feeService.FeeConfig{
		Plans: map[string]map[string]float64{
			"Class 5": {"Admission Fee": 1000, "Tuition Fee": 500},
		},
		Schedule: map[string][]string{
			"Admission Fee": {"April"}, // hanya April
			"Tuition Fee":   {},        // kosong = semua bulan
		},
	}

	bill := BuildFamilyBill([]studentModel.Student{st}, draft, cfg, nil, 0, 0)

	require.Len(t, bill.StudentWiseBreakdown, 1)
	items := bill.StudentWiseBreakdown[0].Items
	require.Len(t, items, 2)

	assert.Equal(t, "Admission Fee", items[0].Name)
	assert.Equal(t, 1, items[0].Count)
	assert.Equal(t, 1000.0, items[0].Total)

	assert.Equal(t, "Tuition Fee", items[1].Name)
	assert.Equal(t, 3, items[1].Count)
	assert.Equal(t, 1500.0, items[1].Total)
}

func TestBuildFamilyBill_BusFeeIgnoresSchedule(t *testing.T) {
	st := newStudent("Eko", "Class 5", "2025-26", 0, 150)

	draft := NewSelectionDraft()
	draft.SelectedMonths[st.StudentID.String()] = []string{"April", "May"}

	cfg := feeService.FeeConfig{
		Plans: map[string]map[string]float64{"Class 5": {"Tuition Fee": 500}},
		Schedule: map[string][]string{
			BusFeeItemName: {"June"}, // jadwal TIDAK berlaku untuk transport
		},
	}

	bill := BuildFamilyBill([]studentModel.Student{st}, draft, cfg, nil, 0, 0)

	require.Len(t, bill.StudentWiseBreakdown, 1)
	items := bill.StudentWiseBreakdown[0].Items
	require.Len(t, items, 2)

	bus := items[len(items)-1]
	assert.Equal(t, BusFeeItemName, bus.Name)
	assert.Equal(t, 2, bus.Count)
	assert.Equal(t, 300.0, bus.Total)
}

func TestBuildFamilyBill_NoMonthsNoBreakdown(t *testing.T) {
	st := newStudent("Fajar", "Class 5", "2025-26", 750, 150)

	cfg := feeService.FeeConfig{
		Plans: map[string]map[string]float64{"Class 5": {"Tuition Fee": 500}},
	}

	bill := BuildFamilyBill([]studentModel.Student{st}, NewSelectionDraft(), cfg, nil, 0, 0)

	// tanpa bulan terpilih: tidak ada rincian, saldo lama tetap ikut
	assert.Empty(t, bill.StudentWiseBreakdown)
	assert.Equal(t, 0.0, bill.CurrentBillTotal)
	assert.Equal(t, 750.0, bill.TotalOldBalance)
	assert.Equal(t, 750.0, bill.NetPayable)
}

func TestBuildFamilyBill_ZeroRateItemSkipped(t *testing.T) {
	st := newStudent("Gita", "Class 5", "2025-26", 0, 0)

	draft := NewSelectionDraft()
	draft.SelectedMonths[st.StudentID.String()] = []string{"April"}

	cfg := feeService.FeeConfig{
		Plans: map[string]map[string]float64{
			"Class 5": {"Tuition Fee": 500, "Library Fee": 0},
		},
	}

	bill := BuildFamilyBill([]studentModel.Student{st}, draft, cfg, nil, 0, 0)

	require.Len(t, bill.StudentWiseBreakdown, 1)
	require.Len(t, bill.StudentWiseBreakdown[0].Items, 1)
	assert.Equal(t, "Tuition Fee", bill.StudentWiseBreakdown[0].Items[0].Name)
}

func TestBuildFamilyBill_ExtrasDiscountOverpay(t *testing.T) {
	st := newStudent("Hana", "Class 5", "2025-26", 100, 0)

	draft := NewSelectionDraft()
	draft.SelectedMonths[st.StudentID.String()] = []string{"April"}

	cfg := feeService.FeeConfig{
		Plans: map[string]map[string]float64{"Class 5": {"Tuition Fee": 500}},
	}
	extras := []ExtraCharge{{Name: "Buku Rapor", Amount: 50}}

	bill := BuildFamilyBill([]studentModel.Student{st}, draft, cfg, extras, 25, 700)

	assert.Equal(t, 550.0, bill.CurrentBillTotal) // 500 + extra 50
	assert.Equal(t, 625.0, bill.NetPayable)       // 550 + 100 - 25
	assert.Equal(t, -75.0, bill.FinalNewBalance)  // lebih bayar = saldo negatif (kredit)
}

func TestBuildFamilyBill_DuplicateAndUnknownMonthsCollapse(t *testing.T) {
	// klik dobel / data cache kotor: ["April","April","NotAMonth"] harus
	// dihitung sebagai satu bulan April — juga untuk transport
	st := newStudent("Joko", "Class 5", "2025-26", 0, 150)

	draft := NewSelectionDraft()
	draft.SelectedMonths[st.StudentID.String()] = []string{"April", "April", "NotAMonth"}

	cfg := feeService.FeeConfig{
		Plans: map[string]map[string]float64{"Class 5": {"Tuition Fee": 500}},
	}

	bill := BuildFamilyBill([]studentModel.Student{st}, draft, cfg, nil, 0, 0)

	require.Len(t, bill.StudentWiseBreakdown, 1)
	bd := bill.StudentWiseBreakdown[0]
	assert.Equal(t, []string{"April"}, bd.SelectedMonths)
	require.Len(t, bd.Items, 2)

	assert.Equal(t, LineItem{Name: "Tuition Fee", Rate: 500, Count: 1, Total: 500, IsChecked: true}, bd.Items[0])
	assert.Equal(t, LineItem{Name: BusFeeItemName, Rate: 150, Count: 1, Total: 150, IsChecked: true}, bd.Items[1])
	assert.Equal(t, 650.0, bill.CurrentBillTotal)
}

func TestBuildFamilyBill_OnlyUnknownMonthsNoBreakdown(t *testing.T) {
	st := newStudent("Kiki", "Class 5", "2025-26", 0, 150)

	draft := NewSelectionDraft()
	draft.SelectedMonths[st.StudentID.String()] = []string{"Smarch", ""}

	cfg := feeService.FeeConfig{
		Plans: map[string]map[string]float64{"Class 5": {"Tuition Fee": 500}},
	}

	bill := BuildFamilyBill([]studentModel.Student{st}, draft, cfg, nil, 0, 0)
	assert.Empty(t, bill.StudentWiseBreakdown)
	assert.Equal(t, 0.0, bill.CurrentBillTotal)
}

func TestBuildFamilyBill_ClassWithoutPlan(t *testing.T) {
	st := newStudent("Indra", "Kelas Baru", "2025-26", 0, 0)

	draft := NewSelectionDraft()
	draft.SelectedMonths[st.StudentID.String()] = []string{"April"}

	bill := BuildFamilyBill([]studentModel.Student{st}, draft, feeService.FeeConfig{
		Plans: map[string]map[string]float64{},
	}, nil, 0, 0)

	assert.Empty(t, bill.StudentWiseBreakdown)
	assert.Equal(t, 0.0, bill.NetPayable)
}

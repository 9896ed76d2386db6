// file: internals/features/finance/billing/service/aggregator.go
package service

import (
	"sort"

	feeService "sekolahku_backend/internals/features/finance/fee_settings/service"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

// BusFeeItemName: item transport, dihitung dari tarif per siswa dan TIDAK
// difilter jadwal fee_master.
const BusFeeItemName = "Bus Fees"

// =========================================================
// TIPE — hasil agregasi tagihan keluarga
// =========================================================

type LineItem struct {
	Name      string  `json:"name"`
	Rate      float64 `json:"rate"`
	Count     int     `json:"count"`
	Total     float64 `json:"total"`
	IsChecked bool    `json:"is_checked"`
}

type ExtraCharge struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type StudentBreakdown struct {
	StudentID      string     `json:"student_id"`
	StudentName    string     `json:"student_name"`
	ClassName      string     `json:"class_name"`
	OldBalance     float64    `json:"old_balance"`
	SelectedMonths []string   `json:"selected_months"`
	Items          []LineItem `json:"items"`
	// hanya item yang checked
	CurrentTotal float64 `json:"current_total"`
}

type FamilyBill struct {
	Session              string             `json:"session"`
	StudentWiseBreakdown []StudentBreakdown `json:"student_wise_breakdown"`

	// saldo lama SEMUA anggota keluarga (termasuk yang dikecualikan)
	TotalOldBalance float64 `json:"total_old_balance"`
	// item checked + biaya tambahan
	CurrentBillTotal float64 `json:"current_bill_total"`

	ExtraCharges   []ExtraCharge `json:"extra_charges"`
	Discount       float64       `json:"discount"`
	AmountReceived float64       `json:"amount_received"`

	NetPayable      float64 `json:"net_payable"`
	FinalNewBalance float64 `json:"final_new_balance"`
}

// =========================================================
// AGREGATOR — fungsi murni, tanpa IO
// =========================================================

// BuildFamilyBill menggabungkan anggota keluarga + draft pilihan + config
// tarif jadi rincian tagihan. Aturannya:
//   - per item fee plan dengan tarif > 0: count = irisan bulan terpilih
//     dengan bulan berlaku di jadwal (tanpa entri jadwal / daftar kosong =
//     semua bulan berlaku);
//   - item yang di-uncheck tetap tampil di rincian (audit) tapi totalnya
//     tidak masuk current_bill_total;
//   - transport dihitung flat: tarif x jumlah bulan terpilih;
//   - siswa tanpa satu pun line item tidak muncul di rincian;
//   - saldo lama tetap dijumlahkan untuk SEMUA anggota, termasuk yang
//     dikecualikan — pengecualian memengaruhi tagihan, bukan saldo.
func BuildFamilyBill(
	members []studentModel.Student,
	draft SelectionDraft,
	cfg feeService.FeeConfig,
	extras []ExtraCharge,
	discount float64,
	amountReceived float64,
) FamilyBill {
	bill := FamilyBill{
		StudentWiseBreakdown: []StudentBreakdown{},
		ExtraCharges:         append([]ExtraCharge(nil), extras...),
		Discount:             discount,
		AmountReceived:       amountReceived,
	}
	if len(members) > 0 {
		bill.Session = members[0].StudentSession
	}

	for _, st := range members {
		bill.TotalOldBalance += st.StudentBalance

		if draft.IsExcluded(st.StudentID) {
			continue
		}

		selected := draft.MonthsFor(st.StudentID)
		items := buildLineItems(st, selected, draft, cfg)
		if len(items) == 0 {
			continue
		}

		bd := StudentBreakdown{
			StudentID:      st.StudentID.String(),
			StudentName:    st.StudentName,
			ClassName:      st.StudentClassName,
			OldBalance:     st.StudentBalance,
			SelectedMonths: helper.SortAcademicMonths(selected),
			Items:          items,
		}
		for _, it := range items {
			if it.IsChecked {
				bd.CurrentTotal += it.Total
			}
		}

		bill.CurrentBillTotal += bd.CurrentTotal
		bill.StudentWiseBreakdown = append(bill.StudentWiseBreakdown, bd)
	}

	for _, ex := range extras {
		bill.CurrentBillTotal += ex.Amount
	}

	bill.NetPayable = bill.CurrentBillTotal + bill.TotalOldBalance - discount
	bill.FinalNewBalance = bill.NetPayable - amountReceived
	return bill
}

func buildLineItems(st studentModel.Student, selected []string, draft SelectionDraft, cfg feeService.FeeConfig) []LineItem {
	var items []LineItem

	// plan kelas; kelas tanpa plan = nol item (bukan error)
	plan := cfg.Plans[st.StudentClassName]

	names := make([]string, 0, len(plan))
	for name := range plan {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rate := plan[name]
		if rate <= 0 {
			continue
		}
		count := 0
		for _, month := range selected {
			if monthEligible(cfg.Schedule, name, month) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		items = append(items, LineItem{
			Name:      name,
			Rate:      rate,
			Count:     count,
			Total:     rate * float64(count),
			IsChecked: !draft.IsUnchecked(st.StudentID, name),
		})
	}

	// transport: flat per bulan terpilih, tanpa filter jadwal
	if st.StudentTransportFee > 0 && len(selected) > 0 {
		items = append(items, LineItem{
			Name:      BusFeeItemName,
			Rate:      st.StudentTransportFee,
			Count:     len(selected),
			Total:     st.StudentTransportFee * float64(len(selected)),
			IsChecked: !draft.IsUnchecked(st.StudentID, BusFeeItemName),
		})
	}

	return items
}

// monthEligible: entri jadwal tidak ada ATAU daftar bulan kosong ATAU
// memuat bulan tsb.
func monthEligible(schedule map[string][]string, item, month string) bool {
	months, ok := schedule[item]
	if !ok || len(months) == 0 {
		return true
	}
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}

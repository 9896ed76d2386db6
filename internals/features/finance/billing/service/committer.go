// file: internals/features/finance/billing/service/committer.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

// =========================================================
// HISTORY ENTRY — catatan pembayaran immutable per siswa
// =========================================================

type HistoryEntry struct {
	ReceiptNo string `json:"receipt_no"`
	Session   string `json:"session"`
	// urutan kalender tahun ajaran (April ... Maret)
	Months []string   `json:"months"`
	Items  []LineItem `json:"items"`

	PaidAt      time.Time `json:"paid_at"`
	PaymentMode string    `json:"payment_mode"`

	// diterima/diskon/biaya tambahan HANYA dicatat di siswa primary
	// (yang layarnya memulai pembayaran); anggota lain nol.
	AmountReceived float64       `json:"amount_received"`
	Discount       float64       `json:"discount"`
	ExtraCharges   []ExtraCharge `json:"extra_charges"`

	OldBalance float64 `json:"old_balance"`
	NewBalance float64 `json:"new_balance"`
}

// StudentCommit: satu entri siap tulis untuk satu siswa.
type StudentCommit struct {
	StudentID uuid.UUID    `json:"student_id"`
	IsPrimary bool         `json:"is_primary"`
	Entry     HistoryEntry `json:"entry"`
}

type CommitInput struct {
	Primary     studentModel.Student
	Members     []studentModel.Student
	Bill        FamilyBill
	PaymentMode string
	PaidAt      time.Time
	ReceiptNo   string
}

type CommitResult struct {
	ReceiptNo string          `json:"receipt_no"`
	Committed []StudentCommit `json:"committed"`
	// terisi kalau saga berhenti di tengah; anggota sebelumnya TIDAK di-rollback
	FailedStudentID *uuid.UUID `json:"failed_student_id,omitempty"`
}

// =========================================================
// BUILDER — murni, tanpa IO (dipisah biar bisa dites)
// =========================================================

// BuildStudentCommits menyusun entri history per siswa yang kena tagih.
// Primary SELALU ikut (walau tanpa line item — kasus pelunasan saldo);
// anggota lain ikut hanya kalau punya line item di rincian.
// Catatan produk: saldo anggota non-primary tidak dikurangi pada pass ini —
// new_balance mereka = saldo lama.
func BuildStudentCommits(in CommitInput) []StudentCommit {
	byID := make(map[string]StudentBreakdown, len(in.Bill.StudentWiseBreakdown))
	order := make([]string, 0, len(in.Bill.StudentWiseBreakdown))
	for _, bd := range in.Bill.StudentWiseBreakdown {
		byID[bd.StudentID] = bd
		order = append(order, bd.StudentID)
	}

	primaryID := in.Primary.StudentID.String()
	if _, ok := byID[primaryID]; !ok {
		// pelunasan saldo tanpa bulan terpilih: entri kosong untuk primary
		byID[primaryID] = StudentBreakdown{
			StudentID:   primaryID,
			StudentName: in.Primary.StudentName,
			ClassName:   in.Primary.StudentClassName,
			OldBalance:  in.Primary.StudentBalance,
		}
		order = append([]string{primaryID}, order...)
	}

	commits := make([]StudentCommit, 0, len(order))
	for _, id := range order {
		bd := byID[id]
		isPrimary := id == primaryID

		entry := HistoryEntry{
			ReceiptNo:    in.ReceiptNo,
			Session:      in.Bill.Session,
			Months:       helper.SortAcademicMonths(bd.SelectedMonths),
			Items:        checkedItems(bd.Items),
			PaidAt:       in.PaidAt,
			PaymentMode:  in.PaymentMode,
			ExtraCharges: []ExtraCharge{},
			OldBalance:   bd.OldBalance,
			NewBalance:   bd.OldBalance,
		}
		if isPrimary {
			entry.AmountReceived = in.Bill.AmountReceived
			entry.Discount = in.Bill.Discount
			entry.ExtraCharges = append([]ExtraCharge{}, in.Bill.ExtraCharges...)
			entry.NewBalance = in.Bill.FinalNewBalance
		}

		sid, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		commits = append(commits, StudentCommit{StudentID: sid, IsPrimary: isPrimary, Entry: entry})
	}
	return commits
}

func checkedItems(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		if it.IsChecked {
			out = append(out, it)
		}
	}
	return out
}

// =========================================================
// COMMITTER — saga best-effort per siswa
// =========================================================

// CommitPayment menulis hasil tagihan: per siswa SATU transaksi
// (append history + merge status bulan + saldo), dieksekusi berurutan.
// Kalau siswa ke-N gagal, siswa 1..N-1 TIDAK di-rollback; id siswa yang
// gagal dikembalikan supaya operator bisa memverifikasi manual.
func CommitPayment(ctx context.Context, db *gorm.DB, in CommitInput) (CommitResult, error) {
	res := CommitResult{ReceiptNo: in.ReceiptNo, Committed: []StudentCommit{}}

	nameByID := make(map[uuid.UUID]studentModel.Student, len(in.Members))
	for _, st := range in.Members {
		nameByID[st.StudentID] = st
	}

	for _, sc := range BuildStudentCommits(in) {
		st, ok := nameByID[sc.StudentID]
		if !ok {
			st = in.Primary
		}

		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := appendHistory(tx, st, sc.Entry); err != nil {
				return err
			}
			if len(sc.Entry.Months) > 0 {
				if err := mergeMonthPaid(tx, sc.StudentID, sc.Entry); err != nil {
					return err
				}
			}
			if sc.IsPrimary {
				if err := tx.Exec(
					`UPDATE students SET student_balance = ?, student_updated_at = now() WHERE student_id = ?`,
					in.Bill.FinalNewBalance, sc.StudentID,
				).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			failed := sc.StudentID
			res.FailedStudentID = &failed
			return res, err
		}

		res.Committed = append(res.Committed, sc)
	}

	return res, nil
}

// appendHistory: upsert baris fees_manage + concat satu entri JSONB.
// Entri lama tidak pernah ditulis ulang (append-only).
func appendHistory(tx *gorm.DB, st studentModel.Student, entry HistoryEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return tx.Exec(`
		INSERT INTO fees_manage
			(fees_manage_student_id, fees_manage_student_name, fees_manage_class_name, fees_manage_history)
		VALUES (?, ?, ?, jsonb_build_array(?::jsonb))
		ON CONFLICT (fees_manage_student_id) DO UPDATE
		SET fees_manage_history      = fees_manage.fees_manage_history || EXCLUDED.fees_manage_history,
		    fees_manage_student_name = EXCLUDED.fees_manage_student_name,
		    fees_manage_class_name   = EXCLUDED.fees_manage_class_name,
		    fees_manage_updated_at   = now()`,
		st.StudentID, st.StudentName, st.StudentClassName, string(raw),
	).Error
}

// mergeMonthPaid: tandai bulan terpilih lunas untuk session ini, di-merge
// ke map existing (session lain & bulan lain tidak tersentuh).
func mergeMonthPaid(tx *gorm.DB, studentID uuid.UUID, entry HistoryEntry) error {
	patch := make(map[string]any, len(entry.Months))
	for _, m := range entry.Months {
		patch[m] = map[string]any{
			"receipt_no": entry.ReceiptNo,
			"paid_at":    entry.PaidAt,
		}
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	return tx.Exec(`
		UPDATE students
		SET student_fee_month_paid = jsonb_set(
		        COALESCE(student_fee_month_paid, '{}'::jsonb),
		        ARRAY[?::text],
		        COALESCE(student_fee_month_paid -> ?, '{}'::jsonb) || ?::jsonb,
		        true),
		    student_updated_at = now()
		WHERE student_id = ?`,
		entry.Session, entry.Session, string(raw), studentID,
	).Error
}

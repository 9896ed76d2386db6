// file: internals/features/finance/billing/controller/billing_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/finance/billing/dto"
	ledgerModel "sekolahku_backend/internals/features/finance/billing/model"
	billingService "sekolahku_backend/internals/features/finance/billing/service"
	feeService "sekolahku_backend/internals/features/finance/fee_settings/service"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	studentService "sekolahku_backend/internals/features/school/students/service"
	helper "sekolahku_backend/internals/helpers"
)

type BillingHandler struct {
	DB     *gorm.DB
	Drafts *billingService.DraftCache
}

// billContext: semua bahan agregasi satu keluarga, hasil sekali fetch.
type billContext struct {
	primary studentModel.Student
	members []studentModel.Student
	draft   billingService.SelectionDraft
	cfg     feeService.FeeConfig
}

func (h *BillingHandler) loadBillContext(c *fiber.Ctx, primaryID uuid.UUID, bodyDraft *dto.BillingDraftDTO) (billContext, error) {
	var bc billContext

	primary, members, err := studentService.FindFamily(c.Context(), h.DB, primaryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bc, fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		return bc, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	bc.primary = primary
	bc.members = members

	// draft dari body menang; tanpa body, pakai cache (recovery reload layar)
	if bodyDraft != nil {
		bc.draft = bodyDraft.ToSelectionDraft()
	} else {
		bc.draft = h.Drafts.LoadFamily(c.Context(), memberIDs(members))
	}

	classes := distinctClassNames(members)
	cfg, err := feeService.ResolveFeeConfig(c.Context(), h.DB, classes)
	if err != nil {
		return bc, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	bc.cfg = cfg

	return bc, nil
}

// -----------------------------------------
// Preview (POST /billing/preview)
// Hitung rincian tagihan keluarga tanpa menyimpan apa pun.
// -----------------------------------------
func (h *BillingHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewRequestDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	bc, err := h.loadBillContext(c, in.PrimaryStudentID, in.Draft)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	bill := billingService.BuildFamilyBill(
		bc.members, bc.draft, bc.cfg,
		in.ExtraCharges, in.Discount, in.AmountReceived,
	)
	return helper.JsonOK(c, "ok", bill)
}

// -----------------------------------------
// Pay (POST /billing/pay)
// Simpan pembayaran: saga per siswa (lihat service/committer.go).
// -----------------------------------------
func (h *BillingHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayRequestDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if in.AmountReceived < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "required field missing: amount_received")
	}
	mode := strings.TrimSpace(in.PaymentMode)
	if mode == "" {
		mode = "Cash"
	}

	bc, err := h.loadBillContext(c, in.PrimaryStudentID, in.Draft)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	bill := billingService.BuildFamilyBill(
		bc.members, bc.draft, bc.cfg,
		in.ExtraCharges, in.Discount, in.AmountReceived,
	)

	// precondition: minimal satu line checked ATAU ada saldo lama yang dilunasi
	if !hasCheckedLine(bill) && bill.TotalOldBalance == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "required field missing: pilih minimal satu bulan/item atau lunasi saldo lama")
	}

	now := time.Now()
	commitIn := billingService.CommitInput{
		Primary:     bc.primary,
		Members:     bc.members,
		Bill:        bill,
		PaymentMode: mode,
		PaidAt:      now,
		ReceiptNo:   helper.NewReceiptNo(now),
	}

	res, err := billingService.CommitPayment(c.Context(), h.DB, commitIn)
	if err != nil {
		// saga berhenti; anggota yang sudah tersimpan TIDAK di-rollback
		committed := make([]string, 0, len(res.Committed))
		for _, sc := range res.Committed {
			committed = append(committed, sc.StudentID.String())
		}
		log.Printf("[ERROR] save payment gagal di siswa %v (sudah tersimpan: %v): %v",
			res.FailedStudentID, committed, err)
		msg := "save failed"
		if len(committed) > 0 {
			msg = "save failed — sebagian anggota sudah tersimpan: " + strings.Join(committed, ", ")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, msg)
	}

	// sukses: draft keluarga dibuang
	if err := h.Drafts.ClearFamily(c.Context(), memberIDs(bc.members)); err != nil {
		log.Printf("[WARN] gagal clear draft keluarga %s: %v", bc.primary.StudentGuardianID, err)
	}

	log.Printf("[INFO] payment %s tersimpan: %d siswa, diterima %.2f",
		res.ReceiptNo, len(res.Committed), in.AmountReceived)

	return helper.JsonCreated(c, "payment saved", dto.ReceiptResponse{
		ReceiptNo:        res.ReceiptNo,
		Session:          bill.Session,
		PrimaryStudentID: bc.primary.StudentID,
		PaidAt:           now,
		PaymentMode:      mode,
		Bill:             bill,
		Committed:        res.Committed,
		AmountReceived:   in.AmountReceived,
		AmountInWords:    helper.AmountInWords(in.AmountReceived),
	})
}

// -----------------------------------------
// Draft (GET /billing/:student_id/draft)
// Draft pilihan seluruh keluarga siswa tsb (recovery reload layar).
// -----------------------------------------
func (h *BillingHandler) GetDraft(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id tidak valid")
	}

	_, members, err := studentService.FindFamily(c.Context(), h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	draft := h.Drafts.LoadFamily(c.Context(), memberIDs(members))
	return helper.JsonOK(c, "ok", draft)
}

// -----------------------------------------
// Draft (PUT /billing/:student_id/draft)
// Tulis draft satu siswa (dipanggil tiap toggle).
// -----------------------------------------
func (h *BillingHandler) SaveDraft(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id tidak valid")
	}

	var in dto.DraftSaveDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	for _, m := range in.SelectedMonths {
		if !helper.IsAcademicMonth(m) {
			return helper.JsonError(c, fiber.StatusBadRequest, "bulan tidak dikenal: "+m)
		}
	}
	// simpan sebagai himpunan: klik dobel di layar tidak boleh menggandakan bulan
	in.SelectedMonths = billingService.NormalizeMonths(in.SelectedMonths)

	if err := h.Drafts.SaveStudent(c.Context(), id, in.SelectedMonths, in.UncheckedItems, in.Excluded); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "draft saved", in)
}

// -----------------------------------------
// History (GET /billing/:student_id/history)
// Ledger belum ada = history kosong, bukan error.
// -----------------------------------------
func (h *BillingHandler) History(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id tidak valid")
	}

	resp, err := h.fetchHistory(c, id)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", resp)
}

func (h *BillingHandler) fetchHistory(c *fiber.Ctx, id uuid.UUID) (dto.FeeHistoryResponse, error) {
	var ledger ledgerModel.FeeLedger
	if err := h.DB.WithContext(c.Context()).
		First(&ledger, "fees_manage_student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			var st studentModel.Student
			if err := h.DB.WithContext(c.Context()).First(&st, "student_id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return dto.FeeHistoryResponse{}, fiber.NewError(fiber.StatusNotFound, "record not found")
				}
				return dto.FeeHistoryResponse{}, err
			}
			return dto.FeeHistoryResponse{
				StudentID:   st.StudentID,
				StudentName: st.StudentName,
				ClassName:   st.StudentClassName,
				History:     []billingService.HistoryEntry{},
			}, nil
		}
		return dto.FeeHistoryResponse{}, err
	}

	var history []billingService.HistoryEntry
	if len(ledger.FeesManageHistory) > 0 {
		if err := json.Unmarshal(ledger.FeesManageHistory, &history); err != nil {
			log.Printf("[ERROR] history siswa %s korup: %v", id, err)
			history = []billingService.HistoryEntry{}
		}
	}
	if history == nil {
		history = []billingService.HistoryEntry{}
	}

	return dto.FeeHistoryResponse{
		StudentID:   ledger.FeesManageStudentID,
		StudentName: ledger.FeesManageStudentName,
		ClassName:   ledger.FeesManageClassName,
		History:     history,
	}, nil
}

// ===== small utils =====

func memberIDs(members []studentModel.Student) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(members))
	for _, st := range members {
		out = append(out, st.StudentID)
	}
	return out
}

func distinctClassNames(members []studentModel.Student) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(members))
	for _, st := range members {
		if _, ok := seen[st.StudentClassName]; ok {
			continue
		}
		seen[st.StudentClassName] = struct{}{}
		out = append(out, st.StudentClassName)
	}
	return out
}

func hasCheckedLine(bill billingService.FamilyBill) bool {
	for _, bd := range bill.StudentWiseBreakdown {
		for _, it := range bd.Items {
			if it.IsChecked {
				return true
			}
		}
	}
	return len(bill.ExtraCharges) > 0
}

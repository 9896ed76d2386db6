// file: internals/features/finance/billing/dto/billing_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	billingService "sekolahku_backend/internals/features/finance/billing/service"
)

////////////////////////////////////////////////////////////////////////////////
// DRAFT — DTO
////////////////////////////////////////////////////////////////////////////////

// BillingDraftDTO: draft pilihan satu keluarga, keyed per student id.
type BillingDraftDTO struct {
	SelectedMonths   map[string][]string `json:"selected_months"`
	UncheckedItems   map[string][]string `json:"unchecked_items"`
	ExcludedStudents map[string]bool     `json:"excluded_students"`
}

func (d BillingDraftDTO) ToSelectionDraft() billingService.SelectionDraft {
	out := billingService.NewSelectionDraft()
	for k, v := range d.SelectedMonths {
		out.SelectedMonths[k] = v
	}
	for k, v := range d.UncheckedItems {
		out.UncheckedItems[k] = v
	}
	for k, v := range d.ExcludedStudents {
		if v {
			out.ExcludedStudents[k] = true
		}
	}
	return out
}

// DraftSaveDTO: draft satu siswa (ditulis tiap toggle di layar).
type DraftSaveDTO struct {
	SelectedMonths []string `json:"selected_months"`
	UncheckedItems []string `json:"unchecked_items"`
	Excluded       bool     `json:"excluded"`
}

////////////////////////////////////////////////////////////////////////////////
// PREVIEW / PAY — DTO
////////////////////////////////////////////////////////////////////////////////

type PreviewRequestDTO struct {
	PrimaryStudentID uuid.UUID `json:"primary_student_id" validate:"required"`

	// nil = pakai draft tersimpan di cache
	Draft *BillingDraftDTO `json:"draft,omitempty"`

	ExtraCharges   []billingService.ExtraCharge `json:"extra_charges"`
	Discount       float64                      `json:"discount"`
	AmountReceived float64                      `json:"amount_received"`
}

type PayRequestDTO struct {
	PrimaryStudentID uuid.UUID `json:"primary_student_id" validate:"required"`

	Draft *BillingDraftDTO `json:"draft,omitempty"`

	ExtraCharges   []billingService.ExtraCharge `json:"extra_charges"`
	Discount       float64                      `json:"discount"`
	AmountReceived float64                      `json:"amount_received" validate:"gte=0"`
	PaymentMode    string                       `json:"payment_mode"` // default "Cash"
}

////////////////////////////////////////////////////////////////////////////////
// RECEIPT — projection untuk layar/cetak
////////////////////////////////////////////////////////////////////////////////

type ReceiptResponse struct {
	ReceiptNo        string                         `json:"receipt_no"`
	Session          string                         `json:"session"`
	PrimaryStudentID uuid.UUID                      `json:"primary_student_id"`
	PaidAt           time.Time                      `json:"paid_at"`
	PaymentMode      string                         `json:"payment_mode"`
	Bill             billingService.FamilyBill      `json:"bill"`
	Committed        []billingService.StudentCommit `json:"committed"`
	AmountReceived   float64                        `json:"amount_received"`
	AmountInWords    string                         `json:"amount_in_words"`
}

////////////////////////////////////////////////////////////////////////////////
// HISTORY — DTO
////////////////////////////////////////////////////////////////////////////////

type FeeHistoryResponse struct {
	StudentID   uuid.UUID                     `json:"student_id"`
	StudentName string                        `json:"student_name"`
	ClassName   string                        `json:"class_name"`
	History     []billingService.HistoryEntry `json:"history"`
}

// file: internals/features/finance/billing/controller/export_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	helper "sekolahku_backend/internals/helpers"
)

// -----------------------------------------
// Export (GET /billing/:student_id/history/export)
// Unduh riwayat pembayaran siswa sebagai XLSX (laporan kasir).
// -----------------------------------------
func (h *BillingHandler) ExportHistory(c *fiber.Ctx) error {
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

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Riwayat"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"No. Kwitansi", "Session", "Bulan", "Item", "Total Item", "Diterima", "Diskon", "Saldo Lama", "Saldo Baru", "Metode", "Tanggal"}
	for i, hname := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hname)
	}

	for row, entry := range resp.History {
		itemNames := make([]string, 0, len(entry.Items))
		var itemsTotal float64
		for _, it := range entry.Items {
			itemNames = append(itemNames, fmt.Sprintf("%s x%d", it.Name, it.Count))
			itemsTotal += it.Total
		}

		values := []any{
			entry.ReceiptNo,
			entry.Session,
			strings.Join(entry.Months, ", "),
			strings.Join(itemNames, ", "),
			itemsTotal,
			entry.AmountReceived,
			entry.Discount,
			entry.OldBalance,
			entry.NewBalance,
			entry.PaymentMode,
			entry.PaidAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	filename := fmt.Sprintf("riwayat_%s.xlsx", resp.StudentID)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

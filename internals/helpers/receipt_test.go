// file: internals/helpers/receipt_test.go
package helper

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestNewReceiptNoFormat(t *testing.T) {
	now := time.Date(2026, 4, 10, 9, 30, 15, 0, time.UTC)

	re := regexp.MustCompile(`^RCP260410093015-\d{4}$`)
	got := NewReceiptNo(now)
	if !re.MatchString(got) {
		t.Errorf("NewReceiptNo = %q, format tidak sesuai", got)
	}
}

func TestNewReceiptNoUniqueWithinSecond(t *testing.T) {
	now := time.Now()
	a := NewReceiptNo(now)
	b := NewReceiptNo(now)
	if a == b {
		t.Errorf("dua kwitansi di detik sama identik: %q", a)
	}
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "zero rupiah"},
		{1500, "one thousand five hundred rupiah"},
		{1500.4, "one thousand five hundred rupiah"}, // dibulatkan
	}
	for _, tt := range tests {
		got := AmountInWords(tt.amount)
		if got != tt.want {
			t.Errorf("AmountInWords(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestAmountInWordsNegative(t *testing.T) {
	got := AmountInWords(-75)
	if !strings.HasPrefix(got, "minus ") || !strings.HasSuffix(got, " rupiah") {
		t.Errorf("AmountInWords(-75) = %q", got)
	}
}

// file: internals/helpers/receipt.go
package helper

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/divan/num2words"
)

var receiptSeq uint32

// NewReceiptNo menghasilkan nomor kwitansi unik per proses: turunan waktu
// + counter, mis. RCP250831143015-0007.
func NewReceiptNo(now time.Time) string {
	seq := atomic.AddUint32(&receiptSeq, 1) % 10000
	return fmt.Sprintf("RCP%s-%04d", now.Format("060102150405"), seq)
}

// AmountInWords menuliskan nominal dalam kata untuk dicetak di kwitansi.
// Dibulatkan ke rupiah terdekat; nilai negatif diberi awalan "minus".
func AmountInWords(amount float64) string {
	n := int(math.Round(math.Abs(amount)))
	words := strings.TrimSpace(num2words.Convert(n))
	if amount < 0 {
		words = "minus " + words
	}
	return words + " rupiah"
}

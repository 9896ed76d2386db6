// file: internals/helpers/months.go
package helper

import "sort"

// AcademicMonths: urutan kalender tahun ajaran (April ... Maret).
// Semua daftar bulan pada tagihan & kwitansi memakai urutan ini.
var AcademicMonths = []string{
	"April", "May", "June", "July", "August", "September",
	"October", "November", "December", "January", "February", "March",
}

var academicMonthIndex = func() map[string]int {
	m := make(map[string]int, len(AcademicMonths))
	for i, name := range AcademicMonths {
		m[name] = i
	}
	return m
}()

// MonthIndex mengembalikan posisi bulan dalam tahun ajaran.
// Bulan yang tidak dikenal ditempatkan paling akhir.
func MonthIndex(month string) int {
	if i, ok := academicMonthIndex[month]; ok {
		return i
	}
	return len(AcademicMonths)
}

func IsAcademicMonth(month string) bool {
	_, ok := academicMonthIndex[month]
	return ok
}

// SortAcademicMonths menyalin & mengurutkan daftar bulan sesuai tahun ajaran.
func SortAcademicMonths(months []string) []string {
	out := append([]string(nil), months...)
	sort.SliceStable(out, func(i, j int) bool {
		return MonthIndex(out[i]) < MonthIndex(out[j])
	})
	return out
}

// file: internals/helpers/months_test.go
package helper

import (
	"reflect"
	"testing"
)

func TestSortAcademicMonths(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "kalender biasa vs tahun ajaran",
			in:   []string{"January", "April", "December"},
			want: []string{"April", "December", "January"},
		},
		{
			name: "sudah urut",
			in:   []string{"April", "May"},
			want: []string{"April", "May"},
		},
		{
			name: "bulan asing ke belakang",
			in:   []string{"Foo", "April"},
			want: []string{"April", "Foo"},
		},
		{
			name: "kosong",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortAcademicMonths(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortAcademicMonths(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSortAcademicMonthsDoesNotMutateInput(t *testing.T) {
	in := []string{"March", "April"}
	SortAcademicMonths(in)
	if in[0] != "March" {
		t.Errorf("input termutasi: %v", in)
	}
}

func TestMonthIndex(t *testing.T) {
	if got := MonthIndex("April"); got != 0 {
		t.Errorf("MonthIndex(April) = %d, want 0", got)
	}
	if got := MonthIndex("March"); got != 11 {
		t.Errorf("MonthIndex(March) = %d, want 11", got)
	}
	if got := MonthIndex("Smarch"); got != len(AcademicMonths) {
		t.Errorf("MonthIndex(Smarch) = %d, want %d", got, len(AcademicMonths))
	}
}

func TestIsAcademicMonth(t *testing.T) {
	for _, m := range AcademicMonths {
		if !IsAcademicMonth(m) {
			t.Errorf("IsAcademicMonth(%s) = false", m)
		}
	}
	if IsAcademicMonth("april") { // case sensitive
		t.Error("IsAcademicMonth(april) = true")
	}
}

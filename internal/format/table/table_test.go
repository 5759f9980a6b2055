package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Dune", "$12.00"},
		{"Neuromancer", "$9.00"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"Dune         $12.00",
		"Neuromancer   $9.00",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n%q\n%q", got, want)
	}
}

func TestFormatMeasuresStyledCellsByWidth(t *testing.T) {
	styled := "\x1b[1mab\x1b[0m"
	got := Format([][]string{{styled, "x"}, {"abcd", "y"}}, nil)
	if got[0] != styled+"    x" {
		t.Fatalf("expected ANSI codes to be ignored when padding, got %q", got[0])
	}
}

func TestPairsSkipsEmptyValues(t *testing.T) {
	got := Pairs([][2]string{{"Author", "Frank Herbert"}, {"Category", ""}, {"Price", "$12.00"}})
	want := []string{"Author  Frank Herbert", "Price   $12.00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected pairs %q", got)
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}

package frame

import (
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "name,protein,calories\nBran,4,70\nHoney-comb,1,110\n"
	f, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", f.Len())
	}
	cols := f.Columns()
	if cols[0] != "name" || cols[1] != "protein" || cols[2] != "calories" {
		t.Errorf("unexpected columns: %v", cols)
	}

	if f.Row(0)["name"] != "Bran" {
		t.Errorf("expected string cell, got %v", f.Row(0)["name"])
	}
	if f.Row(0)["protein"] != 4.0 {
		t.Errorf("expected numeric cell parsed as float64, got %v (%T)", f.Row(0)["protein"], f.Row(0)["protein"])
	}
}

func TestReadCSVPreservesRowOrder(t *testing.T) {
	input := "name,protein\nfirst,1\nsecond,2\nthird,3\n"
	f, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if f.Row(i)["name"] != w {
			t.Errorf("row %d: got %v, want %q", i, f.Row(i)["name"], w)
		}
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	f, err := ReadCSV(strings.NewReader("name,protein,calories\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Len() != 0 {
		t.Errorf("expected empty frame, got %d rows", f.Len())
	}
	if !f.HasColumn("protein") {
		t.Error("expected header columns present")
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestReadCSVRaggedRecord(t *testing.T) {
	input := "name,protein\nBran,4\nshort\n"
	if _, err := ReadCSV(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for ragged record")
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"4", 4.0},
		{"4.5", 4.5},
		{" 70 ", 70.0},
		{"Bran", "Bran"},
		{"", ""},
		{"100% Bran", "100% Bran"},
	}
	for _, tc := range tests {
		if got := parseCell(tc.in); got != tc.want {
			t.Errorf("parseCell(%q) = %v (%T), want %v", tc.in, got, got, tc.want)
		}
	}
}

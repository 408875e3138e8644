package cereal

import (
	"strings"
	"testing"

	"github.com/kbukum/cerealpipe/errors"
	"github.com/kbukum/cerealpipe/frame"
)

func namedFrame() *frame.Frame {
	return frame.New(
		[]string{"name", "protein", "calories"},
		[]frame.Row{
			{"name": "Bran", "protein": 4.0, "calories": 70.0},
			{"name": "Honey-comb", "protein": 1.0, "calories": 110.0},
		},
	)
}

func TestPreprocessLowercasesHeaders(t *testing.T) {
	f := frame.New(
		[]string{"NAME", "Protein", "CALORIES"},
		[]frame.Row{{"NAME": "Bran", "Protein": 4.0, "CALORIES": 70.0}},
	)
	got, err := Preprocess(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"name", "protein", "calories"}
	for i, c := range got.Columns() {
		if c != want[i] {
			t.Errorf("column %d: got %q, want %q", i, c, want[i])
		}
	}
}

func TestPreprocessRenamesBrand(t *testing.T) {
	f := frame.New(
		[]string{"brand", "protein", "calories"},
		[]frame.Row{{"brand": "Bran", "protein": 4.0, "calories": 70.0}},
	)
	got, err := Preprocess(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.HasColumn("name") {
		t.Fatal("expected name column after rename")
	}
	if got.HasColumn("brand") {
		t.Error("expected brand column gone after rename")
	}
	if got.Columns()[0] != "name" {
		t.Errorf("expected renamed column in position 0, got %v", got.Columns())
	}
}

func TestPreprocessNameWinsOverBrand(t *testing.T) {
	f := frame.New(
		[]string{"name", "brand", "protein", "calories"},
		[]frame.Row{{"name": "Bran", "brand": "Kellogg's", "protein": 4.0, "calories": 70.0}},
	)
	got, err := Preprocess(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Presence check short-circuits: brand stays untouched.
	if !got.HasColumn("brand") {
		t.Error("expected brand column untouched when name exists")
	}
	v, err := got.Row(0).String("name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "Bran" {
		t.Errorf("expected name value preserved, got %q", v)
	}
}

func TestPreprocessMissingIdentifier(t *testing.T) {
	f := frame.New(
		[]string{"protein", "calories"},
		[]frame.Row{{"protein": 4.0, "calories": 70.0}},
	)
	_, err := Preprocess(f)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsSchema(err) {
		t.Errorf("expected schema error, got %v", err)
	}
	if !strings.Contains(err.Error(), "identifier column") {
		t.Errorf("expected identifier column message, got %q", err.Error())
	}
}

func TestPreprocessIdempotent(t *testing.T) {
	first, err := Preprocess(namedFrame())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snapshot := first.Clone()

	second, err := Preprocess(first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Equal(snapshot) {
		t.Error("expected preprocessing an already-normalized frame to be a no-op")
	}
}

func TestPreprocessBrandEquivalence(t *testing.T) {
	branded := frame.New(
		[]string{"brand", "protein", "calories"},
		[]frame.Row{
			{"brand": "Bran", "protein": 4.0, "calories": 70.0},
			{"brand": "Honey-comb", "protein": 1.0, "calories": 110.0},
		},
	)

	fromBrand, err := Preprocess(branded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromName, err := Preprocess(namedFrame())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fromBrand.Equal(fromName) {
		t.Error("expected brand-keyed frame to normalize to the name-keyed frame")
	}
}

package proptab

import (
	"errors"
	"net/netip"
	"strings"
	"testing"
)

// A malformed range skips its line with a diagnostic; the lines around it
// still parse.
func TestParseBadRangeSkipsLine(t *testing.T) {
	tbl, _, _, _, _ := inventoryTable(t)
	src := "10.1.1.0/24,asf,cmi,prod,\"a\"\nbogus,asf,cmi,prod,\"b\"\n192.168.0.0/24,asf,cmi,-,\"c\"\n"
	if err := tbl.Parse(src); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
	diags := tbl.Diags()
	if len(diags) != 1 {
		t.Fatalf("Diags = %v, want exactly one", diags)
	}
	d := diags[0]
	if d.Line != 2 || d.Column != -1 || d.Token != "bogus" || !errors.Is(d.Err, ErrBadRange) {
		t.Errorf("diag = %+v, want line 2 range error for %q", d, "bogus")
	}
}

// A field that fails its column's grammar keeps its zero bytes; the rest
// of the line still parses and the row is still marked.
func TestParseBadFieldContinuesLine(t *testing.T) {
	tbl, _, _, _, desc := inventoryTable(t)
	src := "10.1.1.0/24,asf,cmi,prod;bogus,\"still here\"\n"
	if err := tbl.Parse(src); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (bad field must not drop the row)", tbl.Len())
	}

	diags := tbl.Diags()
	if len(diags) != 1 {
		t.Fatalf("Diags = %v, want exactly one", diags)
	}
	if diags[0].Field != "flags" || !errors.Is(diags[0].Err, ErrUnknownTag) {
		t.Errorf("diag = %+v, want unknown flag name on column flags", diags[0])
	}

	row, _ := tbl.Find(netip.MustParseAddr("10.1.1.1"))
	// Column 4 parsed even though column 3 failed.
	if got := desc.Value(row); got != "still here" {
		t.Errorf("Description = %q, want %q", got, "still here")
	}
}

// Missing trailing fields fail their columns with ErrMissingField and
// leave zero bytes behind.
func TestParseMissingTrailingFields(t *testing.T) {
	tbl, owner, colo, flags, desc := inventoryTable(t)
	src := "10.1.1.0/24,asf\n"
	if err := tbl.Parse(src); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	diags := tbl.Diags()
	if len(diags) != 3 {
		t.Fatalf("Diags = %v, want three missing-field diagnostics", diags)
	}
	for i, d := range diags {
		if !errors.Is(d.Err, ErrMissingField) {
			t.Errorf("diag %d = %v, want ErrMissingField", i, d.Err)
		}
	}
	if diags[0].Field != "colo" || diags[1].Field != "flags" || diags[2].Field != "Description" {
		t.Errorf("diag fields = %q %q %q", diags[0].Field, diags[1].Field, diags[2].Field)
	}

	row, ok := tbl.Find(netip.MustParseAddr("10.1.1.1"))
	if !ok {
		t.Fatal("row should still have been marked")
	}
	if got := owner.Value(row); got != "asf" {
		t.Errorf("owner = %q, want asf", got)
	}
	if colo.ID(row) != 0 || flags.IsSet(0, row) || desc.Value(row) != "" {
		t.Error("missing fields should read as zero values")
	}
}

// An empty trailing field is not a missing field: it reaches the column,
// which decides (a Tag rejects it, a Text accepts it).
func TestParseEmptyTrailingField(t *testing.T) {
	tbl, _, _, _, desc := inventoryTable(t)
	src := "10.1.1.0/24,asf,cmi,-,\n"
	if err := tbl.Parse(src); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tbl.Diags()) != 0 {
		t.Fatalf("Diags = %v, want none", tbl.Diags())
	}
	row, _ := tbl.Find(netip.MustParseAddr("10.1.1.1"))
	if got := desc.Value(row); got != "" {
		t.Errorf("Description = %q, want empty", got)
	}
}

func TestParseGarbageInput(t *testing.T) {
	tbl, _, _, _, _ := inventoryTable(t)
	src := "!!!\n\x00\x01\x02\n,,,,,\n"
	if err := tbl.Parse(src); err != nil {
		t.Fatalf("Parse should not fail on garbage data: %v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tbl.Len())
	}
	if len(tbl.Diags()) != 3 {
		t.Errorf("Diags = %v, want one per garbage line", tbl.Diags())
	}
}

func TestDiagJSON(t *testing.T) {
	tbl, _, _, _, _ := inventoryTable(t)
	if err := tbl.Parse("bogus,asf,cmi,prod,\"x\"\n"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := tbl.DiagJSON()
	if err != nil {
		t.Fatalf("DiagJSON: %v", err)
	}
	s := string(out)
	for _, want := range []string{`"line":1`, `"column":-1`, `"token":"bogus"`, `"error":`} {
		if !strings.Contains(s, want) {
			t.Errorf("DiagJSON = %s, missing %s", s, want)
		}
	}
}

func TestDiagJSONEmpty(t *testing.T) {
	tbl, _, _, _, _ := inventoryTable(t)
	out, err := tbl.DiagJSON()
	if err != nil {
		t.Fatalf("DiagJSON: %v", err)
	}
	if string(out) != "[]" {
		t.Errorf("DiagJSON = %s, want []", out)
	}
}

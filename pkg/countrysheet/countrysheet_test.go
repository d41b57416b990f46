package countrysheet

import (
	"bytes"
	"testing"

	"github.com/hammerhouse/dialcode/pkg/callingcode"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	all := callingcode.All()

	var b bytes.Buffer
	if err := Write(&b, all); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&b)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	if sl := f.GetSheetList(); len(sl) != 1 || sl[0] != Sheet {
		t.Fatalf("expected only the %q sheet, got %v", Sheet, sl)
	}

	rows, err := f.GetRows(Sheet)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != len(all)+1 {
		t.Fatalf("expected %d rows, got %d", len(all)+1, len(rows))
	}
	if rows[0][0] != "Code" || rows[0][4] != "Calling Code" {
		t.Errorf("unexpected header %v", rows[0])
	}
	for i, c := range all {
		row := rows[i+1]
		if row[0] != c.Code || row[1] != c.Name || row[2] != c.Flag || row[3] != c.Region || row[4] != "+"+c.CallingCode {
			t.Errorf("row %d: unexpected values %v for %s", i+1, row, c.Code)
		}
	}
}

func TestWriteEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := excelize.OpenReader(&b)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if rows, err := f.GetRows(Sheet); err != nil || len(rows) != 1 {
		t.Fatalf("expected only the header, got %d rows (%v)", len(rows), err)
	}
}

package page

import (
	"strings"
	"testing"

	page2 "github.com/pagecraft/pages-go/lib/models/page"
	table2 "github.com/pagecraft/pages-go/lib/models/table"
)

func TestGetTxtFromPage(t *testing.T) {
	tbl := table2.NewTable(2, 2)
	tbl.Rows[0].Cells[0].Value = "10"
	tbl.Rows[0].Cells[1].Value = "20"
	tbl.Rows[1].Cells[0].Value = "30"
	tbl.Rows[1].Cells[1].Value = "40"

	p := &page2.Page{
		Id:    "test",
		Title: "Quarterly numbers",
		Blocks: []page2.Block{
			{Type: page2.BlockParagraph, Text: "Some context."},
			{Type: page2.BlockTable, Table: tbl},
		},
	}

	got := GetTxtFromPage(p)

	want := "Quarterly numbers\n\nSome context.\n\n10\t20\n30\t40\n\n"
	if got != want {
		t.Errorf("GetTxtFromPage mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestGetTxtFromPageUsesDisplayValues(t *testing.T) {
	tbl := table2.NewTable(1, 3)
	tbl.Rows[0].Cells[0].Value = "10"
	tbl.Rows[0].Cells[1].Value = "20"
	tbl.Rows[0].Cells[2].Value = "30"
	tbl.Rows[0].Cells[2].Formula = "=A1+B1"

	p := &page2.Page{
		Id:     "test",
		Title:  "Totals",
		Blocks: []page2.Block{{Type: page2.BlockTable, Table: tbl}},
	}

	got := GetTxtFromPage(p)
	if !strings.Contains(got, "10\t20\t30") {
		t.Errorf("expected computed display values in export, got %q", got)
	}
	if strings.Contains(got, "=A1+B1") {
		t.Errorf("formula text leaked into export: %q", got)
	}
}

func TestGetTxtFromPageSkipsNilTable(t *testing.T) {
	p := &page2.Page{
		Id:     "test",
		Title:  "Sparse",
		Blocks: []page2.Block{{Type: page2.BlockTable}},
	}

	got := GetTxtFromPage(p)
	if !strings.HasPrefix(got, "Sparse\n\n") {
		t.Errorf("got %q", got)
	}
}

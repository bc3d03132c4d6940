package records

import (
	"testing"

	"github.com/tsawler/relnotes/confluence"
	"github.com/tsawler/relnotes/model"
)

func cells(texts ...string) []confluence.TableCell {
	row := make([]confluence.TableCell, 0, len(texts))
	for _, s := range texts {
		row = append(row, confluence.TableCell{Text: s})
	}
	return row
}

func TestMapSection_SevenColumnRow(t *testing.T) {
	sec := confluence.Section{
		Date:  "2024-02-10",
		Title: "Bug Fix | Module X",
		Table: &confluence.ParsedTable{Rows: [][]confluence.TableCell{
			cells("Bug Fix", "ServiceA", "JIRA-1", "terraform-aws-vpc", "Fixed a leak", "", ""),
		}},
	}

	recs, stats := NewMapper().MapSection(sec)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}

	rec := recs[0]
	if rec.Title != "Bug Fix" {
		t.Errorf("Title = %q, want 'Bug Fix'", rec.Title)
	}
	if rec.Body != "Fixed a leak" {
		t.Errorf("Body = %q, want 'Fixed a leak'", rec.Body)
	}
	if rec.ModuleName != "terraform-aws-vpc" {
		t.Errorf("ModuleName = %q, want 'terraform-aws-vpc'", rec.ModuleName)
	}
	if rec.Category != model.CategoryBugFix {
		t.Errorf("Category = %q, want %q", rec.Category, model.CategoryBugFix)
	}
	if rec.NewRelease {
		t.Error("NewRelease = true, want false")
	}
	// The empty date cell falls back to the heading date.
	if rec.Date != "2024-02-10" {
		t.Errorf("Date = %q, want '2024-02-10'", rec.Date)
	}
	if stats.DateFallbacks != 1 {
		t.Errorf("DateFallbacks = %d, want 1", stats.DateFallbacks)
	}
}

func TestMapSection_RowDateBeatsHeadingDate(t *testing.T) {
	sec := confluence.Section{
		Date:  "2024-01-01",
		Title: "Updated | X",
		Table: &confluence.ParsedTable{Rows: [][]confluence.TableCell{
			cells("Updated", "Svc", "JIRA-2", "terraform-gcp-dns", "Tuned TTLs", "", "2024-03-15T10:30:00"),
		}},
	}

	recs, stats := NewMapper().MapSection(sec)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	// Trailing time component is stripped before validation.
	if recs[0].Date != "2024-03-15" {
		t.Errorf("Date = %q, want '2024-03-15'", recs[0].Date)
	}
	if stats.DateFallbacks != 0 {
		t.Errorf("DateFallbacks = %d, want 0", stats.DateFallbacks)
	}
}

func TestMapSection_ShortRowSkipped(t *testing.T) {
	// A 4-cell row is structurally incompatible with the expected schema
	// and is silently dropped; valid rows in the same table still map.
	sec := confluence.Section{
		Date:  "2024-02-10",
		Title: "Bug Fix | Module X",
		Table: &confluence.ParsedTable{Rows: [][]confluence.TableCell{
			cells("Partial", "row", "too", "short"),
			cells("Bug Fix", "Svc", "JIRA-3", "terraform-aws-s3", "Fixed policy", "", "2024-02-11"),
		}},
	}

	recs, stats := NewMapper().MapSection(sec)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	if recs[0].Title != "Bug Fix" {
		t.Errorf("Title = %q, want 'Bug Fix'", recs[0].Title)
	}
	if stats.SkippedRows != 1 {
		t.Errorf("SkippedRows = %d, want 1", stats.SkippedRows)
	}
}

func TestMapSection_HeaderAndMetadataRows(t *testing.T) {
	sec := confluence.Section{
		Date:  "2024-02-10",
		Title: "Bug Fix | Module X",
		Table: &confluence.ParsedTable{Rows: [][]confluence.TableCell{
			cells("Type of Release Change", "Service Impacted", "Jira Ticket ID", "Module", "Notes", "Deps", "Version"),
			cells("Release Change", "x", "y", "z", "a", "b", "c"),
			cells("legend", "Jira Ticket reference", "y", "z", "a", "b", "c"),
			cells("Bug Fix", "Svc", "JIRA-4", "terraform-aws-vpc", "Fixed a leak", "", "2024-02-10"),
		}},
	}

	recs, stats := NewMapper().MapSection(sec)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1 (header/metadata rows must be dropped)", len(recs))
	}
	if recs[0].Title != "Bug Fix" {
		t.Errorf("Title = %q, want 'Bug Fix'", recs[0].Title)
	}
	if stats.HeaderRows != 3 {
		t.Errorf("HeaderRows = %d, want 3", stats.HeaderRows)
	}
}

func TestMapSection_NewReleaseOverride(t *testing.T) {
	sec := confluence.Section{
		Date:  "2024-05-01",
		Title: "Updated | Module Y",
		Table: &confluence.ParsedTable{Rows: [][]confluence.TableCell{
			cells("New Module Release", "Svc", "JIRA-5", "terraform-azure-aks", "Initial release", "", "2024-05-02"),
			cells("Updated", "Svc", "JIRA-6", "terraform-azure-aks", "This is a NEW MODULE RELEASE of the runtime", "", "2024-05-03"),
		}},
	}

	recs, _ := NewMapper().MapSection(sec)
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	for i, rec := range recs {
		if !rec.NewRelease {
			t.Errorf("record %d: NewRelease = false, want true", i)
		}
		if rec.Category != model.CategoryNewRelease {
			t.Errorf("record %d: Category = %q, want %q", i, rec.Category, model.CategoryNewRelease)
		}
	}
}

func TestMapSection_EmptyTitleAndBodyRowDropped(t *testing.T) {
	sec := confluence.Section{
		Date:  "2024-02-10",
		Title: "", // no heading title: no placeholder either
		Table: &confluence.ParsedTable{Rows: [][]confluence.TableCell{
			cells("", "Svc", "JIRA-7", "terraform-aws-vpc", "", "", "2024-02-10"),
		}},
	}

	recs, _ := NewMapper().MapSection(sec)
	if len(recs) != 0 {
		t.Errorf("records = %d, want 0", len(recs))
	}
}

func TestMapSection_PlaceholderNoTable(t *testing.T) {
	sec := confluence.Section{
		Date:  "2023-11-01",
		Title: "New Release | Module Y",
	}

	recs, stats := NewMapper().MapSection(sec)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1 placeholder", len(recs))
	}

	rec := recs[0]
	if rec.Title != "New Release | Module Y" {
		t.Errorf("Title = %q, want the heading title", rec.Title)
	}
	if rec.Body != BodyNoTable {
		t.Errorf("Body = %q, want %q", rec.Body, BodyNoTable)
	}
	if rec.Category != model.CategoryNewFeature {
		t.Errorf("Category = %q, want %q", rec.Category, model.CategoryNewFeature)
	}
	if rec.NewRelease {
		t.Error("NewRelease = true, want false for a placeholder")
	}
	if rec.Date != "2023-11-01" {
		t.Errorf("Date = %q, want '2023-11-01'", rec.Date)
	}
	if stats.Placeholders != 1 {
		t.Errorf("Placeholders = %d, want 1", stats.Placeholders)
	}
}

func TestMapSection_PlaceholderEmptyTable(t *testing.T) {
	sec := confluence.Section{
		Date:  "2024-02-10",
		Title: "Bug Fix | Module X",
		Table: &confluence.ParsedTable{Rows: [][]confluence.TableCell{
			cells("too", "short"),
		}},
	}

	recs, _ := NewMapper().MapSection(sec)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1 placeholder", len(recs))
	}
	if recs[0].Body != BodyEmptyTable {
		t.Errorf("Body = %q, want %q", recs[0].Body, BodyEmptyTable)
	}
	if recs[0].Category != model.CategoryBugFix {
		t.Errorf("Category = %q, want %q", recs[0].Category, model.CategoryBugFix)
	}
}

func TestMapSection_PlaceholderNewReleaseFromHeading(t *testing.T) {
	sec := confluence.Section{
		Date:  "2024-02-10",
		Title: "New Module Release | Module Z",
	}

	recs, _ := NewMapper().MapSection(sec)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	if !recs[0].NewRelease {
		t.Error("NewRelease = false, want true when the heading carries the trigger phrase")
	}
	if recs[0].Category != model.CategoryNewRelease {
		t.Errorf("Category = %q, want %q", recs[0].Category, model.CategoryNewRelease)
	}
}

func TestMapSection_NoTitleNoTable(t *testing.T) {
	recs, _ := NewMapper().MapSection(confluence.Section{Date: "2024-01-01"})
	if len(recs) != 0 {
		t.Errorf("records = %d, want 0 for a titleless section without a table", len(recs))
	}
}

func TestExtractModuleName(t *testing.T) {
	m := NewMapper()

	tests := []struct {
		in   string
		want string
	}{
		{"terraform-aws-vpc", "terraform-aws-vpc"},
		{"see terraform-aws-vpc for details", "terraform-aws-vpc"},
		{"terraform-gcp_sql-v2 and terraform-aws-s3", "terraform-gcp_sql-v2"},
		{"no module here", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := m.ExtractModuleName(tt.in); got != tt.want {
			t.Errorf("ExtractModuleName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectSchema(t *testing.T) {
	if got := DetectSchema(cells("a", "b", "c", "d", "e", "f", "g")); got != SchemaSevenColumn {
		t.Errorf("DetectSchema(7 cells) = %v, want SevenColumn", got)
	}
	if got := DetectSchema(cells("a", "b", "c", "d", "e", "f", "g", "h")); got != SchemaSevenColumn {
		t.Errorf("DetectSchema(8 cells) = %v, want SevenColumn", got)
	}
	if got := DetectSchema(cells("a", "b", "c", "d")); got != SchemaUnknown {
		t.Errorf("DetectSchema(4 cells) = %v, want Unknown", got)
	}
}

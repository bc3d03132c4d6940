package records

import (
	"reflect"
	"testing"
	"time"

	"github.com/tsawler/relnotes/model"
)

func TestNormalize_Defaults(t *testing.T) {
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	recs := Normalize([]model.ReleaseRecord{{}}, now)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}

	rec := recs[0]
	if rec.Title != "Untitled" {
		t.Errorf("Title = %q, want 'Untitled'", rec.Title)
	}
	if rec.Body != "No description provided" {
		t.Errorf("Body = %q, want 'No description provided'", rec.Body)
	}
	if rec.Category != model.CategoryOther {
		t.Errorf("Category = %q, want %q", rec.Category, model.CategoryOther)
	}
	if rec.Date != "2024-07-15" {
		t.Errorf("Date = %q, want '2024-07-15'", rec.Date)
	}
}

func TestNormalize_PreservesPresentFields(t *testing.T) {
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	in := model.ReleaseRecord{
		Title:    "Bug Fix",
		Body:     "Fixed a leak",
		Category: model.CategoryBugFix,
		Date:     "2024-02-10",
	}

	recs := Normalize([]model.ReleaseRecord{in}, now)
	if recs[0] != in {
		t.Errorf("Normalize changed a complete record: got %+v, want %+v", recs[0], in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	recs := []model.ReleaseRecord{
		{},
		{Title: "Bug Fix", Date: "2024-02-10"},
		{Body: "details", Category: model.CategoryEnhancement},
	}

	once := Normalize(append([]model.ReleaseRecord(nil), recs...), now)
	twice := Normalize(append([]model.ReleaseRecord(nil), once...), now)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize is not idempotent:\nonce  = %+v\ntwice = %+v", once, twice)
	}
}

func TestFromMaps_AlternateFieldNames(t *testing.T) {
	items := []map[string]interface{}{
		{"Report": "From Report", "Details": "From Details", "Type": "Bug Fix"},
		{"Name": "From Name", "Description": "From Description"},
		{"Title": "Canonical", "Report": "Ignored", "Body": "Canonical body"},
	}

	recs := FromMaps(items)
	if len(recs) != 3 {
		t.Fatalf("records = %d, want 3", len(recs))
	}

	if recs[0].Title != "From Report" || recs[0].Body != "From Details" {
		t.Errorf("record 0 = %+v, want Report/Details alternates resolved", recs[0])
	}
	if recs[0].Category != model.CategoryBugFix {
		t.Errorf("record 0 Category = %q, want %q", recs[0].Category, model.CategoryBugFix)
	}
	if recs[1].Title != "From Name" || recs[1].Body != "From Description" {
		t.Errorf("record 1 = %+v, want Name/Description alternates resolved", recs[1])
	}
	// The canonical name always wins over alternates.
	if recs[2].Title != "Canonical" {
		t.Errorf("record 2 Title = %q, want 'Canonical'", recs[2].Title)
	}
}

func TestFromMaps_MissingCategoryDefaultsAfterNormalize(t *testing.T) {
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	items := []map[string]interface{}{
		{"Title": "A", "Body": "a", "Date": "2024-01-01"},
		{"Title": "B", "Body": "b", "Date": "2024-02-01"},
		{"Title": "C", "Body": "c", "Date": "2024-03-01", "Type": "Enhancement"},
	}

	recs := Normalize(FromMaps(items), now)

	if recs[0].Category != model.CategoryOther {
		t.Errorf("record 0 Category = %q, want %q", recs[0].Category, model.CategoryOther)
	}
	if recs[1].Category != model.CategoryOther {
		t.Errorf("record 1 Category = %q, want %q", recs[1].Category, model.CategoryOther)
	}
	if recs[2].Category != model.CategoryEnhancement {
		t.Errorf("record 2 Category = %q, want %q (inherited from Type)", recs[2].Category, model.CategoryEnhancement)
	}
}

func TestFromMaps_NonStringValues(t *testing.T) {
	items := []map[string]interface{}{
		{"Title": "Rollout", "NewRelease": true, "ModuleName": "terraform-aws-vpc", "Date": "2024-01-02"},
	}

	recs := FromMaps(items)
	if !recs[0].NewRelease {
		t.Error("NewRelease = false, want true")
	}
	if recs[0].ModuleName != "terraform-aws-vpc" {
		t.Errorf("ModuleName = %q, want 'terraform-aws-vpc'", recs[0].ModuleName)
	}
}

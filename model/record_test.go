package model

import "testing"

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("Category %q should be valid", c)
		}
	}

	invalid := []Category{"", "bugfix", "Bug fix", "Feature"}
	for _, c := range invalid {
		if c.Valid() {
			t.Errorf("Category %q should be invalid", c)
		}
	}
}

func TestCategories_Complete(t *testing.T) {
	if got := len(Categories()); got != 5 {
		t.Errorf("Categories() = %d values, want 5", got)
	}
}

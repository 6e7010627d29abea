package menu

import "testing"

func TestCatalogIntegrity(t *testing.T) {
	all := All()
	if len(all) != 14 {
		t.Fatalf("catalog has %d items, want 14", len(all))
	}
	seen := make(map[string]bool)
	for _, it := range all {
		if it.ID == "" || it.Name == "" {
			t.Errorf("item missing id or name: %+v", it)
		}
		if seen[it.ID] {
			t.Errorf("duplicate item id %s", it.ID)
		}
		seen[it.ID] = true
		if it.Price <= 0 {
			t.Errorf("%s has non-positive price %v", it.Name, it.Price)
		}
		found := false
		for _, c := range Categories {
			if it.Category == c {
				found = true
			}
		}
		if !found {
			t.Errorf("%s has unknown category %q", it.Name, it.Category)
		}
	}
}

func TestByCategory(t *testing.T) {
	total := 0
	for _, c := range Categories {
		items := ByCategory(c)
		if len(items) == 0 {
			t.Errorf("category %s is empty", c)
		}
		total += len(items)
	}
	if total != len(All()) {
		t.Errorf("categories cover %d items, want %d", total, len(All()))
	}
}

func TestByID(t *testing.T) {
	it, ok := ByID("4")
	if !ok || it.Name != "Grilled Tilapia" {
		t.Errorf("ByID(4) = %+v, %v", it, ok)
	}
	if _, ok := ByID("99"); ok {
		t.Error("ByID(99) should not be found")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "mutated"
	if All()[0].Name == "mutated" {
		t.Error("All exposes internal catalog state")
	}
}

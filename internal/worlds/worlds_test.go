package worlds

import "testing"

func TestCatalogOrdinalsMatchOrder(t *testing.T) {
	for i, w := range All {
		if w.Ordinal != i {
			t.Errorf("world %s at index %d has ordinal %d", w.ID, i, w.Ordinal)
		}
	}
}

func TestByID(t *testing.T) {
	w, err := ByID(Div)
	if err != nil {
		t.Fatalf("ByID(Div): %v", err)
	}
	if w.Title != "Division Falls" {
		t.Errorf("ByID(Div).Title = %q", w.Title)
	}

	if _, err := ByID("nonsense"); err == nil {
		t.Error("ByID(nonsense) should fail")
	}
}

func TestByOrdinal(t *testing.T) {
	first, err := ByOrdinal(0)
	if err != nil {
		t.Fatalf("ByOrdinal(0): %v", err)
	}
	if first.ID != Numbers {
		t.Errorf("first world = %s, want %s", first.ID, Numbers)
	}

	last, err := ByOrdinal(Count() - 1)
	if err != nil {
		t.Fatalf("ByOrdinal(last): %v", err)
	}
	if last.ID != Challenge {
		t.Errorf("last world = %s, want %s", last.ID, Challenge)
	}

	if _, err := ByOrdinal(Count()); err == nil {
		t.Error("ByOrdinal past the end should fail")
	}
}

func TestEveryTeachingWorldHasAGrimoirePage(t *testing.T) {
	for _, w := range All {
		page := PageForWorld(w.ID)
		if w.ID == Challenge {
			if page != "" {
				t.Errorf("challenge world should have no grimoire page, got %q", page)
			}
			continue
		}
		if page == "" {
			t.Errorf("world %s has no grimoire page", w.ID)
		}
	}
}

func TestGrimoirePageIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range GrimoirePages {
		if seen[p.ID] {
			t.Errorf("duplicate grimoire page id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestStarterItemsAreFree(t *testing.T) {
	for _, id := range []string{"hat_novice", "wand_wood", "outfit_novice"} {
		item := ItemByID(id)
		if item == nil {
			t.Fatalf("starter item %q missing from catalog", id)
		}
		if item.Cost != 0 {
			t.Errorf("starter item %q costs %d, want 0", id, item.Cost)
		}
	}
}

func TestItemByIDUnknown(t *testing.T) {
	if got := ItemByID("hat_of_invisibility"); got != nil {
		t.Errorf("ItemByID(unknown) = %+v, want nil", got)
	}
}

func TestAchievementCatalog(t *testing.T) {
	ids := []string{AchNoviceExplorer, AchMasterAdd, AchSpeedster, AchGeoDetective, AchCollector}
	for _, id := range ids {
		if AchievementByID(id) == nil {
			t.Errorf("achievement %q missing from catalog", id)
		}
	}
	if len(Achievements) != len(ids) {
		t.Errorf("achievement catalog has %d entries, want %d", len(Achievements), len(ids))
	}
}

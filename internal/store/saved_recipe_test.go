package store

import (
	"errors"
	"testing"
)

func setupSavedRecipeTest(t *testing.T) (*SavedRecipeStore, int64, int64) {
	t.Helper()
	db := testDB(t)
	us := NewUserStore(db)
	return NewSavedRecipeStore(db), testUser(t, us, "alice"), testUser(t, us, "bob")
}

func TestSavedRecipeCreate(t *testing.T) {
	rs, alice, _ := setupSavedRecipeTest(t)

	r, err := rs.Create(alice, "Tomato Basil Pasta", "Quick pasta.", "8 oz spaghetti\n2 cups diced tomatoes", "Cook.\nToss.")
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if r.Title != "Tomato Basil Pasta" {
		t.Errorf("title = %q", r.Title)
	}
	if r.Ingredients != "8 oz spaghetti\n2 cups diced tomatoes" {
		t.Errorf("ingredients = %q, ordering not preserved", r.Ingredients)
	}
	if r.UserID != alice {
		t.Errorf("user id = %d, want %d", r.UserID, alice)
	}
}

func TestSavedRecipeEmptyTitleRejected(t *testing.T) {
	rs, alice, _ := setupSavedRecipeTest(t)

	r, err := rs.Create(alice, "   ", "desc", "ing", "steps")
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if r != nil {
		t.Errorf("expected nil for empty title, got %+v", r)
	}

	saved, _ := rs.List(alice)
	if len(saved) != 0 {
		t.Errorf("expected 0 rows, got %d", len(saved))
	}
}

func TestSavedRecipeListNewestFirst(t *testing.T) {
	rs, alice, _ := setupSavedRecipeTest(t)

	rs.Create(alice, "First", "", "", "")
	rs.Create(alice, "Second", "", "", "")
	rs.Create(alice, "Third", "", "", "")

	saved, err := rs.List(alice)
	if err != nil {
		t.Fatalf("list recipes: %v", err)
	}
	want := []string{"Third", "Second", "First"}
	if len(saved) != len(want) {
		t.Fatalf("got %d recipes, want %d", len(saved), len(want))
	}
	for i, title := range want {
		if saved[i].Title != title {
			t.Errorf("saved[%d].Title = %q, want %q", i, saved[i].Title, title)
		}
	}
}

func TestSavedRecipeListScopedToOwner(t *testing.T) {
	rs, alice, bob := setupSavedRecipeTest(t)

	rs.Create(alice, "Alice's Soup", "", "", "")
	rs.Create(bob, "Bob's Stew", "", "", "")

	saved, err := rs.List(alice)
	if err != nil {
		t.Fatalf("list recipes: %v", err)
	}
	if len(saved) != 1 || saved[0].Title != "Alice's Soup" {
		t.Fatalf("alice's recipes = %+v", saved)
	}
}

func TestSavedRecipeDelete(t *testing.T) {
	rs, alice, _ := setupSavedRecipeTest(t)

	r, _ := rs.Create(alice, "Soup", "", "", "")
	if err := rs.Delete(alice, r.ID); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}

	got, err := rs.Get(r.ID)
	if err != nil {
		t.Fatalf("get deleted recipe: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted recipe")
	}
}

func TestSavedRecipeDeleteNotFound(t *testing.T) {
	rs, alice, _ := setupSavedRecipeTest(t)

	if err := rs.Delete(alice, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSavedRecipeDeleteForbidden(t *testing.T) {
	rs, alice, bob := setupSavedRecipeTest(t)

	r, _ := rs.Create(alice, "Soup", "", "", "")

	if err := rs.Delete(bob, r.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	got, err := rs.Get(r.ID)
	if err != nil {
		t.Fatalf("get recipe: %v", err)
	}
	if got == nil {
		t.Fatal("recipe should survive a cross-owner delete")
	}
}

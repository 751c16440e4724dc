package article

import "testing"

func TestCategories_FixedOrder(t *testing.T) {
	want := []Category{Tech, Finance, Healthcare, Sports, Politics, Entertainment}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
		if IndexOf(want[i]) != i {
			t.Errorf("IndexOf(%q) = %d, want %d", want[i], IndexOf(want[i]), i)
		}
	}

	got[0] = "mutated"
	if Categories()[0] != Tech {
		t.Error("Categories must return a copy")
	}
}

func TestIndexOf_Unknown(t *testing.T) {
	for _, c := range []Category{"Weather", "sports", ""} {
		if IndexOf(c) != -1 {
			t.Errorf("IndexOf(%q) = %d, want -1", c, IndexOf(c))
		}
	}
}

func TestArticle_Text(t *testing.T) {
	a := Article{Title: "Title", Content: "Body"}
	if a.Text() != "Title Body" {
		t.Errorf("unexpected text %q", a.Text())
	}
}

package registry

import "testing"

func TestBuiltinPacksRegistered(t *testing.T) {
	for _, id := range []string{"classic", "gophers", "space"} {
		if !Exists(id) {
			t.Errorf("built-in pack %q not registered", id)
		}
	}

	p, err := Get(DefaultPack)
	if err != nil {
		t.Fatalf("Get(default) failed: %v", err)
	}
	words, _ := p.Words()
	if len(words) == 0 || len(words) != p.Len() {
		t.Errorf("default pack should have words, got %d (Len %d)", len(words), p.Len())
	}
}

func TestListSorted(t *testing.T) {
	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID > infos[i].ID {
			t.Fatalf("List() not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	p, _ := Get("space")
	words, _ := p.Words()
	words[0] = "mutated"

	again, _ := p.Words()
	if again[0] == "mutated" {
		t.Error("Words() should not expose the pack's backing slice")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-pack"); err == nil {
		t.Error("expected an error for an unknown pack")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register("classic", "Again", []string{"x"})
}

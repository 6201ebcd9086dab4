package merge

import "testing"

func TestClassify_SplitAbsent(t *testing.T) {
	cases := []struct {
		name       string
		hok, gok   bool
		hOID, gOID string
		wantAction mergeAction
		wantOID    string
	}{
		{"only G adds", false, true, "", "g1", actionWriteG, "g1"},
		{"only H adds", true, false, "h1", "", actionNoop, ""},
		{"both add identically", true, true, "same", "same", actionNoop, ""},
		{"both add differently", true, true, "h1", "g1", actionConflict, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			action, oid := classify("", false, c.hOID, c.hok, c.gOID, c.gok)
			if action != c.wantAction {
				t.Fatalf("expected action %v, got %v", c.wantAction, action)
			}
			if oid != c.wantOID {
				t.Fatalf("expected oid %q, got %q", c.wantOID, oid)
			}
		})
	}
}

func TestClassify_SplitPresent_HUnchanged(t *testing.T) {
	cases := []struct {
		name       string
		gok        bool
		gOID       string
		wantAction mergeAction
		wantOID    string
	}{
		{"G deleted", false, "", actionRemove, ""},
		{"G unchanged", true, "s1", actionNoop, ""},
		{"G modified", true, "g1", actionWriteG, "g1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			action, oid := classify("s1", true, "s1", true, c.gOID, c.gok)
			if action != c.wantAction {
				t.Fatalf("expected action %v, got %v", c.wantAction, action)
			}
			if oid != c.wantOID {
				t.Fatalf("expected oid %q, got %q", c.wantOID, oid)
			}
		})
	}
}

func TestClassify_SplitPresent_HChanged(t *testing.T) {
	cases := []struct {
		name       string
		gok        bool
		gOID       string
		wantAction mergeAction
	}{
		{"G deleted", false, "", actionConflict},
		{"G unchanged (H's edit wins)", true, "s1", actionNoop},
		{"G matches H's edit", true, "h1", actionNoop},
		{"G diverges", true, "g1", actionConflict},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			action, _ := classify("s1", true, "h1", true, c.gOID, c.gok)
			if action != c.wantAction {
				t.Fatalf("expected action %v, got %v", c.wantAction, action)
			}
		})
	}
}

func TestClassify_SplitPresent_HDeleted(t *testing.T) {
	cases := []struct {
		name       string
		gok        bool
		gOID       string
		wantAction mergeAction
	}{
		{"G also deleted", false, "", actionNoop},
		{"G unchanged", true, "s1", actionNoop},
		{"G modified", true, "g1", actionConflict},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			action, _ := classify("s1", true, "", false, c.gOID, c.gok)
			if action != c.wantAction {
				t.Fatalf("expected action %v, got %v", c.wantAction, action)
			}
		})
	}
}

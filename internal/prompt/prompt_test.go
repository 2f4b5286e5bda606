package prompt

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func sampleItems() []Item {
	return []Item{
		{Label: "build", Detail: "npm build"},
		{Label: "test", Detail: "npm test"},
		{Label: "lint", Detail: "npm lint"},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// TestFilterItemsEmptyQuery verifies an empty query keeps every item in
// original order.
func TestFilterItemsEmptyQuery(t *testing.T) {
	got := filterItems("", sampleItems())
	if len(got) != 3 {
		t.Fatalf("filterItems(\"\") returned %d indices, want 3", len(got))
	}
	for i, idx := range got {
		if idx != i {
			t.Errorf("filterItems(\"\")[%d] = %d, want %d", i, idx, i)
		}
	}
}

// TestFilterItemsNarrows verifies fuzzy filtering drops non-matching items.
func TestFilterItemsNarrows(t *testing.T) {
	got := filterItems("bld", sampleItems())
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("filterItems(\"bld\") = %v, want [0]", got)
	}
}

// TestFilterItemsNoMatch verifies a hopeless query yields no indices.
func TestFilterItemsNoMatch(t *testing.T) {
	if got := filterItems("zzz", sampleItems()); len(got) != 0 {
		t.Errorf("filterItems(\"zzz\") = %v, want empty", got)
	}
}

// TestSelectCursorMoves verifies up/down move the cursor within bounds.
func TestSelectCursorMoves(t *testing.T) {
	m := newSelectModel("pick", sampleItems())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(selectModel)
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(selectModel)
	if m.cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(selectModel)
	if m.cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.cursor)
	}
}

// TestSelectEscCancels verifies esc marks the model cancelled.
func TestSelectEscCancels(t *testing.T) {
	m := newSelectModel("pick", sampleItems())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(selectModel)
	if !m.cancelled {
		t.Error("cancelled = false after esc, want true")
	}
}

// TestSelectTypingFilters verifies typed runes narrow the visible list and
// reset an out-of-range cursor.
func TestSelectTypingFilters(t *testing.T) {
	m := newSelectModel("pick", sampleItems())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(selectModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // cursor on "lint"
	m = next.(selectModel)

	for _, r := range "build" {
		next, _ = m.Update(keyRunes(string(r)))
		m = next.(selectModel)
	}

	if len(m.visible) != 1 {
		t.Fatalf("visible = %v, want exactly one match", m.visible)
	}
	if m.items[m.visible[0]].Label != "build" {
		t.Errorf("visible item = %q, want %q", m.items[m.visible[0]].Label, "build")
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d after filter shrank the list, want 0", m.cursor)
	}
}

// TestInputCollectsValue verifies typed runes end up in the input value.
func TestInputCollectsValue(t *testing.T) {
	ti := textinput.New()
	ti.Focus()
	m := inputModel{title: "Add dependency", input: ti}

	for _, r := range "lodash" {
		next, _ := m.Update(keyRunes(string(r)))
		m = next.(inputModel)
	}
	if got := m.input.Value(); got != "lodash" {
		t.Errorf("input value = %q, want %q", got, "lodash")
	}
}

// TestConfirmAnswers verifies the y/n/enter/esc key mapping.
func TestConfirmAnswers(t *testing.T) {
	cases := []struct {
		key  tea.KeyMsg
		want bool
	}{
		{keyRunes("y"), true},
		{keyRunes("Y"), true},
		{tea.KeyMsg{Type: tea.KeyEnter}, true},
		{keyRunes("n"), false},
		{tea.KeyMsg{Type: tea.KeyEsc}, false},
	}
	for _, tc := range cases {
		m := confirmModel{question: "Delete?"}
		next, _ := m.Update(tc.key)
		m = next.(confirmModel)
		if m.confirmed != tc.want {
			t.Errorf("confirmed after %q = %v, want %v", tc.key.String(), m.confirmed, tc.want)
		}
		if !m.answered {
			t.Errorf("answered after %q = false, want true", tc.key.String())
		}
	}
}

// Package prompt implements the interactive pickers pmx uses to choose
// scripts and dependencies, plus the free-text and yes/no prompts.
// All prompts are Bubble Tea programs; on a non-terminal stdin they fail
// with ErrNoTTY instead of hanging.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/sahilm/fuzzy"
)

// ErrCancelled means the user dismissed the prompt (esc / ctrl+c).
var ErrCancelled = errors.New("cancelled")

// ErrNoTTY means stdin is not a terminal and the prompt cannot run.
var ErrNoTTY = errors.New("interactive prompt needs a terminal")

// Item is one selectable row: a label matched by the filter and a dim
// annotation shown next to it.
type Item struct {
	Label  string
	Detail string
}

// ── styles ────────────────────────────────────────────────────────────────────

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	normalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	helpStyle   = dimStyle
)

func stdinIsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
}

// ── Select ────────────────────────────────────────────────────────────────────

// maxRows is how many items the picker shows at once; the cursor scrolls the
// window through longer lists.
const maxRows = 10

// Select shows a filterable picker over items. Typing narrows the list with
// fuzzy matching; enter returns the highlighted item, esc cancels.
func Select(title string, items []Item) (Item, error) {
	if len(items) == 0 {
		return Item{}, fmt.Errorf("nothing to select")
	}
	if !stdinIsTTY() {
		return Item{}, ErrNoTTY
	}

	p := tea.NewProgram(newSelectModel(title, items))
	final, err := p.Run()
	if err != nil {
		return Item{}, err
	}
	m := final.(selectModel)
	if m.cancelled || len(m.visible) == 0 {
		return Item{}, ErrCancelled
	}
	return m.items[m.visible[m.cursor]], nil
}

type selectModel struct {
	title     string
	filter    textinput.Model
	items     []Item
	visible   []int // indices into items, filter applied
	cursor    int   // index into visible
	cancelled bool
}

func newSelectModel(title string, items []Item) selectModel {
	fi := textinput.New()
	fi.Placeholder = "type to filter"
	fi.Focus()
	fi.Width = 40

	m := selectModel{title: title, filter: fi, items: items}
	m.visible = filterItems("", items)
	return m
}

func (m selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if len(m.visible) == 0 {
			return m, nil
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.visible = filterItems(m.filter.Value(), m.items)
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
	return m, cmd
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render(m.title) + "\n\n")
	b.WriteString("  " + m.filter.View() + "\n\n")

	if len(m.visible) == 0 {
		b.WriteString("  " + dimStyle.Render("no matches") + "\n")
	}

	// Scroll a fixed-size window so the cursor stays on screen.
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	end := min(start+maxRows, len(m.visible))
	for i := start; i < end; i++ {
		item := m.items[m.visible[i]]
		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = focusStyle.Render(" ▶")
			style = focusStyle
		}
		b.WriteString(fmt.Sprintf("%s %-24s  %s\n",
			cursor,
			style.Render(item.Label),
			dimStyle.Render(item.Detail),
		))
	}
	if end < len(m.visible) {
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("… %d more", len(m.visible)-end)) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("  ↑↓ move · enter select · esc cancel"))
	return b.String()
}

// filterItems returns the indices of items matching query, best match first.
// An empty query keeps the original order.
func filterItems(query string, items []Item) []int {
	if strings.TrimSpace(query) == "" {
		all := make([]int, len(items))
		for i := range items {
			all[i] = i
		}
		return all
	}
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}
	matches := fuzzy.Find(query, labels)
	out := make([]int, len(matches))
	for i, match := range matches {
		out[i] = match.Index
	}
	return out
}

// ── Input ─────────────────────────────────────────────────────────────────────

// Input shows a single free-text prompt and returns the trimmed value.
func Input(title, placeholder string) (string, error) {
	if !stdinIsTTY() {
		return "", ErrNoTTY
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.Width = 40

	p := tea.NewProgram(inputModel{title: title, input: ti})
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return strings.TrimSpace(m.input.Value()), nil
}

type inputModel struct {
	title     string
	input     textinput.Model
	cancelled bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render(m.title) + "\n\n")
	b.WriteString("  " + m.input.View() + "\n\n")
	b.WriteString(helpStyle.Render("  enter confirm · esc cancel"))
	return b.String()
}

// ── Confirm ───────────────────────────────────────────────────────────────────

// Confirm asks a yes/no question. Enter and y answer yes; n and esc answer no.
func Confirm(question string) (bool, error) {
	if !stdinIsTTY() {
		return false, ErrNoTTY
	}

	p := tea.NewProgram(confirmModel{question: question})
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	return final.(confirmModel).confirmed, nil
}

type confirmModel struct {
	question  string
	confirmed bool
	answered  bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc", "n", "N":
		m.answered = true
		return m, tea.Quit
	case "enter", "y", "Y":
		m.confirmed = true
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}
	return fmt.Sprintf("  %s %s",
		titleStyle.Render(m.question),
		helpStyle.Render("[y/N]"),
	)
}

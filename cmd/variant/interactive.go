package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/variant"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// previewWidth caps the inline rendering of a value in the entry list.
const previewWidth = 60

type browserModel struct {
	err      error
	root     variant.Variant
	name     string
	path     []string
	entries  []entry
	jump     textinput.Model
	selected int
	state    browserState
}

type entry struct {
	label string
	value variant.Variant
}

type browserState int

const (
	stateBrowse browserState = iota
	stateJump
)

func newBrowserModel(root variant.Variant, name string) *browserModel {
	ti := textinput.New()
	ti.Prompt = "path: "
	ti.Placeholder = "items.0.name"
	ti.Width = 40

	m := &browserModel{root: root, name: name, jump: ti, state: stateBrowse}
	m.enter(nil)
	return m
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

// current returns the container being listed. Segments are followed one
// at a time so mapping keys containing dots still resolve.
func (m *browserModel) current() variant.Variant {
	cur := m.root
	for _, seg := range m.path {
		switch cur.Kind() {
		case variant.KindMapping:
			cur, _ = cur.Get(seg)
		case variant.KindSequence:
			i, _ := strconv.Atoi(seg)
			cur, _ = cur.Index(i)
		}
	}
	return cur
}

// enter moves the listing to path, which must name a container or be the
// root.
func (m *browserModel) enter(path []string) {
	m.path = path
	m.selected = 0
	m.entries = m.entries[:0]

	cur := m.current()
	switch cur.Kind() {
	case variant.KindSequence:
		seq, _ := cur.AsSequence()
		for i, e := range seq {
			m.entries = append(m.entries, entry{label: strconv.Itoa(i), value: e})
		}
	case variant.KindMapping:
		for _, k := range cur.Keys() {
			e, _ := cur.Get(k)
			m.entries = append(m.entries, entry{label: k, value: e})
		}
	default:
		m.entries = append(m.entries, entry{label: "value", value: cur})
	}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateJump {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateBrowse
			m.jump.Blur()
			return m, nil
		case "enter":
			m.jumpTo(m.jump.Value())
			m.state = stateBrowse
			m.jump.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}

	case "enter", "right", "l":
		if m.selected < len(m.entries) {
			e := m.entries[m.selected]
			if e.value.Kind().IsContainer() {
				m.enter(append(append([]string(nil), m.path...), e.label))
			}
		}

	case "backspace", "left", "h":
		if len(m.path) > 0 {
			parent := m.path[len(m.path)-1]
			m.enter(m.path[:len(m.path)-1])
			m.selectLabel(parent)
		}

	case "/":
		m.err = nil
		m.state = stateJump
		m.jump.SetValue(strings.Join(m.path, "."))
		m.jump.CursorEnd()
		return m, m.jump.Focus()
	}

	return m, nil
}

// jumpTo lists the container at path, or selects the entry path names when
// it points at a scalar.
func (m *browserModel) jumpTo(path string) {
	path = strings.Trim(path, ".")
	target, err := m.root.Lookup(path)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil

	var segs []string
	if path != "" {
		segs = strings.Split(path, ".")
	}
	if target.Kind().IsContainer() || len(segs) == 0 {
		m.enter(segs)
		return
	}
	m.enter(segs[:len(segs)-1])
	m.selectLabel(segs[len(segs)-1])
}

func (m *browserModel) selectLabel(label string) {
	for i, e := range m.entries {
		if e.label == label {
			m.selected = i
			return
		}
	}
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Variant Browser"))
	b.WriteString(" ")
	b.WriteString(m.name)
	b.WriteString("\n")
	b.WriteString(kindStyle.Render("/" + strings.Join(m.path, "/")))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(helpStyle.Render("(empty " + m.current().Kind().String() + ")"))
		b.WriteString("\n")
	}
	for i, e := range m.entries {
		line := formatEntry(e)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if m.state == stateJump {
		b.WriteString(m.jump.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter jump • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • backspace up • / jump • q quit"))
	}

	return b.String()
}

func formatEntry(e entry) string {
	kind := e.value.Kind()
	var preview string
	switch kind {
	case variant.KindSequence, variant.KindMapping:
		preview = fmt.Sprintf("(%d)", e.value.Len())
	case variant.KindString:
		preview = strconv.Quote(e.value.StringOr(""))
	default:
		preview = e.value.String()
	}
	if len(preview) > previewWidth {
		preview = preview[:previewWidth-3] + "..."
	}
	return keyStyle.Render(e.label) + " " + kindStyle.Render(kind.String()) + " " + preview
}

func runInteractive(opts options, stdin io.Reader) error {
	doc, err := load(opts.inFile, opts.from, stdin)
	if err != nil {
		return err
	}
	name := opts.inFile
	if name == "" {
		name = "stdin"
	}
	p := tea.NewProgram(newBrowserModel(doc, name), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/variant"
)

func press(m *browserModel, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyBack  = tea.KeyMsg{Type: tea.KeyBackspace}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func testDoc() variant.Variant {
	return variant.MustFromJSON(`{"a": 1, "list": [true, {"deep": "x"}], "z": {}}`)
}

func TestBrowser_Listing(t *testing.T) {
	m := newBrowserModel(testDoc(), "doc.json")
	if len(m.entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(m.entries))
	}
	if m.entries[0].label != "a" || m.entries[1].label != "list" || m.entries[2].label != "z" {
		t.Errorf("labels out of order: %v", m.entries)
	}
	view := m.View()
	if !strings.Contains(view, "Variant Browser") || !strings.Contains(view, "doc.json") {
		t.Errorf("view missing title: %q", view)
	}
}

func TestBrowser_Navigate(t *testing.T) {
	m := newBrowserModel(testDoc(), "doc")

	press(m, keyEnter)
	if len(m.path) != 0 {
		t.Fatalf("enter on a scalar moved to %v", m.path)
	}

	press(m, keyDown, keyEnter)
	if strings.Join(m.path, ".") != "list" || len(m.entries) != 2 {
		t.Fatalf("path = %v, entries = %d", m.path, len(m.entries))
	}

	press(m, runes("j"), keyEnter)
	if strings.Join(m.path, ".") != "list.1" {
		t.Fatalf("path = %v", m.path)
	}

	press(m, keyBack)
	if strings.Join(m.path, ".") != "list" || m.selected != 1 {
		t.Errorf("after back path = %v selected = %d", m.path, m.selected)
	}

	press(m, keyBack, keyBack)
	if len(m.path) != 0 || m.entries[m.selected].label != "list" {
		t.Errorf("at root path = %v selected = %d", m.path, m.selected)
	}
}

func TestBrowser_EmptyContainer(t *testing.T) {
	m := newBrowserModel(testDoc(), "doc")
	press(m, keyDown, keyDown, keyEnter)
	if strings.Join(m.path, ".") != "z" || len(m.entries) != 0 {
		t.Fatalf("path = %v entries = %d", m.path, len(m.entries))
	}
	if !strings.Contains(m.View(), "(empty mapping)") {
		t.Error("empty mapping not shown")
	}
	press(m, keyDown, keyEnter)
	if strings.Join(m.path, ".") != "z" {
		t.Errorf("keys in an empty listing moved to %v", m.path)
	}
}

func TestBrowser_Jump(t *testing.T) {
	m := newBrowserModel(testDoc(), "doc")

	press(m, runes("/"))
	if m.state != stateJump {
		t.Fatal("slash should open the path prompt")
	}
	m.jump.SetValue("list.1.deep")
	press(m, keyEnter)

	if m.state != stateBrowse {
		t.Fatal("enter should close the prompt")
	}
	if strings.Join(m.path, ".") != "list.1" || m.entries[m.selected].label != "deep" {
		t.Errorf("jump landed at %v selected %d", m.path, m.selected)
	}

	press(m, runes("/"))
	m.jump.SetValue("nope")
	press(m, keyEnter)
	if m.err == nil {
		t.Error("jump to a missing key should set an error")
	}
	if !strings.Contains(m.View(), "Error:") {
		t.Error("error not rendered")
	}

	press(m, runes("/"), keyEsc)
	if m.state != stateBrowse || m.err != nil {
		t.Errorf("esc state = %v err = %v", m.state, m.err)
	}
}

func TestBrowser_ScalarRoot(t *testing.T) {
	m := newBrowserModel(variant.String("hello"), "doc")
	if len(m.entries) != 1 || m.entries[0].label != "value" {
		t.Fatalf("entries = %v", m.entries)
	}
	if !strings.Contains(m.View(), `"hello"`) {
		t.Error("scalar preview missing")
	}
}

func TestBrowser_Quit(t *testing.T) {
	m := newBrowserModel(testDoc(), "doc")
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

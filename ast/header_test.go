package ast

import (
	"strings"
	"testing"
)

func TestHeaderBuild_Levels(t *testing.T) {
	h0 := &Header{Level: 0, Title: "ignored"}
	if got := string(h0.Build(nil)); got != "" {
		t.Errorf("level 0 should emit no title, got %q", got)
	}

	h1 := &Header{Level: 1, Title: "English"}
	want1 := "English\n" + strings.Repeat("=", 78) + "\n"
	if got := string(h1.Build(nil)); got != want1 {
		t.Errorf("level 1: got %q, want %q", got, want1)
	}

	h2 := &Header{Level: 2, Title: "Spanish"}
	want2 := "Spanish\n" + strings.Repeat("-", 78) + "\n"
	if got := string(h2.Build(nil)); got != want2 {
		t.Errorf("level 2: got %q, want %q", got, want2)
	}

	h3 := &Header{Level: 3, Title: "Notes"}
	if got := string(h3.Build(nil)); got != "### Notes\n" {
		t.Errorf("level 3: got %q", got)
	}

	h9 := &Header{Level: 9, Title: "Deep"}
	if got := string(h9.Build(nil)); got != strings.Repeat("#", 9)+" Deep\n" {
		t.Errorf("level 9: got %q", got)
	}
}

func TestHeaderBuild_WithChildren(t *testing.T) {
	h := &Header{Level: 1, Title: "French", Children: []Node{
		&Paragraph{Text: "Bonjour tout le monde"},
	}}
	want := "French\n" + strings.Repeat("=", 78) + "\n\nBonjour tout le monde\n"
	if got := string(h.Build(nil)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHeaderPrepend_NewChild(t *testing.T) {
	h := &Header{Level: 1, Title: "Root"}
	child := h.Prepend("Child", &Paragraph{Text: "body"})
	if len(child.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(child.Children))
	}
	nested, ok := child.Children[0].(*Header)
	if !ok || nested.Level != 2 || nested.Title != "Child" {
		t.Fatalf("unexpected nested header: %#v", child.Children[0])
	}
}

func TestHeaderPrepend_PlacementBeforeExistingHeaders(t *testing.T) {
	h := &Header{Level: 0, Children: []Node{
		&Paragraph{Text: "intro"},
		&Header{Level: 1, Title: "Existing"},
	}}
	updated := h.Prepend("New")
	if len(updated.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(updated.Children))
	}
	if _, ok := updated.Children[0].(*Paragraph); !ok {
		t.Fatalf("expected paragraph to remain first, got %#v", updated.Children[0])
	}
	newHeader, ok := updated.Children[1].(*Header)
	if !ok || newHeader.Title != "New" {
		t.Fatalf("expected new header second, got %#v", updated.Children[1])
	}
	existing, ok := updated.Children[2].(*Header)
	if !ok || existing.Title != "Existing" {
		t.Fatalf("expected existing header last, got %#v", updated.Children[2])
	}
}

func TestHeaderPrepend_OnlyBeforeSameLevelHeaders(t *testing.T) {
	h := &Header{Level: 1, Children: []Node{
		&Paragraph{Text: "intro"},
		&Header{Level: 3, Title: "X"},
		&Header{Level: 2, Title: "Y"},
	}}
	updated := h.Prepend("New")
	if len(updated.Children) != 4 {
		t.Fatalf("expected 4 children, got %d", len(updated.Children))
	}
	if _, ok := updated.Children[0].(*Paragraph); !ok {
		t.Fatalf("expected paragraph to remain first, got %#v", updated.Children[0])
	}
	x, ok := updated.Children[1].(*Header)
	if !ok || x.Level != 3 || x.Title != "X" {
		t.Fatalf("expected level-3 header X to keep its position, got %#v", updated.Children[1])
	}
	newHeader, ok := updated.Children[2].(*Header)
	if !ok || newHeader.Level != 2 || newHeader.Title != "New" {
		t.Fatalf("expected new level-2 header before Y, got %#v", updated.Children[2])
	}
	y, ok := updated.Children[3].(*Header)
	if !ok || y.Level != 2 || y.Title != "Y" {
		t.Fatalf("expected level-2 header Y last, got %#v", updated.Children[3])
	}
}

func TestHeaderPrepend_NoDuplicate(t *testing.T) {
	h := &Header{Level: 0, Children: []Node{
		&Header{Level: 1, Title: "Same"},
	}}
	updated := h.Prepend("Same")
	if len(updated.Children) != 1 {
		t.Fatalf("expected no duplicate header, got %d children", len(updated.Children))
	}
}

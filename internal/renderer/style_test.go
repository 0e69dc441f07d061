package renderer

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
)

func TestAttributeHas(t *testing.T) {
	a := AttrBold | AttrUnderline
	if !a.Has(AttrBold) || !a.Has(AttrUnderline) {
		t.Error("expected bold and underline")
	}
	if a.Has(AttrItalic) {
		t.Error("did not expect italic")
	}
}

func TestDefaultStyle(t *testing.T) {
	if !DefaultStyle().IsDefault() {
		t.Error("default style should report IsDefault")
	}
	if DefaultStyle().WithBackground(ColorBlack).IsDefault() {
		t.Error("a style with a background is not default")
	}
}

func TestStyleMerge(t *testing.T) {
	red := ColorFromRGB(255, 0, 0)
	base := Style{Foreground: ColorWhite, Background: ColorBlack, Attributes: AttrItalic}
	over := Style{Foreground: red, Background: ColorDefault, Attributes: AttrBold}

	got := base.Merge(over)
	want := Style{Foreground: red, Background: ColorBlack, Attributes: AttrItalic | AttrBold}
	if !got.Equals(want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestStyleFromChroma(t *testing.T) {
	entry := chroma.StyleEntry{
		Colour:     chroma.MustParseColour("#F92672"),
		Background: chroma.MustParseColour("#000000"),
		Bold:       chroma.Yes,
		Italic:     chroma.No,
	}

	s := styleFromChroma(entry)
	if !s.Foreground.Equals(ColorFromRGB(0xF9, 0x26, 0x72)) {
		t.Errorf("unexpected foreground %s", s.Foreground)
	}
	if !s.Background.IsDefault() {
		t.Error("entry background should be dropped")
	}
	if s.Attributes != AttrBold {
		t.Errorf("expected bold only, got %v", s.Attributes)
	}
}

package renderer

import "testing"

func TestEmptyCell(t *testing.T) {
	c := EmptyCell()
	if c.Rune != ' ' || c.Width != 1 {
		t.Errorf("unexpected empty cell %+v", c)
	}
	if !c.Style.IsDefault() {
		t.Error("empty cell should have default style")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{' ', 1},
		{'\t', 0},
		{0x7F, 0},
		{'中', 2},
		{'한', 2},
		{'é', 1},
		{'\u0301', 0},
	}

	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q): expected %d, got %d", tt.r, tt.want, got)
		}
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("ab中文"); got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
}

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		s    string
		col  int
		want int
	}{
		{"hello", 0, 0},
		{"hello", 3, 3},
		{"hello", 10, 5},
		{"a中b", 2, 3},
		{"a中b", 3, 4},
	}

	for _, tt := range tests {
		if got := columnWidth(tt.s, tt.col); got != tt.want {
			t.Errorf("columnWidth(%q, %d): expected %d, got %d", tt.s, tt.col, tt.want, got)
		}
	}
}

func TestContinuationCell(t *testing.T) {
	if !(Cell{}).IsContinuation() {
		t.Error("zero cell is a continuation cell")
	}
	if NewStyledCell('x', DefaultStyle()).IsContinuation() {
		t.Error("a normal cell is not a continuation cell")
	}
}

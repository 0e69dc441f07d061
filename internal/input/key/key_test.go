package key

import "testing"

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Enter", KeyEnter},
		{"ESC", KeyEscape},
		{"pgdn", KeyPageDown},
		{"KPEnter", KeyKPEnter},
		{"f12", KeyF12},
		{"nope", KeyNone},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyClassification(t *testing.T) {
	if !KeyUp.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey misclassified")
	}
	if !KeyPageDown.IsNavigationKey() || KeyEnter.IsNavigationKey() {
		t.Error("IsNavigationKey misclassified")
	}
	if KeyRune.IsSpecial() || !KeyTab.IsSpecial() {
		t.Error("IsSpecial misclassified")
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{SpecialCode(KeyEnd), "End"},
		{RuneCode('q'), "Q"},
		{RuneCode(' '), "Space"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

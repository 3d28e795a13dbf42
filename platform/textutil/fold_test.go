package textutil

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Próximamente", "proximamente"},
		{"León", "leon"},
		{"MONSEÑOR", "monsenor"},
		{"ascii only", "ascii only"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Fatalf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFoldRune(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
	}{
		{'Ó', 'o'},
		{'ñ', 'n'},
		{'É', 'e'},
		{'A', 'a'},
		{'z', 'z'},
		{' ', ' '},
	}

	for _, tt := range tests {
		if got := FoldRune(tt.in); got != tt.want {
			t.Fatalf("FoldRune(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Próximamente Disponible", "proximamente") {
		t.Fatal("expected accent-insensitive containment")
	}
	if ContainsFold("Disponible", "proximamente") {
		t.Fatal("unexpected containment")
	}
}

func TestEqualFold(t *testing.T) {
	if !EqualFold("NICARAGUA", "Nicaragua") {
		t.Fatal("expected case-insensitive equality")
	}
	if !EqualFold("León", "leon") {
		t.Fatal("expected accent-insensitive equality")
	}
	if EqualFold("León", "Granada") {
		t.Fatal("unexpected equality")
	}
}

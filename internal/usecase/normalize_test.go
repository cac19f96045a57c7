package usecase

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases and trims", "  Coca-Cola 1.5L  ", "coca-cola 1.5l"},
		{"strips diacritics", "Süd", "sud"},
		{"keeps non-decomposable letters", "Çörək məmulatları", "corək məmulatları"},
		{"collapses inner whitespace", "a   b\t c", "a b c"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeText(tt.input); got != tt.want {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMergeKey(t *testing.T) {
	t.Run("case and whitespace insensitive", func(t *testing.T) {
		if mergeKey("Süd 1L", "Süd məhsulları") != mergeKey("süd 1l", " süd məhsulları ") {
			t.Error("merge keys must match for case/whitespace variants")
		}
	})

	t.Run("keeps diacritics", func(t *testing.T) {
		if mergeKey("Süd", "X") == mergeKey("Sud", "X") {
			t.Error("merge key must not strip diacritics")
		}
	})

	t.Run("category is part of the key", func(t *testing.T) {
		if mergeKey("Su", "İçkilər") == mergeKey("Su", "Digər") {
			t.Error("same name in different categories must not collide")
		}
	})
}

func TestContainsAtBoundary(t *testing.T) {
	tests := []struct {
		haystack string
		needle   string
		want     bool
	}{
		{"pepsi coca mix", "coca", true},
		{"coca-cola", "cola", true},
		{"chocolate", "cola", false},
		{"coca-cola", "coca", true},
		{"abc", "", false},
	}

	for _, tt := range tests {
		if got := containsAtBoundary(tt.haystack, tt.needle); got != tt.want {
			t.Errorf("containsAtBoundary(%q, %q) = %v, want %v", tt.haystack, tt.needle, got, tt.want)
		}
	}
}

package normalize

import "testing"

func TestGenerateKey(t *testing.T) {
	tests := []struct {
		name  string
		last  string
		year  string
		title string
		want  string
	}{
		{"basic", "Zhang", "2018", "Visual Interpretation of Networks", "Zhang2018-vi"},
		{"stop words skipped", "Smith", "2024", "An Innovative Approach", "Smith2024-ia"},
		{"no author", "", "2020", "Some Title", "Unknown2020-st"},
		{"no year", "Doe", "", "Some Title", "Doe9999-st"},
		{"short title padded", "Doe", "2021", "X", "Doe2021-xx"},
		{"last name sanitized", "O'Brien", "2022", "Two Words", "OBrien2022-tw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateKey(tt.last, tt.year, tt.title); got != tt.want {
				t.Errorf("GenerateKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateKey_Deterministic(t *testing.T) {
	a := GenerateKey("Smith", "2024", "Synthetic Data Generation")
	b := GenerateKey("Smith", "2024", "Synthetic Data Generation")
	if a != b {
		t.Errorf("GenerateKey() not deterministic: %q vs %q", a, b)
	}
}

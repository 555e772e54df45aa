package product

import (
	"context"
	"testing"
)

func code(s string) *string { return &s }

func TestValidate_CodeFormat(t *testing.T) {
	tests := []struct {
		name    string
		code    *string
		wantErr bool
	}{
		{"no code", nil, false},
		{"valid code", code("101-001"), false},
		{"too short", code("11-001"), true},
		{"letters", code("abc-def"), true},
		{"missing dash", code("101001"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProduct("Widget", tt.code)
			err := p.Validate(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NameRequired(t *testing.T) {
	p := NewProduct("", nil)
	if p.Validate(context.Background()) == nil {
		t.Error("expected error for empty name")
	}
}

func TestSortForDisplay(t *testing.T) {
	products := []*Product{
		NewProduct("Zinc Sheets", nil),
		NewProduct("Bolts", code("102-001")),
		NewProduct("Anvils", nil),
		NewProduct("Washers", code("101-005")),
	}

	SortForDisplay(products)

	// Coded products first ordered by code, uncoded after ordered by name.
	want := []string{"Washers", "Bolts", "Anvils", "Zinc Sheets"}
	for i, name := range want {
		if products[i].Name != name {
			t.Errorf("position %d = %q, want %q", i, products[i].Name, name)
		}
	}
}

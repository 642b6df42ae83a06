package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"First_Name", "prenom"},
		{"FIRSTNAME", "prenom"},
		{"Prénom", "prenom"},
		{"LastName", "nom"},
		{" last_name ", "nom"},
		{"Barcode", "barcode_id"},
		{"Mail", "email"},
		{"Company", "societe"},
		{"Rate", "tarif"},
		{"rate_name", "tarif"},
		{"T-Shirt Size", "t-shirt size"},
		{"email", "email"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHeader(tt.in), "header %q", tt.in)
	}
}

package spreadsheet

import "strings"

// headerAliases maps common column spellings onto the platform's canonical
// field names.
var headerAliases = map[string]string{
	"firstname":  "prenom",
	"first_name": "prenom",
	"prénom":     "prenom",
	"lastname":   "nom",
	"last_name":  "nom",
	"barcode":    "barcode_id",
	"mail":       "email",
	"company":    "societe",
	"rate":       "tarif",
	"rate_name":  "tarif",
}

// NormalizeHeader trims and lower-cases a header cell and resolves it through
// the alias table.
func NormalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	if alias, ok := headerAliases[h]; ok {
		return alias
	}
	return h
}

package registry

// defaultFields are the built-in participant attributes the platform knows
// natively. Values under these keys pass through to the submission unchanged;
// any other column becomes a custom form question.
var defaultFields = map[string]struct{}{
	"adresse":               {},
	"adressedelivraison":    {},
	"adresse_societe":       {},
	"billet_prix":           {},
	"blog":                  {},
	"choix_place":           {},
	"civilite":              {},
	"codepostaldelivraison": {},
	"code_postal":           {},
	"code_postal_societe":   {},
	"commentaires":          {},
	"date_de_naissance":     {},
	"email":                 {},
	"email_pro":             {},
	"fonction":              {},
	"nom":                   {},
	"pays":                  {},
	"paysdelivraison":       {},
	"pays_societe":          {},
	"portable":              {},
	"portable_societe":      {},
	"prenom":                {},
	"site_internet":         {},
	"societe":               {},
	"telephone":             {},
	"validity_date_start":   {},
	"ville":                 {},
	"villedelivraison":      {},
	"ville_societe":         {},
}

// IsDefaultField reports whether key is a built-in participant field.
func IsDefaultField(key string) bool {
	_, ok := defaultFields[key]
	return ok
}

package export

import "strings"

// regions maps the state codes the store uses for Ghana to region names.
// Both the WooCommerce codes and the short forms seen on older orders are
// listed.
var regions = map[string]string{
	"AA": "Greater Accra",
	"GA": "Greater Accra",
	"AF": "Ahafo",
	"AH": "Ashanti",
	"BA": "Brong-Ahafo",
	"BO": "Bono",
	"BE": "Bono East",
	"CP": "Central",
	"EP": "Eastern",
	"NE": "North East",
	"NP": "Northern",
	"OT": "Oti",
	"SV": "Savannah",
	"UE": "Upper East",
	"UW": "Upper West",
	"TV": "Volta",
	"WP": "Western",
	"WN": "Western North",
}

// Region returns the region name for code. Unknown codes come back as given.
func Region(code string) string {
	if name, ok := regions[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return name
	}
	return code
}

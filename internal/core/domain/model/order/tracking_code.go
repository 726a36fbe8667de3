package order

import "regexp"

// trackingCodePattern matches the pieza shape: two uppercase letters, nine
// digits, and the fixed "AR" country suffix.
var trackingCodePattern = regexp.MustCompile(`^([A-Z]{2})(\d{9})AR$`)

// validServiceCodes is the set of two-letter service prefixes the postal
// operator issues. A code with the right shape but an unknown prefix is
// treated as malformed.
var validServiceCodes = map[string]struct{}{
	"CU": {}, "SU": {}, "EU": {}, "PU": {}, "XU": {}, "CC": {}, "CD": {},
	"CL": {}, "CM": {}, "CO": {}, "CP": {}, "DE": {}, "DI": {}, "EC": {},
	"EE": {}, "EO": {}, "EP": {}, "GC": {}, "GD": {}, "GE": {}, "GF": {},
	"GO": {}, "GR": {}, "GS": {}, "HC": {}, "HD": {}, "HE": {}, "HU": {},
	"IN": {}, "IS": {}, "JP": {}, "LC": {}, "LS": {}, "ND": {}, "MD": {},
	"ME": {}, "MC": {}, "MS": {}, "MU": {}, "MX": {}, "OL": {}, "PC": {},
	"PP": {}, "RD": {}, "RE": {}, "RP": {}, "RR": {}, "SD": {}, "SL": {},
	"SP": {}, "SR": {}, "TC": {}, "TD": {}, "TL": {}, "UP": {}, "CX": {},
	"XP": {}, "XX": {}, "XR": {},
}

// IsValidTrackingCode reports whether pieza has the full expected shape:
// a known two-letter service code, nine digits, and the "AR" suffix.
//
// The mutation boundary does not enforce this format (creation only
// requires a non-empty string), so callers use it for diagnostics (the
// create path logs a warning for malformed codes) and for generating
// well-formed test data.
func IsValidTrackingCode(pieza string) bool {
	m := trackingCodePattern.FindStringSubmatch(pieza)
	if m == nil {
		return false
	}
	_, ok := validServiceCodes[m[1]]
	return ok
}

// TrackingCodeParts splits a well-formed pieza into its service code,
// numeric body, and country suffix. Returns ok=false for codes that do not
// match the expected shape.
func TrackingCodeParts(pieza string) (service, number, country string, ok bool) {
	m := trackingCodePattern.FindStringSubmatch(pieza)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], "AR", true
}

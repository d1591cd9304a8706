package trip

// validAirportCodes is the finite set of IATA codes the search endpoint
// accepts for origin and destination. Codes are uppercase; validation is
// an exact match.
var validAirportCodes = map[string]struct{}{
	"ATL": {}, "PEK": {}, "LAX": {}, "DXB": {}, "HND": {},
	"ORD": {}, "DFW": {}, "PVG": {}, "CAN": {}, "LHR": {},
	"ARN": {}, "OSL": {}, "VIE": {}, "ZRH": {}, "GVA": {},
	"BRU": {}, "DUB": {}, "LIS": {}, "MAD": {}, "DEL": {},
	"CDG": {}, "AMS": {}, "FRA": {}, "IST": {}, "CGK": {},
	"SIN": {}, "DEN": {}, "ICN": {}, "BKK": {}, "SFO": {},
	"LAS": {}, "CLT": {}, "MIA": {}, "KUL": {}, "SEA": {},
	"MUC": {}, "EWR": {}, "MCO": {}, "PHX": {}, "IAH": {},
	"CTU": {}, "SYD": {}, "MEX": {}, "STN": {}, "MNL": {},
	"BCN": {}, "LGW": {}, "BOM": {}, "BOG": {}, "JFK": {},
	"GRU": {}, "CGH": {}, "MEL": {},
}

// IsValidAirportCode reports whether code belongs to the accepted set.
func IsValidAirportCode(code string) bool {
	_, ok := validAirportCodes[code]
	return ok
}

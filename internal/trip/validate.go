package trip

// Validate checks search parameters before any cache or network access.
// Returns a validation Error on the first violation found.
func (p SearchParams) Validate() error {
	if p.Origin == "" {
		return E(KindValidation, "missing required query parameter: origin")
	}
	if p.Destination == "" {
		return E(KindValidation, "missing required query parameter: destination")
	}
	if !IsValidAirportCode(p.Origin) {
		return E(KindValidation, "invalid origin code")
	}
	if !IsValidAirportCode(p.Destination) {
		return E(KindValidation, "invalid destination code")
	}
	if p.Origin == p.Destination {
		return E(KindValidation, "origin and destination cannot be the same")
	}
	if p.SortBy != "" && p.SortBy != SortFastest && p.SortBy != SortCheapest {
		return E(KindValidation, `invalid value for sort_by: allowed values are "fastest" and "cheapest"`)
	}
	return nil
}

// ValidateForSave checks a trip submitted for saving. Saved trips are not
// restricted to the search airport-code set; any non-empty route is allowed.
func (t Trip) ValidateForSave() error {
	for _, f := range []struct{ name, value string }{
		{"id", t.ID},
		{"origin", t.Origin},
		{"destination", t.Destination},
		{"type", t.Type},
		{"display_name", t.DisplayName},
	} {
		if f.value == "" {
			return E(KindValidation, "missing required body parameter: "+f.name)
		}
	}
	if t.Cost < 0 || t.Duration < 0 {
		return E(KindValidation, "cost and duration must be non-negative")
	}
	return nil
}

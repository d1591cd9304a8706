package trip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/trip-service/internal/trip"
)

func validTrip() trip.Trip {
	return trip.Trip{
		ID:          "a1",
		Origin:      "SYD",
		Destination: "GRU",
		Cost:        625,
		Duration:    5,
		Type:        "flight",
		DisplayName: "from SYD to GRU by flight",
	}
}

func TestIsValidAirportCode(t *testing.T) {
	assert.True(t, trip.IsValidAirportCode("SYD"))
	assert.True(t, trip.IsValidAirportCode("GRU"))
	assert.False(t, trip.IsValidAirportCode("syd"), "codes are uppercase; match is exact")
	assert.False(t, trip.IsValidAirportCode("XXX"))
	assert.False(t, trip.IsValidAirportCode(""))
}

func TestSearchParamsValidate_OK(t *testing.T) {
	for _, sortBy := range []string{"", trip.SortFastest, trip.SortCheapest} {
		p := trip.SearchParams{Origin: "SYD", Destination: "GRU", SortBy: sortBy}
		assert.NoError(t, p.Validate(), "sort_by=%q", sortBy)
	}
}

func TestSearchParamsValidate_InvalidDestination(t *testing.T) {
	p := trip.SearchParams{Origin: "SYD", Destination: "ZZZ"}
	err := p.Validate()

	var te *trip.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "invalid destination code", te.Message)
}

func TestValidateForSave_OK(t *testing.T) {
	require.NoError(t, validTrip().ValidateForSave())

	// Zero cost and duration are valid; only negatives are rejected.
	free := validTrip()
	free.Cost = 0
	free.Duration = 0
	assert.NoError(t, free.ValidateForSave())
}

func TestValidateForSave_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*trip.Trip)
	}{
		{"id", func(t *trip.Trip) { t.ID = "" }},
		{"origin", func(t *trip.Trip) { t.Origin = "" }},
		{"destination", func(t *trip.Trip) { t.Destination = "" }},
		{"type", func(t *trip.Trip) { t.Type = "" }},
		{"display_name", func(t *trip.Trip) { t.DisplayName = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := validTrip()
			tc.mutate(&tr)
			err := tr.ValidateForSave()

			var te *trip.Error
			require.ErrorAs(t, err, &te)
			assert.Equal(t, trip.KindValidation, te.Kind)
			assert.Contains(t, te.Message, tc.name)
		})
	}
}

func TestValidateForSave_NegativeCostOrDuration(t *testing.T) {
	tr := validTrip()
	tr.Cost = -1
	require.Error(t, tr.ValidateForSave())

	tr = validTrip()
	tr.Duration = -0.5
	require.Error(t, tr.ValidateForSave())
}

func TestErrorHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, trip.E(trip.KindValidation, "x").HTTPStatus())
	assert.Equal(t, 404, trip.E(trip.KindNotFound, "x").HTTPStatus())
	assert.Equal(t, 500, trip.E(trip.KindInternal, "x").HTTPStatus())
	assert.Equal(t, 502, trip.UpstreamError(502, "x").HTTPStatus())
	assert.Equal(t, 500, trip.E(trip.KindUpstream, "x").HTTPStatus(), "upstream without status falls back to 500")
}

package region

import (
	"sort"
	"testing"

	"github.com/tj/assert"
)

func TestRegions(t *testing.T) {
	regions := Regions()

	assert.Len(t, regions, 50)
	assert.True(t, sort.StringsAreSorted(regions))
	assert.Equal(t, "Alabama", regions[0])
	assert.Equal(t, "Wyoming", regions[len(regions)-1])
}

func TestCities(t *testing.T) {
	cases := []struct {
		name      string
		region    string
		expFirst  string
		expLen    int
		expectErr bool
	}{
		{name: "exact", region: "Oregon", expFirst: "Portland", expLen: 6},
		{name: "lower case", region: "new york", expFirst: "New York City", expLen: 6},
		{name: "extra spaces", region: "  north   carolina ", expFirst: "Charlotte", expLen: 6},
		{name: "upper case", region: "CALIFORNIA", expFirst: "Los Angeles", expLen: 30},
		{name: "unknown", region: "Atlantis", expectErr: true},
		{name: "empty", region: "", expectErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cities, err := Cities(tc.region)
			if tc.expectErr {
				assert.Equal(t, ErrUnknownRegion, err)
				assert.Nil(t, cities)
				return
			}

			assert.Nil(t, err)
			assert.Len(t, cities, tc.expLen)
			assert.Equal(t, tc.expFirst, cities[0])
		})
	}
}

func TestCitiesReturnsCopy(t *testing.T) {
	cities, err := Cities("Utah")
	assert.Nil(t, err)

	cities[0] = "Atlantis"

	again, err := Cities("Utah")
	assert.Nil(t, err)
	assert.Equal(t, "Salt Lake City", again[0])
}

// Package region is the catalogue of candidate cities per US state.
package region

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownRegion is returned for regions missing from the catalogue.
var ErrUnknownRegion = errors.New("unknown region")

// major cities per state, most prominent first
var citiesByState = map[string][]string{
	"Alabama":        {"Birmingham", "Montgomery", "Mobile", "Huntsville", "Tuscaloosa"},
	"Alaska":         {"Anchorage", "Fairbanks", "Juneau", "Sitka", "Ketchikan"},
	"Arizona":        {"Phoenix", "Tucson", "Mesa", "Chandler", "Scottsdale", "Sedona", "Flagstaff"},
	"Arkansas":       {"Little Rock", "Fort Smith", "Fayetteville", "Springdale", "Jonesboro"},
	"California":     {"Los Angeles", "San Francisco", "San Diego", "Sacramento", "San Jose", "Fresno", "Long Beach", "Oakland", "Bakersfield", "Anaheim", "Santa Ana", "Riverside", "Stockton", "Irvine", "Chula Vista", "Fremont", "Santa Clarita", "San Bernardino", "Modesto", "Fontana", "Oxnard", "Moreno Valley", "Santa Rosa", "Napa", "Palm Springs", "Santa Barbara", "Monterey", "Laguna Beach", "South Lake Tahoe", "Yosemite Valley"},
	"Colorado":       {"Denver", "Colorado Springs", "Aurora", "Fort Collins", "Lakewood", "Boulder", "Aspen", "Vail"},
	"Connecticut":    {"Bridgeport", "New Haven", "Hartford", "Stamford", "Waterbury"},
	"Delaware":       {"Wilmington", "Dover", "Newark", "Middletown", "Smyrna"},
	"Florida":        {"Jacksonville", "Miami", "Tampa", "Orlando", "St. Petersburg", "Key West", "Fort Lauderdale", "Tallahassee", "Naples", "Sarasota"},
	"Georgia":        {"Atlanta", "Augusta", "Columbus", "Macon", "Savannah"},
	"Hawaii":         {"Honolulu", "Hilo", "Kailua", "Kaneohe", "Waipahu", "Lahaina", "Kihei"},
	"Idaho":          {"Boise", "Meridian", "Nampa", "Idaho Falls", "Pocatello"},
	"Illinois":       {"Chicago", "Aurora", "Rockford", "Joliet", "Naperville"},
	"Indiana":        {"Indianapolis", "Fort Wayne", "Evansville", "South Bend", "Carmel"},
	"Iowa":           {"Des Moines", "Cedar Rapids", "Davenport", "Sioux City", "Iowa City"},
	"Kansas":         {"Wichita", "Overland Park", "Kansas City", "Olathe", "Topeka"},
	"Kentucky":       {"Louisville", "Lexington", "Bowling Green", "Owensboro", "Covington"},
	"Louisiana":      {"New Orleans", "Baton Rouge", "Shreveport", "Lafayette", "Lake Charles"},
	"Maine":          {"Portland", "Lewiston", "Bangor", "South Portland", "Auburn"},
	"Maryland":       {"Baltimore", "Frederick", "Rockville", "Gaithersburg", "Annapolis"},
	"Massachusetts":  {"Boston", "Worcester", "Springfield", "Lowell", "Cambridge"},
	"Michigan":       {"Detroit", "Grand Rapids", "Warren", "Sterling Heights", "Ann Arbor"},
	"Minnesota":      {"Minneapolis", "St. Paul", "Rochester", "Duluth", "Bloomington"},
	"Mississippi":    {"Jackson", "Gulfport", "Southaven", "Hattiesburg", "Biloxi"},
	"Missouri":       {"Kansas City", "St. Louis", "Springfield", "Columbia", "Independence"},
	"Montana":        {"Billings", "Missoula", "Great Falls", "Bozeman", "Helena"},
	"Nebraska":       {"Omaha", "Lincoln", "Bellevue", "Grand Island", "Kearney"},
	"Nevada":         {"Las Vegas", "Henderson", "Reno", "North Las Vegas", "Sparks", "Carson City"},
	"New Hampshire":  {"Manchester", "Nashua", "Concord", "Derry", "Dover"},
	"New Jersey":     {"Newark", "Jersey City", "Paterson", "Elizabeth", "Trenton"},
	"New Mexico":     {"Albuquerque", "Las Cruces", "Rio Rancho", "Santa Fe", "Roswell"},
	"New York":       {"New York City", "Buffalo", "Rochester", "Yonkers", "Syracuse", "Albany"},
	"North Carolina": {"Charlotte", "Raleigh", "Greensboro", "Durham", "Winston-Salem", "Asheville"},
	"North Dakota":   {"Fargo", "Bismarck", "Grand Forks", "Minot", "West Fargo"},
	"Ohio":           {"Columbus", "Cleveland", "Cincinnati", "Toledo", "Akron"},
	"Oklahoma":       {"Oklahoma City", "Tulsa", "Norman", "Broken Arrow", "Edmond"},
	"Oregon":         {"Portland", "Salem", "Eugene", "Gresham", "Hillsboro", "Bend"},
	"Pennsylvania":   {"Philadelphia", "Pittsburgh", "Allentown", "Erie", "Reading"},
	"Rhode Island":   {"Providence", "Warwick", "Cranston", "Pawtucket", "East Providence"},
	"South Carolina": {"Columbia", "Charleston", "North Charleston", "Mount Pleasant", "Rock Hill"},
	"South Dakota":   {"Sioux Falls", "Rapid City", "Aberdeen", "Brookings", "Watertown"},
	"Tennessee":      {"Nashville", "Memphis", "Knoxville", "Chattanooga", "Clarksville"},
	"Texas":          {"Houston", "San Antonio", "Dallas", "Austin", "Fort Worth", "El Paso", "Arlington", "Corpus Christi", "Plano", "Lubbock"},
	"Utah":           {"Salt Lake City", "West Valley City", "Provo", "West Jordan", "Orem", "Park City", "Moab"},
	"Vermont":        {"Burlington", "South Burlington", "Rutland", "Essex Junction", "Bennington"},
	"Virginia":       {"Virginia Beach", "Norfolk", "Chesapeake", "Richmond", "Newport News"},
	"Washington":     {"Seattle", "Spokane", "Tacoma", "Vancouver", "Bellevue", "Olympia"},
	"West Virginia":  {"Charleston", "Huntington", "Parkersburg", "Morgantown", "Wheeling"},
	"Wisconsin":      {"Milwaukee", "Madison", "Green Bay", "Kenosha", "Racine"},
	"Wyoming":        {"Cheyenne", "Casper", "Laramie", "Gillette", "Rock Springs"},
}

// Normalize turns user input such as " new   york " into a catalogue key.
func Normalize(region string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(region), " "))
}

// Regions returns all known regions sorted by name.
func Regions() []string {
	regions := make([]string, 0, len(citiesByState))
	for r := range citiesByState {
		regions = append(regions, r)
	}

	sort.Strings(regions)

	return regions
}

// Cities returns a copy of the region's candidate cities in catalogue order.
func Cities(region string) ([]string, error) {
	cities, ok := citiesByState[Normalize(region)]
	if !ok {
		return nil, ErrUnknownRegion
	}

	out := make([]string, len(cities))
	copy(out, cities)

	return out, nil
}

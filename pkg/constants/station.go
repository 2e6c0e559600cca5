package constants

import (
	"strings"
)

// Station is identified by its lowercase API abbreviation.
type Station string

const (
	StationOaklandCityCenter12thSt Station = "12th"
	StationSFMission16thSt         Station = "16th"
	StationOakland19thSt           Station = "19th"
	StationSFMission24thSt         Station = "24th"
	StationAshby                   Station = "ashb"
	StationAntioch                 Station = "antc"
	StationBalboaPark              Station = "balb"
	StationBayFair                 Station = "bayf"
	StationBerryessa               Station = "bery"
	StationCastroValley            Station = "cast"
	StationCivicCenter             Station = "civc"
	StationColiseum                Station = "cols"
	StationColma                   Station = "colm"
	StationConcord                 Station = "conc"
	StationDalyCity                Station = "daly"
	StationDowntownBerkeley        Station = "dbrk"
	StationDublinPleasanton        Station = "dubl"
	StationElCerritoDelNorte       Station = "deln"
	StationElCerritoPlaza          Station = "plza"
	StationEmbarcadero             Station = "embr"
	StationFremont                 Station = "frmt"
	StationFruitvale               Station = "ftvl"
	StationGlenPark                Station = "glen"
	StationHayward                 Station = "hayw"
	StationLafayette               Station = "lafy"
	StationLakeMerritt             Station = "lake"
	StationMacArthur               Station = "mcar"
	StationMillbrae                Station = "mlbr"
	StationMilpitas                Station = "mlpt"
	StationMontgomerySt            Station = "mont"
	StationNorthBerkeley           Station = "nbrk"
	StationNorthConcordMartinez    Station = "ncon"
	StationOaklandIntlAirport      Station = "oakl"
	StationOrinda                  Station = "orin"
	StationPittsburgBayPoint       Station = "pitt"
	StationPittsburgCenter         Station = "pctr"
	StationPleasantHill            Station = "phil"
	StationPowellSt                Station = "powl"
	StationRichmond                Station = "rich"
	StationRockridge               Station = "rock"
	StationSanBruno                Station = "sbrn"
	StationSanFranciscoIntlAirport Station = "sfia"
	StationSanLeandro              Station = "sanl"
	StationSouthHayward            Station = "shay"
	StationSouthSanFrancisco       Station = "ssan"
	StationUnionCity               Station = "ucty"
	StationWarmSpringsSouthFremont Station = "warm"
	StationWalnutCreek             Station = "wcrk"
	StationWestDublin              Station = "wdub"
	StationWestOakland             Station = "woak"
)

var stations = table[Station]{
	kind: "station",
	entries: []entry[Station]{
		{StationOaklandCityCenter12thSt, "12th", "12th St. Oakland City Center"},
		{StationSFMission16thSt, "16th", "16th St. Mission (SF)"},
		{StationOakland19thSt, "19th", "19th St. Oakland"},
		{StationSFMission24thSt, "24th", "24th St. Mission (SF)"},
		{StationAshby, "ashb", "Ashby (Berkeley)"},
		{StationAntioch, "antc", "Antioch"},
		{StationBalboaPark, "balb", "Balboa Park (SF)"},
		{StationBayFair, "bayf", "Bay Fair (San Leandro)"},
		{StationBerryessa, "bery", "Berryessa/North San Jose"},
		{StationCastroValley, "cast", "Castro Valley"},
		{StationCivicCenter, "civc", "Civic Center (SF)"},
		{StationColiseum, "cols", "Coliseum"},
		{StationColma, "colm", "Colma"},
		{StationConcord, "conc", "Concord"},
		{StationDalyCity, "daly", "Daly City"},
		{StationDowntownBerkeley, "dbrk", "Downtown Berkeley"},
		{StationDublinPleasanton, "dubl", "Dublin/Pleasanton"},
		{StationElCerritoDelNorte, "deln", "El Cerrito del Norte"},
		{StationElCerritoPlaza, "plza", "El Cerrito Plaza"},
		{StationEmbarcadero, "embr", "Embarcadero (SF)"},
		{StationFremont, "frmt", "Fremont"},
		{StationFruitvale, "ftvl", "Fruitvale (Oakland)"},
		{StationGlenPark, "glen", "Glen Park (SF)"},
		{StationHayward, "hayw", "Hayward"},
		{StationLafayette, "lafy", "Lafayette"},
		{StationLakeMerritt, "lake", "Lake Merritt (Oakland)"},
		{StationMacArthur, "mcar", "MacArthur (Oakland)"},
		{StationMillbrae, "mlbr", "Millbrae"},
		{StationMilpitas, "mlpt", "Milpitas"},
		{StationMontgomerySt, "mont", "Montgomery St. (SF)"},
		{StationNorthBerkeley, "nbrk", "North Berkeley"},
		{StationNorthConcordMartinez, "ncon", "North Concord/Martinez"},
		{StationOaklandIntlAirport, "oakl", "Oakland Int'l Airport"},
		{StationOrinda, "orin", "Orinda"},
		{StationPittsburgBayPoint, "pitt", "Pittsburg/Bay Point"},
		{StationPittsburgCenter, "pctr", "Pittsburg Center"},
		{StationPleasantHill, "phil", "Pleasant Hill"},
		{StationPowellSt, "powl", "Powell St. (SF)"},
		{StationRichmond, "rich", "Richmond"},
		{StationRockridge, "rock", "Rockridge (Oakland)"},
		{StationSanBruno, "sbrn", "San Bruno"},
		{StationSanFranciscoIntlAirport, "sfia", "San Francisco Int'l Airport"},
		{StationSanLeandro, "sanl", "San Leandro"},
		{StationSouthHayward, "shay", "South Hayward"},
		{StationSouthSanFrancisco, "ssan", "South San Francisco"},
		{StationUnionCity, "ucty", "Union City"},
		{StationWarmSpringsSouthFremont, "warm", "Warm Springs/South Fremont"},
		{StationWalnutCreek, "wcrk", "Walnut Creek"},
		{StationWestDublin, "wdub", "West Dublin"},
		{StationWestOakland, "woak", "West Oakland"},
	},
}

func AllStations() []Station {
	return stations.values()
}

// StationFromAbbr matches an abbreviation in any case.
func StationFromAbbr(abbr string) (Station, error) {
	return stations.fromCode(strings.ToLower(abbr))
}

// StationFromName matches the exact display name.
func StationFromName(name string) (Station, error) {
	return stations.fromName(name)
}

// ParseStation accepts an abbreviation or a display name.
func ParseStation(s string) (Station, error) {
	if station, err := StationFromAbbr(s); err == nil {
		return station, nil
	}

	return StationFromName(s)
}

func (s Station) Abbr() string {
	return stations.code(s)
}

func (s Station) Name() string {
	return stations.name(s)
}

func (s Station) Valid() bool {
	_, ok := stations.lookup(s)
	return ok
}

func (s Station) String() string {
	return string(s)
}

func (s Station) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

func (s *Station) UnmarshalText(text []byte) error {
	parsed, err := ParseStation(string(text))
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

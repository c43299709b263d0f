// Package seed holds the mock tournament field used to populate an empty
// tournament. It stands in for a real field feed and is injected into the
// field service so tests can swap in their own data.
package seed

// FieldEntry is one seeded golfer: everything else about a player starts zeroed.
type FieldEntry struct {
	Name      string
	WorldRank int
	Country   string
}

// TournamentField returns the default 60-player field, ordered by world rank.
func TournamentField() []FieldEntry {
	return []FieldEntry{
		{"Scottie Scheffler", 1, "USA"},
		{"Jon Rahm", 2, "ESP"},
		{"Rory McIlroy", 3, "NIR"},
		{"Viktor Hovland", 4, "NOR"},
		{"Patrick Cantlay", 5, "USA"},
		{"Xander Schauffele", 6, "USA"},
		{"Collin Morikawa", 7, "USA"},
		{"Wyndham Clark", 8, "USA"},
		{"Ludvig Aberg", 9, "SWE"},
		{"Max Homa", 10, "USA"},
		{"Tony Finau", 11, "USA"},
		{"Jordan Spieth", 12, "USA"},
		{"Justin Thomas", 13, "USA"},
		{"Russell Henley", 14, "USA"},
		{"Brian Harman", 15, "USA"},
		{"Jason Day", 16, "AUS"},
		{"Sam Burns", 17, "USA"},
		{"Cameron Young", 18, "USA"},
		{"Tommy Fleetwood", 19, "ENG"},
		{"Hideki Matsuyama", 20, "JPN"},
		{"Keegan Bradley", 21, "USA"},
		{"Adam Scott", 22, "AUS"},
		{"Sahith Theegala", 23, "USA"},
		{"Shane Lowry", 24, "IRL"},
		{"Will Zalatoris", 25, "USA"},
		{"Tyrrell Hatton", 26, "ENG"},
		{"Corey Conners", 27, "CAN"},
		{"Si Woo Kim", 28, "KOR"},
		{"Taylor Pendrith", 29, "CAN"},
		{"Matt Fitzpatrick", 30, "ENG"},
		{"Sungjae Im", 31, "KOR"},
		{"Denny McCarthy", 32, "USA"},
		{"Tom Kim", 33, "KOR"},
		{"Chris Kirk", 34, "USA"},
		{"Billy Horschel", 35, "USA"},
		{"Nick Taylor", 36, "CAN"},
		{"Jake Knapp", 37, "USA"},
		{"Austin Eckroat", 38, "USA"},
		{"Akshay Bhatia", 39, "USA"},
		{"Davis Thompson", 40, "USA"},
		{"Rickie Fowler", 41, "USA"},
		{"Gary Woodland", 42, "USA"},
		{"Cameron Smith", 43, "AUS"},
		{"Min Woo Lee", 44, "AUS"},
		{"Lucas Glover", 45, "USA"},
		{"Emiliano Grillo", 46, "ARG"},
		{"Ryan Fox", 47, "NZL"},
		{"Sepp Straka", 48, "AUT"},
		{"Abraham Ancer", 49, "MEX"},
		{"Harris English", 50, "USA"},
		{"Kurt Kitayama", 51, "USA"},
		{"Kevin Kisner", 52, "USA"},
		{"Andrew Putnam", 53, "USA"},
		{"J.T. Poston", 54, "USA"},
		{"Eric Cole", 55, "USA"},
		{"Alex Noren", 56, "SWE"},
		{"Vincent Norrman", 57, "SWE"},
		{"Ben Griffin", 58, "USA"},
		{"Neal Shipley", 59, "USA"},
		{"Matt McCarty", 60, "USA"},
	}
}

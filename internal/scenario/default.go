package scenario

// defaultJSON is the built-in twin-isles scenario: two continents of two
// boards each, joined by one edge link and one archipelago crossing, with
// the lair in the wetland interior of the indigo continent.
const defaultJSON = `{
  "name": "twin-isles",
  "lair": "🦀P5",
  "boards": {
    "🦀P": "A",
    "🦀Q": "B",
    "🌙P": "C",
    "🌙Q": "D"
  },
  "links": [
    {"from": "🦀P:clock6", "to": "🦀Q:clock9"},
    {"from": "🌙P:clock6", "to": "🌙Q:clock9"},
    {"from": "🦀Q:clock3", "to": "🌙P:clock3"}
  ],
  "archipelagos": [["🦀P", "🌙Q"]],
  "sunken": [{"key": "🌙Q7", "deeps": true}],
  "lands": [
    {"key": "🦀P5", "scouts": 9, "camps": 1, "forts": 1, "wardens": 3},
    {"key": "🦀P1", "scouts": 2, "camps": 1, "wardens": 2},
    {"key": "🦀P4", "scouts": 1, "camps": 2, "wardens": 1},
    {"key": "🦀P6", "scouts": 1, "wardens": 4},
    {"key": "🦀P7", "camps": 1, "wardens": 2},
    {"key": "🦀P8", "scouts": 2, "forts": 1},
    {"key": "🦀Q2", "scouts": 1, "camps": 1, "wardens": 1},
    {"key": "🌙P1", "scouts": 1, "wardens": 2},
    {"key": "🌙Q4", "camps": 2, "wardens": 3}
  ]
}`

// Default returns the built-in twin-isles scenario.
func Default() (*Scenario, error) {
	return Parse([]byte(defaultJSON))
}

package pattern

// shapes are classic Game of Life forms scattered during ambient resets.
var shapes = []Pattern{
	{Name: "block", Rows: []string{
		"##",
		"##",
	}},
	{Name: "blinker", Rows: []string{
		"###",
	}},
	{Name: "toad", Rows: []string{
		".###",
		"###.",
	}},
	{Name: "beacon", Rows: []string{
		"##..",
		"##..",
		"..##",
		"..##",
	}},
	{Name: "glider", Rows: []string{
		".#.",
		"..#",
		"###",
	}},
	{Name: "r-pentomino", Rows: []string{
		".##",
		"##.",
		".#.",
	}},
}

// letters is a 5-row pixel font covering the runes the ambient banner uses.
var letters = map[rune]Pattern{
	'E': {Name: "E", Rows: []string{
		"###",
		"#..",
		"###",
		"#..",
		"###",
	}},
	'F': {Name: "F", Rows: []string{
		"###",
		"#..",
		"###",
		"#..",
		"#..",
	}},
	'G': {Name: "G", Rows: []string{
		"###",
		"#..",
		"#.#",
		"#.#",
		"###",
	}},
	'I': {Name: "I", Rows: []string{
		"###",
		".#.",
		".#.",
		".#.",
		"###",
	}},
	'L': {Name: "L", Rows: []string{
		"#..",
		"#..",
		"#..",
		"#..",
		"###",
	}},
	'O': {Name: "O", Rows: []string{
		"###",
		"#.#",
		"#.#",
		"#.#",
		"###",
	}},
	'R': {Name: "R", Rows: []string{
		"##.",
		"#.#",
		"##.",
		"#.#",
		"#.#",
	}},
	'S': {Name: "S", Rows: []string{
		"###",
		"#..",
		"###",
		"..#",
		"###",
	}},
}

package hexgrid

// RectGrid enumerates the axial coordinates of a width x height rectangle
// using an odd-row offset scheme: row r, column c maps to q = c - r/2.
// Produces exactly width*height coordinates in row-major order, no
// duplicates. Non-positive dimensions yield an empty grid.
func RectGrid(width, height int) []Hex {
	if width <= 0 || height <= 0 {
		return nil
	}
	hexes := make([]Hex, 0, width*height)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			hexes = append(hexes, Hex{Q: c - r/2, R: r})
		}
	}
	return hexes
}

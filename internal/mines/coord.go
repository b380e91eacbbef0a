package mines

func ToIndex(x, y, width int) int {
	return x + y*width
}

func ToPos(index, width int) (x, y int) {
	return index % width, index / width
}

func InBounds(x, y, width, height int) bool {
	return 0 <= x && x < width && 0 <= y && y < height
}

/*
Neighbors returns the indices of the in-bounds cells around (x, y),
excluding (x, y) itself. Rows are walked top to bottom and columns left
to right, so the result is sorted by index.
*/
func Neighbors(x, y, width, height int) []int {
	indices := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if InBounds(xx, yy, width, height) {
				indices = append(indices, ToIndex(xx, yy, width))
			}
		}
	}
	return indices
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

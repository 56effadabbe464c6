package game

const (
	Rows     = 6
	Cols     = 7
	WinCount = 5
)

type Seat string

const (
	SeatNone Seat = ""
	SeatP1   Seat = "p1"
	SeatP2   Seat = "p2"
)

// Other returns the opposing seat. SeatNone maps to itself.
func (s Seat) Other() Seat {
	switch s {
	case SeatP1:
		return SeatP2
	case SeatP2:
		return SeatP1
	}
	return SeatNone
}

// Board is the flat row-major grid: index = row*Cols + col.
type Board []Seat

func NewBoard() Board {
	return make(Board, Rows*Cols)
}

var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal down-right
	{1, -1}, // diagonal down-left
}

// CheckWin looks for a run of at least WinCount same-seat cells through the
// just-placed cell at start. It returns the full contiguous run in board
// order for the first direction that qualifies, or nil.
func CheckWin(board Board, start int) []int {
	r0, c0 := start/Cols, start%Cols
	seat := board[start]

	for _, d := range directions {
		line := []int{start}

		for r, c := r0+d[0], c0+d[1]; inBoard(r, c) && board[r*Cols+c] == seat; r, c = r+d[0], c+d[1] {
			line = append(line, r*Cols+c)
		}
		for r, c := r0-d[0], c0-d[1]; inBoard(r, c) && board[r*Cols+c] == seat; r, c = r-d[0], c-d[1] {
			line = append([]int{r*Cols + c}, line...)
		}

		if len(line) >= WinCount {
			return line
		}
	}
	return nil
}

func inBoard(r, c int) bool {
	return r >= 0 && r < Rows && c >= 0 && c < Cols
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func index(row, col int) int {
	return row*Cols + col
}

func boardWith(cells map[int]Seat) Board {
	b := NewBoard()
	for i, s := range cells {
		b[i] = s
	}
	return b
}

func TestNewBoardLength(t *testing.T) {
	require.Len(t, NewBoard(), 42)
}

func TestCheckWinHorizontal(t *testing.T) {
	b := boardWith(map[int]Seat{
		index(5, 1): SeatP1,
		index(5, 2): SeatP1,
		index(5, 3): SeatP1,
		index(5, 4): SeatP1,
		index(5, 5): SeatP1,
	})

	line := CheckWin(b, index(5, 3))
	require.Equal(t, []int{index(5, 1), index(5, 2), index(5, 3), index(5, 4), index(5, 5)}, line)
}

func TestCheckWinVertical(t *testing.T) {
	b := boardWith(map[int]Seat{
		index(1, 2): SeatP2,
		index(2, 2): SeatP2,
		index(3, 2): SeatP2,
		index(4, 2): SeatP2,
		index(5, 2): SeatP2,
	})

	line := CheckWin(b, index(1, 2))
	require.Equal(t, []int{index(1, 2), index(2, 2), index(3, 2), index(4, 2), index(5, 2)}, line)
}

func TestCheckWinDiagonalDownRight(t *testing.T) {
	b := boardWith(map[int]Seat{
		index(1, 1): SeatP1,
		index(2, 2): SeatP1,
		index(3, 3): SeatP1,
		index(4, 4): SeatP1,
		index(5, 5): SeatP1,
	})

	line := CheckWin(b, index(3, 3))
	require.Equal(t, []int{index(1, 1), index(2, 2), index(3, 3), index(4, 4), index(5, 5)}, line)
}

func TestCheckWinDiagonalDownLeft(t *testing.T) {
	b := boardWith(map[int]Seat{
		index(1, 5): SeatP2,
		index(2, 4): SeatP2,
		index(3, 3): SeatP2,
		index(4, 2): SeatP2,
		index(5, 1): SeatP2,
	})

	line := CheckWin(b, index(1, 5))
	require.Equal(t, []int{index(1, 5), index(2, 4), index(3, 3), index(4, 2), index(5, 1)}, line)
}

func TestCheckWinFourIsNotEnough(t *testing.T) {
	b := boardWith(map[int]Seat{
		index(5, 0): SeatP1,
		index(5, 1): SeatP1,
		index(5, 2): SeatP1,
		index(5, 3): SeatP1,
	})

	require.Nil(t, CheckWin(b, index(5, 3)))
}

func TestCheckWinReturnsFullRun(t *testing.T) {
	cells := make(map[int]Seat)
	for col := 0; col < 6; col++ {
		cells[index(5, col)] = SeatP2
	}
	b := boardWith(cells)

	line := CheckWin(b, index(5, 2))
	require.Len(t, line, 6)
	require.Contains(t, line, index(5, 2))
	for _, i := range line {
		require.Equal(t, SeatP2, b[i])
	}
}

func TestCheckWinOpponentPieceBreaksRun(t *testing.T) {
	b := boardWith(map[int]Seat{
		index(5, 0): SeatP1,
		index(5, 1): SeatP1,
		index(5, 2): SeatP2,
		index(5, 3): SeatP1,
		index(5, 4): SeatP1,
		index(5, 5): SeatP1,
	})

	require.Nil(t, CheckWin(b, index(5, 4)))
}

func TestCheckWinAtBoardEdges(t *testing.T) {
	b := boardWith(map[int]Seat{
		index(5, 6): SeatP1,
		index(4, 6): SeatP1,
		index(3, 6): SeatP1,
		index(2, 6): SeatP1,
		index(1, 6): SeatP1,
	})

	line := CheckWin(b, index(1, 6))
	require.Equal(t, []int{index(1, 6), index(2, 6), index(3, 6), index(4, 6), index(5, 6)}, line)
}

func TestSeatOther(t *testing.T) {
	require.Equal(t, SeatP2, SeatP1.Other())
	require.Equal(t, SeatP1, SeatP2.Other())
	require.Equal(t, SeatNone, SeatNone.Other())
}

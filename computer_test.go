package slippi

import "testing"

func gameWithFrames(lastFrameStocks map[int]uint8) *Game {
	f := newFrame(0)
	for port, stocks := range lastFrameStocks {
		pf := f.port(port)
		pf.Leader = &CharacterFrame{Post: &PostFrame{StocksRemaining: stocks}}
	}
	return &Game{Frames: []Frame{*f}}
}

func TestDeriveWinnersPlacementsTakePriority(t *testing.T) {
	placements := [4]int8{1, 0, -1, -1}
	g := &Game{
		End:    &End{PlayerPlacements: &placements},
		Frames: nil,
	}
	winners := deriveWinners(g, []int{0, 1})
	if winners[0] || !winners[1] {
		t.Errorf("winners = %v, want port 1 to win per placements", winners)
	}
}

func TestDeriveWinnersLRASOpponentWins(t *testing.T) {
	initiator := uint8(0)
	g := &Game{End: &End{LRASInitiatorPort: &initiator}}
	winners := deriveWinners(g, []int{0, 1})
	if winners[0] || !winners[1] {
		t.Errorf("winners = %v, want port 1 (opponent of the LRAS initiator) to win", winners)
	}
}

func TestDeriveWinnersStockTiebreak(t *testing.T) {
	g := gameWithFrames(map[int]uint8{0: 2, 1: 0})
	g.End = &End{}
	winners := deriveWinners(g, []int{0, 1})
	if !winners[0] || winners[1] {
		t.Errorf("winners = %v, want port 0 (more stocks on the last frame) to win", winners)
	}
}

func TestDeriveWinnersStockTieYieldsNoWinner(t *testing.T) {
	g := gameWithFrames(map[int]uint8{0: 2, 1: 2})
	g.End = &End{}
	winners := deriveWinners(g, []int{0, 1})
	if winners[0] || winners[1] {
		t.Errorf("winners = %v, want neither port to win on an exact stock tie", winners)
	}
}

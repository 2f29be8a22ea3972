package slippi

// Computer binds a parsed Game to its two Player aggregates, grounded on
// original_source/slippistats/stats/computer.py's ComputerBase.prime_replay.
// Detector functions operate on a Computer's Players, not on the raw Game.
type Computer struct {
	Game    *Game
	Players [2]*Player
}

// NewComputer parses path and primes a Computer from it.
func NewComputer(path string) (*Computer, error) {
	g, err := NewGameFromFile(path)
	if err != nil {
		return nil, err
	}
	return PrimeReplay(g)
}

// PrimeReplay builds a Computer from an already-parsed Game, validating
// that it has exactly two human players (spec.md §7, PlayerCountError) and
// deriving each one's win/loss flag.
func PrimeReplay(g *Game) (*Computer, error) {
	if g.Start == nil {
		return nil, newPlayerCountError(0)
	}

	var ports []int
	for i, slot := range g.Start.Players {
		if slot.Type == Human && !slot.Empty() {
			ports = append(ports, i)
		}
	}
	if len(ports) != 2 {
		return nil, newPlayerCountError(len(ports))
	}

	winners := deriveWinners(g, ports)

	c := &Computer{Game: g}
	for i, port := range ports {
		slot := g.Start.Players[port]

		p := &Player{
			Port:        port,
			Character:   asLeaderCharacter(InGameCharacter(slot.CharacterCSSID)),
			Costume:     slot.CostumeID,
			ConnectCode: slot.ConnectCode,
			DisplayName: slot.DisplayName,
			DidWin:      winners[port],
		}
		if g.Metadata != nil {
			if pm, ok := g.Metadata.Players[port]; ok {
				if pm.ConnectCode != "" {
					p.ConnectCode = pm.ConnectCode
				}
				if pm.DisplayName != "" {
					p.DisplayName = pm.DisplayName
				}
			}
		}

		p.Frames = make([]*CharacterFrame, len(g.Frames))
		isIceClimbers := p.Character == CharPopo
		if isIceClimbers {
			p.FollowerFrames = make([]*CharacterFrame, len(g.Frames))
		}
		for fi := range g.Frames {
			pf := g.Frames[fi].Ports[port]
			if pf == nil {
				continue
			}
			p.Frames[fi] = pf.Leader
			if isIceClimbers {
				p.FollowerFrames[fi] = pf.Follower
			}
		}

		c.Players[i] = p
	}

	return c, nil
}

// deriveWinners implements spec.md §4.4's win/loss rule: placements take
// priority when present; otherwise the LRAS (Lost Race Against Stage,
// i.e. the player who quit) initiator's opponent wins; otherwise the
// player with more stocks remaining on the last frame wins.
func deriveWinners(g *Game, ports []int) map[int]bool {
	winners := map[int]bool{ports[0]: false, ports[1]: false}
	if g.End == nil {
		return winners
	}

	if g.End.PlayerPlacements != nil {
		for _, port := range ports {
			if (*g.End.PlayerPlacements)[port] == 0 {
				winners[port] = true
			}
		}
		return winners
	}

	if g.End.LRASInitiatorPort != nil {
		initiator := int(*g.End.LRASInitiatorPort)
		for _, port := range ports {
			if port != initiator {
				winners[port] = true
			}
		}
		return winners
	}

	if len(g.Frames) == 0 {
		return winners
	}
	last := g.Frames[len(g.Frames)-1]
	var bestPort int
	var bestStocks int = -1
	tie := false
	for _, port := range ports {
		pf := last.Ports[port]
		if pf == nil || pf.Leader == nil || pf.Leader.Post == nil {
			continue
		}
		stocks := int(pf.Leader.Post.StocksRemaining)
		if stocks > bestStocks {
			bestStocks = stocks
			bestPort = port
			tie = false
		} else if stocks == bestStocks {
			tie = true
		}
	}
	if !tie && bestStocks >= 0 {
		winners[bestPort] = true
	}
	return winners
}

// ComputeStats runs all detectors for both players, grounded on
// original_source/slippistats/stats/stats_computer.py's stats_compute,
// which runs each detector for a player against its opponent in turn.
func (c *Computer) ComputeStats() {
	if c.Game.Start == nil {
		return
	}
	stage := c.Game.Start.Stage

	for i, p := range c.Players {
		if p == nil {
			continue
		}
		opponent := c.Players[1-i]

		DetectWavedashes(p)
		DetectDashes(p)
		if opponent != nil {
			DetectTechs(p, opponent)
			DetectTakeHits(p, opponent)
		}
		DetectLCancels(p, stage)
		DetectShieldDrops(p, stage)
		DetectCombos(p)
	}
}

// GetPlayer resolves a player by connect code or port index, per
// computer.py's get_player.
func (c *Computer) GetPlayer(identifier interface{}) (*Player, error) {
	switch id := identifier.(type) {
	case string:
		for _, p := range c.Players {
			if p.ConnectCode == id {
				return p, nil
			}
		}
		return nil, newIdentifierError(identifier)
	case int:
		for _, p := range c.Players {
			if p.Port == id {
				return p, nil
			}
		}
		return nil, newIdentifierError(identifier)
	default:
		return nil, newIdentifierError(identifier)
	}
}

// GetOpponent resolves the player opposite the one identifier names.
func (c *Computer) GetOpponent(identifier interface{}) (*Player, error) {
	p, err := c.GetPlayer(identifier)
	if err != nil {
		return nil, err
	}
	for _, other := range c.Players {
		if other != p {
			return other, nil
		}
	}
	return nil, newIdentifierError(identifier)
}

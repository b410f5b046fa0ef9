package entity

// Player - a match participant. Name authenticates move requests, Color is fixed at creation.
type Player struct {
	Name  string
	Color Marble

	captured int
}

func NewPlayer(name string, color Marble) *Player {
	return &Player{Name: name, Color: color}
}

// Captured - returns the number of neutral marbles this player has pushed off the board.
func (that *Player) Captured() int {
	return that.captured
}

// AddCapture - credits an ejected marble. Only neutral marbles count.
func (that *Player) AddCapture(marble Marble) {
	if marble == MarbleNeutral {
		that.captured++
	}
}

// SetCaptureCount - restores a previously recorded count during Ko rollback.
func (that *Player) SetCaptureCount(count int) {
	that.captured = count
}

package tiltdodge

// Session holds the score and the game-over flag of one round.
// The zero value is a fresh round in the playing state.
type Session struct {
	score int
	over  bool
}

// Score returns the number of obstacles that passed the floor.
func (s *Session) Score() int {
	return s.score
}

// IsOver reports whether the ball has been hit.
func (s *Session) IsOver() bool {
	return s.over
}

// RecordFloorPass adds a point unless the round is over.
// It reports whether the score changed.
func (s *Session) RecordFloorPass() bool {
	if s.over {
		return false
	}
	s.score++
	return true
}

// RecordCollisionWithBall ends the round. It reports true only for the
// call that performed the transition; later calls are no-ops.
func (s *Session) RecordCollisionWithBall() bool {
	if s.over {
		return false
	}
	s.over = true
	return true
}

// reset returns the session to a fresh playing state.
func (s *Session) reset() {
	s.score = 0
	s.over = false
}

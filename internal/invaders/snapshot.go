package invaders

// Snapshot contains the complete session state in primitive types.
// Used to compare runs for determinism.
type Snapshot struct {
	Tick    uint64
	State   string
	PlayerX int
	PlayerY int

	FormationDX int

	// Each bullet is 2 ints: X, Y
	BulletData []int

	// Each enemy is 2 ints: X, Y
	EnemyData []int

	MoveLeft  bool
	MoveRight bool
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	bullets := make([]int, 0, len(s.bullets)*2)
	for _, b := range s.bullets {
		bullets = append(bullets, b.X, b.Y)
	}

	enemies := make([]int, 0, len(s.formation.Enemies)*2)
	for _, e := range s.formation.Enemies {
		enemies = append(enemies, e.X, e.Y)
	}

	return Snapshot{
		Tick:        s.tick,
		State:       s.state.String(),
		PlayerX:     s.player.X,
		PlayerY:     s.player.Y,
		FormationDX: s.formation.DX,
		BulletData:  bullets,
		EnemyData:   enemies,
		MoveLeft:    s.input.MoveLeft,
		MoveRight:   s.input.MoveRight,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FormationDX) //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.BulletData))
	h = h*31 + uint64(len(snap.EnemyData))

	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + boolBit(snap.MoveLeft)
	h = h*31 + boolBit(snap.MoveRight)
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

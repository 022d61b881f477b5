package engine

// Settings holds the tunables of a board. Durations are in seconds.
type Settings struct {
	TimeLimit       float64
	SwapDuration    float64
	FallDuration    float64
	ImplodeDuration float64
	SpawnDuration   float64
	DestroyerSpeed  float64 // cells per second
	PulsePeriod     float64
	Kinds           int // number of token kinds in play, 3..KindCount
}

// DefaultSettings returns the classic one-minute game.
func DefaultSettings() Settings {
	return Settings{
		TimeLimit:       60,
		SwapDuration:    0.3,
		FallDuration:    0.3,
		ImplodeDuration: 0.3,
		SpawnDuration:   0.3,
		DestroyerSpeed:  10,
		PulsePeriod:     1,
		Kinds:           KindCount,
	}
}

func (s Settings) kinds() int {
	if s.Kinds < MinComboLen || s.Kinds > KindCount {
		return KindCount
	}
	return s.Kinds
}

package team

// Lite is the team shape embedded into matches and standings.
type Lite struct {
	ID        int64
	Name      string
	ShortName string
	TLA       string
	Crest     string
}

// Team is the full team profile.
type Team struct {
	ID        int64
	Name      string
	ShortName string
	TLA       string
	Crest     string
	Venue     string
	Founded   *int
	Country   string
}

func (t Team) Lite() Lite {
	return Lite{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
		TLA:       t.TLA,
		Crest:     t.Crest,
	}
}

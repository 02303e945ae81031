package models

// Catalog is the static data every session reads. It is built once at
// startup and must not be mutated afterwards.
type Catalog struct {
	RideOptions     []*RideOption     `json:"ride_options"`
	Areas           []*Area           `json:"areas"`
	Driver          Driver            `json:"driver"`
	SeedTranscript  []ScriptedMessage `json:"-"`
	DriverReply     string            `json:"-"`
	QuickReplies    []string          `json:"quick_replies"`
	Institutions    []Institution     `json:"institutions"`
	DefaultLocation string            `json:"default_location"`
}

func DefaultCatalog() *Catalog {
	return &Catalog{
		RideOptions:     DefaultRideOptions(),
		Areas:           DefaultAreas(),
		Driver:          MockDriver(),
		SeedTranscript:  DefaultSeedTranscript(),
		DriverReply:     DriverReply,
		QuickReplies:    DefaultQuickReplies(),
		Institutions:    DefaultInstitutions(),
		DefaultLocation: "Nelspruit",
	}
}

func (c *Catalog) RideByID(id string) (*RideOption, bool) {
	for _, r := range c.RideOptions {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

func (c *Catalog) AreaNames() []string {
	names := make([]string, 0, len(c.Areas))
	for _, a := range c.Areas {
		names = append(names, a.Name)
	}
	return names
}

func (c *Catalog) InstitutionByID(id string) (Institution, bool) {
	for _, i := range c.Institutions {
		if i.ID == id {
			return i, true
		}
	}
	return Institution{}, false
}

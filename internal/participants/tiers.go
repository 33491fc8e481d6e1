package participants

// Tier is a reward milestone unlocked at a fixed number of distinct scans.
type Tier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	RequiredScans int    `json:"required_scans"`
}

var knownTiers = []Tier{
	{ID: "tier1", Name: "Wheel Spin", RequiredScans: 1},
	{ID: "tier3", Name: "Holofoil Card", RequiredScans: 3},
	{ID: "tier6", Name: "OV Pack", RequiredScans: 6},
	{ID: "tier12", Name: "IE Pack", RequiredScans: 12},
	{ID: "tier18", Name: "Custom Card", RequiredScans: 18},
}

// Tiers returns the reward tiers in ascending unlock order.
func Tiers() []Tier {
	out := make([]Tier, len(knownTiers))
	copy(out, knownTiers)
	return out
}

// TierByID looks up a tier by its identifier.
func TierByID(id string) (Tier, bool) {
	for _, t := range knownTiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}

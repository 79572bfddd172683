package types

// Expansion enumeration for expansions
type Expansion string

const (
	ExpansionCreators     Expansion = "creators"
	ExpansionAttributes   Expansion = "attributes"
	ExpansionOffers       Expansion = "offers"
	ExpansionListings     Expansion = "listings"
	ExpansionPurchases    Expansion = "purchases"
	ExpansionCollection   Expansion = "collection"
	ExpansionOwnerProfile Expansion = "owner_profile"
)

// Valid checks if an expansion is valid
func (e Expansion) Valid() bool {
	return e == ExpansionCreators ||
		e == ExpansionAttributes ||
		e == ExpansionOffers ||
		e == ExpansionListings ||
		e == ExpansionPurchases ||
		e == ExpansionCollection ||
		e == ExpansionOwnerProfile
}

// Expansions is a set of requested expansions
type Expansions map[Expansion]bool

// NewExpansions builds a set from a list of expansions, ignoring invalid ones
func NewExpansions(expand []Expansion) Expansions {
	set := make(Expansions, len(expand))
	for _, e := range expand {
		if e.Valid() {
			set[e] = true
		}
	}
	return set
}

// Has reports whether e was requested
func (s Expansions) Has(e Expansion) bool {
	return s[e]
}

package models

// Unknown is the sentinel shown for facts missing everywhere in the lookup chain.
const Unknown = "Không rõ"

// FactBundle is the merged description/price/origin/image record of a vaccine.
type FactBundle struct {
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Origin      string `json:"origin"`
	Image       string `json:"image"`
}

// IsEmpty reports a total lookup failure.
func (f FactBundle) IsEmpty() bool {
	return f == FactBundle{}
}

// DescriptionOrUnknown returns the description or the unknown sentinel.
func (f FactBundle) DescriptionOrUnknown() string {
	if f.Description == "" {
		return Unknown
	}
	return f.Description
}

// OriginOrUnknown returns the origin or the unknown sentinel.
func (f FactBundle) OriginOrUnknown() string {
	if f.Origin == "" {
		return Unknown
	}
	return f.Origin
}

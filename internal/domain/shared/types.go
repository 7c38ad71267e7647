package shared

// ElementType is an elemental type token such as FIRE or DRAGON
type ElementType string

// TypeNone marks an empty type slot
const TypeNone ElementType = ""

// Ability is an ability token such as TOUGHCLAWS
type Ability string

// AbilityNone means no ability override
const AbilityNone Ability = ""

// CompactTypes drops empty slots while keeping order
func CompactTypes(types ...ElementType) []ElementType {
	out := make([]ElementType, 0, len(types))
	for _, t := range types {
		if t != TypeNone {
			out = append(out, t)
		}
	}
	return out
}

package shared

import "strings"

// Stat names one of the six base stats
type Stat string

const (
	StatHP             Stat = "HP"
	StatAttack         Stat = "ATTACK"
	StatDefense        Stat = "DEFENSE"
	StatSpecialAttack  Stat = "SPECIAL_ATTACK"
	StatSpecialDefense Stat = "SPECIAL_DEFENSE"
	StatSpeed          Stat = "SPEED"
)

// Stats lists the canonical stats in display order
var Stats = []Stat{StatHP, StatAttack, StatDefense, StatSpecialAttack, StatSpecialDefense, StatSpeed}

// NormalizeStat maps legacy and loosely written stat names onto the canonical keys.
// SPATK and SPDEF are the abbreviations older data files use.
func NormalizeStat(s Stat) Stat {
	key := strings.ToUpper(strings.TrimSpace(string(s)))
	key = strings.ReplaceAll(key, " ", "_")

	switch key {
	case "SPATK", "SP_ATK":
		return StatSpecialAttack
	case "SPDEF", "SP_DEF":
		return StatSpecialDefense
	}
	return Stat(key)
}

// StatSet is a base stat block
type StatSet map[Stat]int

// Clone returns a copy with every canonical stat present
func (s StatSet) Clone() StatSet {
	out := make(StatSet, len(Stats))
	for _, stat := range Stats {
		out[stat] = 0
	}
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Total sums the canonical stats
func (s StatSet) Total() int {
	total := 0
	for _, stat := range Stats {
		total += s[stat]
	}
	return total
}

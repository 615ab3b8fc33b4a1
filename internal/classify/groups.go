package classify

import "fmt"

const (
	Fraldinha = "Fraldinha"
	Mirim     = "Mirim"
	Infantil  = "Infantil"
	Cadete    = "Cadete"
	Juvenil   = "Juvenil"
	Adulto    = "Adulto"
	Master1   = "Master 1"
	Master2   = "Master 2"
	Master3   = "Master 3"
)

type ageGroup struct {
	name   string
	code   string
	maxAge int
}

// Upper bounds are inclusive. This is the table used when matching
// registrations to classifications.
var ageGroups = []ageGroup{
	{Fraldinha, "FR", 6},
	{Mirim, "MI", 9},
	{Infantil, "IN", 11},
	{Cadete, "CA", 14},
	{Juvenil, "JU", 17},
	{Adulto, "AD", 30},
	{Master1, "M1", 34},
	{Master2, "M2", 44},
	{Master3, "M3", -1},
}

// AgeGroupOf returns the age group name for an age in whole years.
func AgeGroupOf(age int) string {
	for _, g := range ageGroups {
		if g.maxAge < 0 || age <= g.maxAge {
			return g.name
		}
	}
	return Master3
}

// AgeGroups lists the group names youngest first.
func AgeGroups() []string {
	names := make([]string, len(ageGroups))
	for i, g := range ageGroups {
		names[i] = g.name
	}
	return names
}

func ageCode(name string) (string, bool) {
	for _, g := range ageGroups {
		if g.name == name {
			return g.code, true
		}
	}
	return "", false
}

const (
	MinBeltGroup = 1
	MaxBeltGroup = 4
)

// BeltGroupOf maps belt levels 1-3, 4-6, 7-9 and 10-11 to groups 1 to 4.
func BeltGroupOf(beltLevel int) int {
	switch {
	case beltLevel <= 3:
		return 1
	case beltLevel <= 6:
		return 2
	case beltLevel <= 9:
		return 3
	default:
		return 4
	}
}

func BeltGroupLabel(group int) string {
	switch group {
	case 1:
		return "Grupo 1 (faixas 1-3)"
	case 2:
		return "Grupo 2 (faixas 4-6)"
	case 3:
		return "Grupo 3 (faixas 7-9)"
	case 4:
		return "Grupo 4 (faixas 10-11)"
	}
	return fmt.Sprintf("Grupo %d", group)
}

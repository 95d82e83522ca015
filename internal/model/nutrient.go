package model

// Nutrient identifies one tracked quantity.
type Nutrient int

const (
	Calories Nutrient = iota
	Protein
	Carbs
	Fat
)

// Nutrients lists every tracked nutrient in display order.
var Nutrients = []Nutrient{Calories, Protein, Carbs, Fat}

// String returns the lowercase key used in config and tables.
func (n Nutrient) String() string {
	switch n {
	case Calories:
		return "calories"
	case Protein:
		return "protein"
	case Carbs:
		return "carbs"
	case Fat:
		return "fat"
	default:
		return "unknown"
	}
}

// Label returns the display name.
func (n Nutrient) Label() string {
	switch n {
	case Calories:
		return "Calories"
	case Protein:
		return "Protein"
	case Carbs:
		return "Carbs"
	case Fat:
		return "Fat"
	default:
		return "?"
	}
}

// Unit returns the display unit.
func (n Nutrient) Unit() string {
	if n == Calories {
		return "kcal"
	}
	return "g"
}

// Value picks this nutrient out of t.
func (n Nutrient) Value(t Totals) float64 {
	switch n {
	case Calories:
		return t.Calories
	case Protein:
		return t.Protein
	case Carbs:
		return t.Carbs
	case Fat:
		return t.Fat
	}
	return 0
}

// Target picks this nutrient's goal out of t.
func (n Nutrient) Target(t Targets) float64 {
	switch n {
	case Calories:
		return t.Calories
	case Protein:
		return t.Protein
	case Carbs:
		return t.Carbs
	case Fat:
		return t.Fat
	}
	return 0
}

package menu

import (
	"github.com/pollosrrj/pos/internal/service/models/cartline"
)

// Option values as they appear on the menu. "Ninguna" is the empty choice
// for food, variant and soda.
const (
	FoodBroaster  = "Pollo Broaster"
	FoodPlancha   = "Pollo a la Plancha"
	FoodBurger    = "Hamburguesa"
	FoodSalchi    = "Salchipapa"
	FoodPortion   = "Solo Porción"
	FoodNone      = "Ninguna"
	VariantNormal = "Normal (Arroz y Papa)"
	VariantPapa   = "Solo Papa"
	VariantArroz  = "Solo Arroz"
	VariantNone   = "Ninguna"
	SodaNone      = "Ninguna"
)

// Quantity bounds for a single cart add.
const (
	MinQty = 1
	MaxQty = 20
)

var (
	Foods    = []string{FoodBroaster, FoodPlancha, FoodBurger, FoodSalchi, FoodPortion, FoodNone}
	Cuts     = []string{"Ala", "Pierna", "Contra", "Pecho"}
	Variants = []string{VariantNormal, VariantPapa, VariantArroz, VariantNone}
	Sodas    = []string{SodaNone, "Mendocina 3L", "Mendocina 1L", "Coca 3L", "Coca Peque", "Oro Peque"}
)

// sodaPrices is the flat price-per-size table.
var sodaPrices = map[string]float64{
	"Mendocina 3L": 15,
	"Mendocina 1L": 7,
	"Coca 3L":      20,
	"Coca Peque":   5,
	"Oro Peque":    3,
}

// Selection is the immutable per-add selector state. Constraint resolution
// and pricing are pure functions over it.
type Selection struct {
	Food    string `json:"food"`
	Cut     string `json:"cut"`
	Variant string `json:"variant"`
	Soda    string `json:"soda"`
	FoodQty int    `json:"foodQty"`
	SodaQty int    `json:"sodaQty"`
}

// DefaultSelection is the selector state a fresh order form starts with.
func DefaultSelection() Selection {
	return Selection{
		Food:    FoodBroaster,
		Cut:     "Pierna",
		Variant: VariantNormal,
		Soda:    SodaNone,
		FoodQty: 1,
		SodaQty: 1,
	}
}

// Enablement says which selectors are active for the current selection.
type Enablement struct {
	Food    bool `json:"food"`
	Cut     bool `json:"cut"`
	Variant bool `json:"variant"`
	FoodQty bool `json:"foodQty"`
}

// ResolveConstraints applies the cross-field enablement matrix:
// a chosen soda freezes the whole food side; otherwise the food drives
// which of cut and variant are selectable.
func ResolveConstraints(sel Selection) Enablement {
	if sel.Soda != SodaNone {
		return Enablement{}
	}

	e := Enablement{Food: true, FoodQty: true}
	if sel.Food == FoodNone {
		return e
	}

	e.Cut = sel.Food == FoodBroaster

	switch sel.Food {
	case FoodBurger, FoodSalchi, FoodPlancha:
		e.Variant = false
	default:
		e.Variant = true
	}

	return e
}

// Resolve prices the current selection. The food side is priced only when
// no soda is chosen; at most one of the two classes contributes per add.
func Resolve(sel Selection) (foodPrice float64, foodDesc string, sodaPrice float64, sodaDesc string) {
	if sel.Soda == SodaNone && sel.Food != FoodNone {
		switch sel.Food {
		case FoodBroaster:
			base := 16.0
			if sel.Cut == "Pecho" {
				base = 18
			}
			if sel.Variant == VariantPapa {
				base++
			}
			foodPrice = base
			foodDesc = "Pollo " + sel.Cut
			if sel.Variant != VariantNormal {
				foodDesc += " [" + sel.Variant + "]"
			}
		case FoodPlancha:
			foodPrice, foodDesc = 20, "Pollo Plancha"
		case FoodBurger:
			foodPrice, foodDesc = 17, "Hamburguesa"
		case FoodSalchi:
			foodPrice, foodDesc = 16, "Salchipapa"
		case FoodPortion:
			switch sel.Variant {
			case VariantNormal:
				foodPrice = 8
			case VariantPapa:
				foodPrice = 7
			default:
				foodPrice = 4
			}
			foodDesc = "Porción " + sel.Variant
		}
	}

	if p, ok := sodaPrices[sel.Soda]; ok {
		sodaPrice = p
		sodaDesc = sel.Soda
	}

	return foodPrice, foodDesc, sodaPrice, sodaDesc
}

// Lines turns one add action into zero, one or two cart lines, with each
// quantity clamped to the menu bounds.
func Lines(sel Selection) []cartline.CartLine {
	foodPrice, foodDesc, sodaPrice, sodaDesc := Resolve(sel)

	var lines []cartline.CartLine
	if foodPrice > 0 {
		lines = append(lines, cartline.New(clampQty(sel.FoodQty), foodDesc, foodPrice))
	}
	if sodaPrice > 0 {
		lines = append(lines, cartline.New(clampQty(sel.SodaQty), sodaDesc, sodaPrice))
	}

	return lines
}

func clampQty(q int) int {
	if q < MinQty {
		return MinQty
	}
	if q > MaxQty {
		return MaxQty
	}

	return q
}

package menuoptions

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/pollosrrj/pos/internal/service/models/cartline"
	"github.com/pollosrrj/pos/internal/service/models/delivery"
	"github.com/pollosrrj/pos/internal/service/models/menu"
)

// menuRequest is the current selector state the client wants resolved.
type menuRequest struct {
	Food    string `schema:"food,omitempty"`
	Cut     string `schema:"cut,omitempty"`
	Variant string `schema:"variant,omitempty"`
	Soda    string `schema:"soda,omitempty"`
	FoodQty int    `schema:"foodQty,omitempty"`
	SodaQty int    `schema:"sodaQty,omitempty"`
}

type menuResponse struct {
	Foods      []string            `json:"foods"`
	Cuts       []string            `json:"cuts"`
	Variants   []string            `json:"variants"`
	Sodas      []string            `json:"sodas"`
	Deliveries []string            `json:"deliveries"`
	Enablement menu.Enablement     `json:"enablement"`
	Lines      []cartline.CartLine `json:"lines"`
}

// Options returns the fixed option lists plus, for the selection passed
// in the query, the enablement matrix and the line(s) an add would price.
// The client renders this; it never prices anything itself.
func Options(w http.ResponseWriter, r *http.Request) {
	decoder := schema.NewDecoder()
	req := &menuRequest{}
	if err := decoder.Decode(req, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request", "error", err)

		return
	}

	sel := menu.DefaultSelection()
	if req.Food != "" {
		sel.Food = req.Food
	}
	if req.Cut != "" {
		sel.Cut = req.Cut
	}
	if req.Variant != "" {
		sel.Variant = req.Variant
	}
	if req.Soda != "" {
		sel.Soda = req.Soda
	}
	if req.FoodQty > 0 {
		sel.FoodQty = req.FoodQty
	}
	if req.SodaQty > 0 {
		sel.SodaQty = req.SodaQty
	}

	resp := menuResponse{
		Foods:    menu.Foods,
		Cuts:     menu.Cuts,
		Variants: menu.Variants,
		Sodas:    menu.Sodas,
		Deliveries: []string{
			delivery.TypeDineIn.String(),
			delivery.TypeTakeoutPerson.String(),
			delivery.TypeTakeoutMoto.String(),
		},
		Enablement: menu.ResolveConstraints(sel),
		Lines:      menu.Lines(sel),
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response", "error", err)
	}
}

// Package catalog holds the static furniture price catalog and the per-room
// scene templates used by the render pipeline. Everything here is built at
// process start and never mutated.
package catalog

import (
	"strings"

	"interioai-backend/internal/models"
)

// DefaultRoomKey is the room every unknown room type falls back to.
const DefaultRoomKey = "bedroom"

// RoomFurnishings maps a furniture category to its ordered item variants.
type RoomFurnishings map[string][]models.CatalogItem

var furniture = map[string]RoomFurnishings{
	"bedroom": {
		"bed": {
			{Type: "Single (90x200cm)", Wood: "Plywood", Thickness: 18, Grade: "BWR", RatePerSqft: 100, AreaSqft: 36, Total: 3600, Lifetime: "5-8", Budget: models.BudgetTierBudget, Multiplyable: true},
			{Type: "Double (120x200cm)", Wood: "MDF", Thickness: 12, Grade: "MR", RatePerSqft: 70, AreaSqft: 48, Total: 3360, Lifetime: "4-7", Budget: models.BudgetTierBudget, Multiplyable: true},
			{Type: "Queen (160x200cm)", Wood: "Engineered", Thickness: 18, Grade: "BWP", RatePerSqft: 450, AreaSqft: 64, Total: 28800, Lifetime: "8-12", Budget: models.BudgetTierMiddle, Multiplyable: true},
			{Type: "King (180x200cm)", Wood: "Pine", Thickness: 25, Grade: "Solid A", RatePerSqft: 600, AreaSqft: 72, Total: 43200, Lifetime: "12-20", Budget: models.BudgetTierMiddle, Multiplyable: true},
			{Type: "King (180x200cm)", Wood: "Sheesham", Thickness: 25, Grade: "Solid A", RatePerSqft: 1000, AreaSqft: 72, Total: 72000, Lifetime: "15-25", Budget: models.BudgetTierPremium, Multiplyable: true},
			{Type: "Extra Large (200x200cm)", Wood: "Teak", Thickness: 25, Grade: "Solid AA", RatePerSqft: 2000, AreaSqft: 80, Total: 160000, Lifetime: "50+", Budget: models.BudgetTierPremium, Multiplyable: true},
		},
		"wardrobe": {
			{Type: "3-door (6x7ft)", Wood: "Plywood", Thickness: 12, Grade: "BWR", RatePerSqft: 90, AreaSqft: 120, Total: 10800, Lifetime: "5-8", Budget: models.BudgetTierBudget, Multiplyable: false},
			{Type: "4-door (7x7ft)", Wood: "MDF", Thickness: 18, Grade: "MR", RatePerSqft: 100, AreaSqft: 140, Total: 14000, Lifetime: "6-10", Budget: models.BudgetTierBudget, Multiplyable: false},
			{Type: "4-door w/drawers (8x7ft)", Wood: "Pine", Thickness: 25, Grade: "Solid A", RatePerSqft: 650, AreaSqft: 160, Total: 104000, Lifetime: "15-20", Budget: models.BudgetTierMiddle, Multiplyable: false},
			{Type: "Designer (8x8ft)", Wood: "Teak", Thickness: 25, Grade: "Solid AA", RatePerSqft: 2200, AreaSqft: 180, Total: 396000, Lifetime: "50+", Budget: models.BudgetTierPremium, Multiplyable: false},
		},
		"nightstand": {
			{Type: "2ft Basic", Wood: "Plywood", Thickness: 18, Grade: "BWP", RatePerSqft: 160, AreaSqft: 20, Total: 3200, Lifetime: "8-12", Budget: models.BudgetTierBudget, Multiplyable: true},
			{Type: "3ft Standard", Wood: "Engineered", Thickness: 18, Grade: "BWP", RatePerSqft: 500, AreaSqft: 30, Total: 15000, Lifetime: "10-15", Budget: models.BudgetTierMiddle, Multiplyable: true},
			{Type: "4ft Drawers", Wood: "Pine", Thickness: 25, Grade: "Solid A", RatePerSqft: 700, AreaSqft: 40, Total: 28000, Lifetime: "12-20", Budget: models.BudgetTierMiddle, Multiplyable: true},
			{Type: "5ft Premium", Wood: "Teak", Thickness: 25, Grade: "Solid AA", RatePerSqft: 2500, AreaSqft: 50, Total: 125000, Lifetime: "50+", Budget: models.BudgetTierPremium, Multiplyable: true},
		},
	},
	"bathroom": {
		"vanity": {
			{Type: "4ft Single Sink", Wood: "Plywood", Thickness: 18, Grade: "Marine BWP", RatePerSqft: 200, AreaSqft: 36, Total: 7200, Lifetime: "8-12", Budget: models.BudgetTierBudget, Multiplyable: false},
			{Type: "5ft Double Sink", Wood: "Pine", Thickness: 25, Grade: "Marine Solid", RatePerSqft: 800, AreaSqft: 50, Total: 40000, Lifetime: "12-20", Budget: models.BudgetTierMiddle, Multiplyable: false},
			{Type: "6ft Luxury", Wood: "Teak", Thickness: 25, Grade: "Sealed AA", RatePerSqft: 2500, AreaSqft: 72, Total: 180000, Lifetime: "50+", Budget: models.BudgetTierPremium, Multiplyable: false},
		},
		"mirror_cabinet": {
			{Type: "Wall 3ft", Wood: "MDF", Thickness: 12, Grade: "Waterproof", RatePerSqft: 70, AreaSqft: 18, Total: 1260, Lifetime: "3-6", Budget: models.BudgetTierBudget, Multiplyable: true},
			{Type: "Floor 4ft", Wood: "Plywood", Thickness: 18, Grade: "BWP", RatePerSqft: 180, AreaSqft: 32, Total: 5760, Lifetime: "7-12", Budget: models.BudgetTierBudget, Multiplyable: true},
			{Type: "Tall 6ft", Wood: "Sheesham", Thickness: 25, Grade: "Sealed", RatePerSqft: 1200, AreaSqft: 60, Total: 72000, Lifetime: "15-25", Budget: models.BudgetTierPremium, Multiplyable: true},
		},
	},
	"kitchen": {
		"counter": {
			{Type: "6ft Basic", Wood: "Plywood", Thickness: 18, Grade: "BWP", RatePerSqft: 150, AreaSqft: 36, Total: 5400, Lifetime: "8-12", Budget: models.BudgetTierBudget, Multiplyable: false},
			{Type: "8ft Standard", Wood: "MDF", Thickness: 18, Grade: "MR", RatePerSqft: 90, AreaSqft: 48, Total: 4320, Lifetime: "6-10", Budget: models.BudgetTierBudget, Multiplyable: false},
			{Type: "10ft L-Shape", Wood: "Pine", Thickness: 25, Grade: "Solid A", RatePerSqft: 650, AreaSqft: 80, Total: 52000, Lifetime: "15-20", Budget: models.BudgetTierMiddle, Multiplyable: false},
			{Type: "12ft Island", Wood: "Teak", Thickness: 25, Grade: "Solid AA", RatePerSqft: 2200, AreaSqft: 120, Total: 264000, Lifetime: "50+", Budget: models.BudgetTierPremium, Multiplyable: false},
		},
		"wall_cabinet": {
			{Type: "4ft Single", Wood: "MDF", Thickness: 12, Grade: "MR", RatePerSqft: 70, AreaSqft: 24, Total: 1680, Lifetime: "4-8", Budget: models.BudgetTierBudget, Multiplyable: true},
			{Type: "6ft Double", Wood: "Plywood", Thickness: 18, Grade: "BWR", RatePerSqft: 100, AreaSqft: 36, Total: 3600, Lifetime: "5-10", Budget: models.BudgetTierBudget, Multiplyable: true},
			{Type: "8ft Tall", Wood: "Sheesham", Thickness: 25, Grade: "Solid A", RatePerSqft: 1000, AreaSqft: 60, Total: 60000, Lifetime: "15-25", Budget: models.BudgetTierPremium, Multiplyable: true},
		},
	},
	"living_hall": {
		"sofa": {
			{Type: "2-Seater (5ft)", Wood: "Plywood", Thickness: 18, Grade: "BWR", RatePerSqft: 110, AreaSqft: 50, Total: 5500, Lifetime: "5-10", Budget: models.BudgetTierBudget, Multiplyable: true},
			{Type: "3-Seater (7ft)", Wood: "MDF", Thickness: 18, Grade: "MR", RatePerSqft: 90, AreaSqft: 70, Total: 6300, Lifetime: "6-12", Budget: models.BudgetTierBudget, Multiplyable: true},
			{Type: "L-Shape (10ft)", Wood: "Pine", Thickness: 25, Grade: "Solid A", RatePerSqft: 650, AreaSqft: 120, Total: 78000, Lifetime: "15-25", Budget: models.BudgetTierMiddle, Multiplyable: true},
			{Type: "Sectional (12ft)", Wood: "Teak", Thickness: 25, Grade: "Solid AA", RatePerSqft: 2200, AreaSqft: 160, Total: 352000, Lifetime: "50+", Budget: models.BudgetTierPremium, Multiplyable: true},
		},
		"tv_unit": {
			{Type: "4ft Basic", Wood: "MDF", Thickness: 12, Grade: "MR", RatePerSqft: 60, AreaSqft: 24, Total: 1440, Lifetime: "4-8", Budget: models.BudgetTierBudget, Multiplyable: false},
			{Type: "5ft Standard", Wood: "Plywood", Thickness: 18, Grade: "BWR", RatePerSqft: 100, AreaSqft: 36, Total: 3600, Lifetime: "6-12", Budget: models.BudgetTierBudget, Multiplyable: false},
			{Type: "6ft w/Shelves", Wood: "Sheesham", Thickness: 25, Grade: "Solid A", RatePerSqft: 1000, AreaSqft: 54, Total: 54000, Lifetime: "15-25", Budget: models.BudgetTierPremium, Multiplyable: false},
		},
		"coffee_table": {
			{Type: "3x2ft Basic", Wood: "Plywood", Thickness: 18, Grade: "BWR", RatePerSqft: 90, AreaSqft: 18, Total: 1620, Lifetime: "5-8", Budget: models.BudgetTierBudget, Multiplyable: true},
			{Type: "4x2ft Glass Top", Wood: "Engineered", Thickness: 18, Grade: "BWP", RatePerSqft: 500, AreaSqft: 24, Total: 12000, Lifetime: "10-15", Budget: models.BudgetTierMiddle, Multiplyable: true},
		},
	},
}

// NormalizeRoomKey turns a client-supplied room type ("Living Hall") into a
// catalog key ("living_hall").
func NormalizeRoomKey(roomType string) string {
	return strings.ReplaceAll(strings.ToLower(roomType), " ", "_")
}

// RoomFurniture returns the furnishings for a room type. Unknown room types
// fall back to the default room rather than failing.
func RoomFurniture(roomType string) RoomFurnishings {
	if f, ok := furniture[NormalizeRoomKey(roomType)]; ok {
		return f
	}
	return furniture[DefaultRoomKey]
}

// Lookup resolves a category within a room type. The bool reports whether the
// category exists; callers silently skip selections it cannot resolve.
func Lookup(roomType, category string) ([]models.CatalogItem, bool) {
	items, ok := RoomFurniture(roomType)[category]
	return items, ok
}

package services

import (
	"interioai-backend/internal/catalog"
	"interioai-backend/internal/models"
)

type ICostService interface {
	Calculate(selections []models.Selection) *models.CostBreakdown
}

type CostService struct{}

func NewCostService() ICostService {
	return &CostService{}
}

// Calculate resolves each selection against the catalog and accumulates cost
// totals and a budget-tier breakdown. Selections with an unknown category or
// an out-of-range item index are skipped, not reported; unknown room types
// resolve against the default room's catalog. Negative or zero quantities are
// clamped to 1.
func (s *CostService) Calculate(selections []models.Selection) *models.CostBreakdown {
	breakdown := &models.CostBreakdown{
		ItemsBreakdown: []models.CostLine{},
		BudgetBreakdown: map[string]int{
			models.BudgetTierBudget:  0,
			models.BudgetTierMiddle:  0,
			models.BudgetTierPremium: 0,
		},
	}

	for _, selection := range selections {
		roomType := selection.RoomType
		if roomType == "" {
			roomType = catalog.DefaultRoomKey
		}

		items, ok := catalog.Lookup(roomType, selection.Category)
		if !ok {
			continue
		}
		if selection.ItemIndex < 0 || selection.ItemIndex >= len(items) {
			continue
		}
		item := items[selection.ItemIndex]

		quantity := selection.Quantity
		if quantity < 1 {
			quantity = 1
		}
		lineTotal := item.Total * quantity

		breakdown.TotalCost += lineTotal
		breakdown.BudgetBreakdown[item.Budget] += lineTotal
		breakdown.ItemsBreakdown = append(breakdown.ItemsBreakdown, models.CostLine{
			Category:  selection.Category,
			Type:      item.Type,
			Wood:      item.Wood,
			Quantity:  quantity,
			UnitPrice: item.Total,
			Total:     lineTotal,
			Budget:    item.Budget,
			Lifetime:  item.Lifetime,
		})
	}

	breakdown.ItemsCount = len(breakdown.ItemsBreakdown)
	return breakdown
}

package services

import (
	"testing"

	"interioai-backend/internal/models"
)

func TestCalculate_SingleSelection(t *testing.T) {
	s := NewCostService()

	breakdown := s.Calculate([]models.Selection{
		{Category: "bed", ItemIndex: 0, Quantity: 2, RoomType: "bedroom"},
	})

	if breakdown.TotalCost != 7200 {
		t.Fatalf("TotalCost = %d, want 7200", breakdown.TotalCost)
	}
	if breakdown.BudgetBreakdown["Budget"] != 7200 {
		t.Errorf("Budget bucket = %d, want 7200", breakdown.BudgetBreakdown["Budget"])
	}
	if breakdown.ItemsCount != 1 {
		t.Errorf("ItemsCount = %d, want 1", breakdown.ItemsCount)
	}

	line := breakdown.ItemsBreakdown[0]
	if line.UnitPrice != 3600 || line.Total != 7200 || line.Quantity != 2 {
		t.Errorf("unexpected line item: %+v", line)
	}
	if line.Type != "Single (90x200cm)" || line.Wood != "Plywood" {
		t.Errorf("line item did not echo catalog fields: %+v", line)
	}
}

func TestCalculate_OutOfRangeIndexSkipped(t *testing.T) {
	s := NewCostService()

	breakdown := s.Calculate([]models.Selection{
		{Category: "bed", ItemIndex: 99, Quantity: 1, RoomType: "bedroom"},
		{Category: "bed", ItemIndex: -1, Quantity: 1, RoomType: "bedroom"},
		{Category: "bed", ItemIndex: 1, Quantity: 1, RoomType: "bedroom"},
	})

	if breakdown.ItemsCount != 1 {
		t.Fatalf("ItemsCount = %d, want 1 (out-of-range selections skipped)", breakdown.ItemsCount)
	}
	if breakdown.TotalCost != 3360 {
		t.Errorf("TotalCost = %d, want 3360", breakdown.TotalCost)
	}
}

func TestCalculate_UnknownCategorySkipped(t *testing.T) {
	s := NewCostService()

	breakdown := s.Calculate([]models.Selection{
		{Category: "jacuzzi", ItemIndex: 0, Quantity: 1, RoomType: "bathroom"},
	})

	if breakdown.TotalCost != 0 || breakdown.ItemsCount != 0 {
		t.Errorf("unknown category should contribute nothing, got %+v", breakdown)
	}
}

func TestCalculate_QuantityClampedToOne(t *testing.T) {
	s := NewCostService()

	for _, quantity := range []int{0, -3} {
		breakdown := s.Calculate([]models.Selection{
			{Category: "bed", ItemIndex: 0, Quantity: quantity, RoomType: "bedroom"},
		})
		if breakdown.TotalCost != 3600 {
			t.Errorf("quantity %d: TotalCost = %d, want 3600 (clamped to 1)", quantity, breakdown.TotalCost)
		}
		// The line item echoes the clamped quantity, not the raw input.
		if got := breakdown.ItemsBreakdown[0].Quantity; got != 1 {
			t.Errorf("quantity %d: line Quantity = %d, want 1", quantity, got)
		}
	}
}

func TestCalculate_UnknownRoomFallsBackToDefault(t *testing.T) {
	s := NewCostService()

	// "garage" resolves against the bedroom catalog.
	breakdown := s.Calculate([]models.Selection{
		{Category: "bed", ItemIndex: 0, Quantity: 1, RoomType: "garage"},
	})

	if breakdown.TotalCost != 3600 {
		t.Errorf("TotalCost = %d, want 3600 via default room fallback", breakdown.TotalCost)
	}
}

func TestCalculate_EmptyRoomTypeUsesDefault(t *testing.T) {
	s := NewCostService()

	breakdown := s.Calculate([]models.Selection{
		{Category: "bed", ItemIndex: 0, Quantity: 1},
	})

	if breakdown.TotalCost != 3600 {
		t.Errorf("TotalCost = %d, want 3600", breakdown.TotalCost)
	}
}

func TestCalculate_BudgetBucketsSeededAndGrown(t *testing.T) {
	s := NewCostService()

	breakdown := s.Calculate(nil)

	for _, tier := range []string{"Budget", "Middle", "Premium"} {
		if v, ok := breakdown.BudgetBreakdown[tier]; !ok || v != 0 {
			t.Errorf("tier %s should be seeded at 0, got %d (present=%v)", tier, v, ok)
		}
	}

	breakdown = s.Calculate([]models.Selection{
		{Category: "bed", ItemIndex: 2, Quantity: 1, RoomType: "bedroom"},      // Middle
		{Category: "sofa", ItemIndex: 3, Quantity: 1, RoomType: "living hall"}, // Premium
	})
	if breakdown.BudgetBreakdown["Middle"] != 28800 {
		t.Errorf("Middle bucket = %d, want 28800", breakdown.BudgetBreakdown["Middle"])
	}
	if breakdown.BudgetBreakdown["Premium"] != 352000 {
		t.Errorf("Premium bucket = %d, want 352000", breakdown.BudgetBreakdown["Premium"])
	}
	if breakdown.TotalCost != 28800+352000 {
		t.Errorf("TotalCost = %d, want %d", breakdown.TotalCost, 28800+352000)
	}
}

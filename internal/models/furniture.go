package models

// Budget tiers used for cost aggregation. Catalog data may only carry these
// three, but the calculator tolerates novel tier strings.
const (
	BudgetTierBudget  = "Budget"
	BudgetTierMiddle  = "Middle"
	BudgetTierPremium = "Premium"
)

// CatalogItem is one priced furniture variant within a room/category.
// JSON keys match the catalog wire format consumed by the frontend.
type CatalogItem struct {
	Type         string `json:"type"`
	Wood         string `json:"wood"`
	Thickness    int    `json:"thickness"`
	Grade        string `json:"grade"`
	RatePerSqft  int    `json:"rs_sqft"`
	AreaSqft     int    `json:"area_sqft"`
	Total        int    `json:"total"`
	Lifetime     string `json:"lifetime"`
	Budget       string `json:"budget"`
	Multiplyable bool   `json:"multiplyable"`
}

// Selection is one furniture pick in a cost-calculation request.
type Selection struct {
	Category  string `json:"category"`
	ItemIndex int    `json:"itemIndex"`
	Quantity  int    `json:"quantity"`
	RoomType  string `json:"room_type"`
}

// CostLine echoes a resolved selection in the breakdown response.
type CostLine struct {
	Category  string `json:"category"`
	Type      string `json:"type"`
	Wood      string `json:"wood"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	Total     int    `json:"total"`
	Budget    string `json:"budget"`
	Lifetime  string `json:"lifetime"`
}

// CostBreakdown is the calculate-cost response payload.
type CostBreakdown struct {
	TotalCost       int            `json:"total_cost"`
	ItemsBreakdown  []CostLine     `json:"items_breakdown"`
	BudgetBreakdown map[string]int `json:"budget_breakdown"`
	ItemsCount      int            `json:"items_count"`
}

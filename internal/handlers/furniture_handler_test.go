package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetFurniture(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/furniture/bedroom")
	f.mustStatus(t, w, http.StatusOK)

	data := decodeData(t, w)
	furniture := data["furniture"].(map[string]any)
	if _, ok := furniture["bed"]; !ok {
		t.Errorf("bedroom furniture missing bed category: %v", furniture)
	}
}

func TestGetFurnitureUnknownRoomFallsBack(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/furniture/spaceship")
	f.mustStatus(t, w, http.StatusOK)

	data := decodeData(t, w)
	furniture := data["furniture"].(map[string]any)
	if _, ok := furniture["bed"]; !ok {
		t.Error("unknown room should answer with the default (bedroom) catalog")
	}
}

func TestCalculateCost(t *testing.T) {
	f := newFixture(t)

	w := f.doJSON(t, http.MethodPost, "/api/furniture/calculate-cost", gin.H{
		"selections": []gin.H{
			{"category": "bed", "itemIndex": 0, "quantity": 2, "room_type": "bedroom"},
		},
	})
	f.mustStatus(t, w, http.StatusOK)

	data := decodeData(t, w)
	if data["total_cost"].(float64) != 7200 {
		t.Errorf("total_cost = %v, want 7200", data["total_cost"])
	}
	budget := data["budget_breakdown"].(map[string]any)
	if budget["Budget"].(float64) != 7200 {
		t.Errorf("Budget bucket = %v, want 7200", budget["Budget"])
	}
	if data["items_count"].(float64) != 1 {
		t.Errorf("items_count = %v, want 1", data["items_count"])
	}
}

func TestCalculateCostOutOfRangeOmitted(t *testing.T) {
	f := newFixture(t)

	w := f.doJSON(t, http.MethodPost, "/api/furniture/calculate-cost", gin.H{
		"selections": []gin.H{
			{"category": "bed", "itemIndex": 42, "quantity": 1, "room_type": "bedroom"},
		},
	})
	f.mustStatus(t, w, http.StatusOK)

	data := decodeData(t, w)
	if data["total_cost"].(float64) != 0 {
		t.Errorf("total_cost = %v, want 0", data["total_cost"])
	}
	if items := data["items_breakdown"].([]any); len(items) != 0 {
		t.Errorf("items_breakdown = %v, want empty", items)
	}
}

func TestCalculateCostMalformedPayload(t *testing.T) {
	f := newFixture(t)

	// Non-numeric quantity fails the whole request.
	body := `{"selections":[{"category":"bed","itemIndex":0,"quantity":"two","room_type":"bedroom"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/furniture/calculate-cost", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	f.mustStatus(t, w, http.StatusInternalServerError)
}

package models

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SaveDesignRequest struct {
	UserID        string `json:"user_id"`
	RoomType      string `json:"room_type"`
	Style         string `json:"style"`
	Palette       string `json:"palette"`
	Width         string `json:"width"`
	Length        string `json:"length"`
	EstimatedCost *int64 `json:"estimated_cost"`
}

type CalculateCostRequest struct {
	Selections []Selection `json:"selections"`
}

// GenerateParams carries the multipart form fields of a render request.
type GenerateParams struct {
	RoomType string
	Style    string
	Palette  string
	Width    string
	Length   string
	UserID   string
}

// GenerateResult is the render pipeline response. UserID is null when the
// client did not identify itself or the id did not resolve to a user.
type GenerateResult struct {
	UserID    *string `json:"user_id"`
	BeforeURL string  `json:"before_url"`
	AfterURL  string  `json:"after_url"`
	RoomType  string  `json:"room_type"`
}

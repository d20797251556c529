package catalog

import (
	"fmt"
	"strings"
)

// Scene is the textual room metadata handed to the image renderer.
type Scene struct {
	RoomType       string   `json:"room_type"`
	Style          string   `json:"style"`
	Palette        string   `json:"palette"`
	Description    string   `json:"description"`
	SuggestedItems []string `json:"suggested_items"`
	IsEmpty        bool     `json:"is_empty"`
}

// Scene templates are keyed by the lowercased room type with spaces kept, so
// "Living Hall" and "Living Room" each get their own entry.
var suggestedItems = map[string][]string{
	"bedroom":     {"bed", "nightstand", "dresser", "wardrobe", "bedside lamp", "rug"},
	"kitchen":     {"dining table", "chairs", "bar stools", "pendant lights", "kitchen island", "cabinets"},
	"living hall": {"sofa", "coffee table", "TV stand", "armchair", "floor lamp", "rug", "side table"},
	"living room": {"sofa", "coffee table", "TV stand", "armchair", "floor lamp", "rug", "side table"},
	"bathroom":    {"vanity", "mirror", "storage cabinet", "towel rack", "bath mat", "shelf"},
}

var descriptionFormats = map[string]string{
	"bedroom":     "A %s bedroom with %s tones, cozy bed, nightstands, and warm lighting",
	"kitchen":     "A %s kitchen with %s colors, dining table, chairs, and modern appliances",
	"living hall": "A %s living room with %s tones, comfortable sofa, coffee table, and modern furniture",
	"living room": "A %s living room with %s tones, comfortable sofa, coffee table, and modern furniture",
	"bathroom":    "A %s bathroom with %s colors, elegant vanity, mirror, and modern fixtures",
}

const genericDescriptionFormat = "A %s interior with %s tones and modern furniture"

var genericSuggestedItems = []string{"sofa", "coffee table", "chair", "lamp", "rug"}

// BuildScene assembles render metadata for a room from the static templates,
// with a generic fallback for unrecognized room types.
func BuildScene(roomType, style, palette string) Scene {
	key := strings.ToLower(roomType)

	items, ok := suggestedItems[key]
	if !ok {
		items = genericSuggestedItems
	}

	format, ok := descriptionFormats[key]
	if !ok {
		format = genericDescriptionFormat
	}

	return Scene{
		RoomType:       NormalizeRoomKey(roomType),
		Style:          style,
		Palette:        palette,
		Description:    fmt.Sprintf(format, style, palette),
		SuggestedItems: items,
		IsEmpty:        true,
	}
}

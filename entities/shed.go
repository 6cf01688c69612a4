package entities

// DoorSpec is the legacy inline door form: an opening on one edge of the
// shed, positioned in meters along that edge.
type DoorSpec struct {
	Side     string  `json:"side"` // top|bottom|left|right
	Position float64 `json:"position"`
}

// Shed is one physical store. Name doubles as the re-import idempotency key.
type Shed struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"uniqueIndex" json:"name"`
	Width        float64    `json:"width"`
	Height       float64    `json:"height"`
	Description  string     `json:"description"`
	Doors        []DoorSpec `gorm:"serializer:json" json:"doors"`
	DisplayOrder int        `json:"display_order"`
}

// Zone is a discrete storage location inside a shed. Coordinates are meters
// from the shed's top-left corner.
type Zone struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	ShedID        string  `gorm:"index" json:"shed_id"`
	Name          string  `json:"name"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	TotalQuantity float64 `json:"total_quantity"`
	MaxCapacity   int     `json:"max_capacity"`
}

// Door is the current standalone door form, placed geometrically like a zone.
type Door struct {
	ID     string  `gorm:"primaryKey" json:"id"`
	ShedID string  `gorm:"index" json:"shed_id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Fridge struct {
	ID     string  `gorm:"primaryKey" json:"id"`
	ShedID string  `gorm:"index" json:"shed_id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

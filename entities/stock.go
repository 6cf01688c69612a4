package entities

type StockIntake struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	FieldID   string  `gorm:"index" json:"field_id"`
	FieldName string  `json:"field_name"`
	ZoneID    string  `gorm:"index" json:"zone_id"`
	ShedID    string  `json:"shed_id"`
	Quantity  float64 `json:"quantity"`
	Date      string  `json:"date"`
	Grade     string  `json:"grade"`
	CreatedAt string  `json:"created_at"`
}

type StockMovement struct {
	ID         string  `gorm:"primaryKey" json:"id"`
	FromZoneID string  `gorm:"index" json:"from_zone_id"`
	ToZoneID   string  `gorm:"index" json:"to_zone_id"`
	FromShedID string  `json:"from_shed_id"`
	ToShedID   string  `json:"to_shed_id"`
	Quantity   float64 `json:"quantity"`
	Date       string  `json:"date"`
	CreatedAt  string  `json:"created_at"`
}

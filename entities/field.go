package entities

// Field is one crop source record, rebuilt in full on every spreadsheet
// import. AvailableGrades is ordered: the sheet order reflects grade ranking.
type Field struct {
	ID              string   `gorm:"primaryKey" json:"id"`
	Name            string   `json:"name"` // "<farm> - <field>"
	Area            string   `json:"area"`
	CropType        string   `json:"crop_type"`
	Variety         string   `json:"variety"`
	Type            *string  `json:"type"`
	AvailableGrades []string `gorm:"serializer:json" json:"available_grades"`
	HarvestYear     string   `json:"harvest_year"`
}

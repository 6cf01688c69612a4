package entities

// User is a login lookup record keyed by employee number. Permission values
// are free-text flags ("Yes"/"No") carried verbatim from the staff sheet.
type User struct {
	ID              string `gorm:"primaryKey" json:"id"`
	EmployeeNumber  string `gorm:"uniqueIndex" json:"employee_number"`
	Name            string `json:"name"`
	StockMovement   string `json:"stock_movement"`
	AdminControl    string `json:"admin_control"`
	QC              string `json:"qc"`
	DailyCheck      string `json:"daily_check"`
	WorkshopControl string `json:"workshop_control"`
	Operations      string `json:"operations"`
}

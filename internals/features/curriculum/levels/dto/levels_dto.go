package dto

// LevelResponse is a level row annotated with its class-year count.
type LevelResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Order     int    `gorm:"column:order" json:"order"`
	YearCount int    `json:"year_count"`
}

type ClassYearResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Order int    `gorm:"column:order" json:"order"`
}

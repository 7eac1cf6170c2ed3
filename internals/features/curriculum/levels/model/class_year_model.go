package model

// ClassYearModel is one school year inside a level (e.g. "7ème année").
type ClassYearModel struct {
	ID      uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LevelID uint   `gorm:"column:level_id;not null;index" json:"level_id"`
	Name    string `gorm:"column:name;size:255;not null" json:"name"`
	Slug    string `gorm:"column:slug;size:160;unique;not null" json:"slug"`
	Order   int    `gorm:"column:order;not null;default:0" json:"order"`
}

func (ClassYearModel) TableName() string {
	return "class_years"
}

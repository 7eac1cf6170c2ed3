package model

// LevelModel is the root of the content tree (Primaire, Collège, Lycée).
type LevelModel struct {
	ID    uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"column:name;size:255;not null" json:"name"`
	Slug  string `gorm:"column:slug;size:160;unique;not null" json:"slug"`
	Order int    `gorm:"column:order;not null;default:0" json:"order"`

	ClassYears []ClassYearModel `gorm:"foreignKey:LevelID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LevelModel) TableName() string {
	return "levels"
}

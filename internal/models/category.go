package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id" bson:"_id"`
	Type string `gorm:"size:255" json:"type" bson:"type"`
}

// CategoryMap projects categories to the id → type object the front-end
// uses to label questions.
func CategoryMap(categories []Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

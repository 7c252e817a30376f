package models

// Question fields other than ID are nullable: the create endpoint accepts
// any subset of them.
type Question struct {
	ID         uint    `gorm:"primaryKey" json:"id" bson:"_id"`
	Question   *string `gorm:"type:text" json:"question" bson:"question"`
	Answer     *string `gorm:"type:text" json:"answer" bson:"answer"`
	Category   *int    `gorm:"index" json:"category" bson:"category"`
	Difficulty *int    `json:"difficulty" bson:"difficulty"`
}

type FormattedQuestion struct {
	ID         uint    `json:"id"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

func (q Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func FormatQuestions(questions []Question) []FormattedQuestion {
	out := make([]FormattedQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Format())
	}
	return out
}

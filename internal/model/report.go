package model

// Violation is recorded for every question answered non-compliantly
type Violation struct {
	QuestionID string        `json:"questionId" bson:"questionId"`
	Question   string        `json:"question" bson:"question"`
	Article    string        `json:"article" bson:"article"`
	Category   string        `json:"category" bson:"category"` // display name
	Finding    string        `json:"finding" bson:"finding"`
	Severity   SanctionLevel `json:"severity" bson:"severity"`
}

// CategoryResult is the per-category share of a report
type CategoryResult struct {
	Category    string  `json:"category" bson:"category"`
	DisplayName string  `json:"displayName" bson:"displayName"`
	Score       float64 `json:"score" bson:"score"`
	MaxScore    float64 `json:"maxScore" bson:"maxScore"`
	Answered    int     `json:"answered" bson:"answered"`
	Violations  int     `json:"violations" bson:"violations"`
}

// Report is the outcome of one evaluation
type Report struct {
	Score            float64          `json:"score" bson:"score"`
	MaxScore         float64          `json:"maxScore" bson:"maxScore"`
	Percentage       int              `json:"percentage" bson:"percentage"`       // clamped to 0..100
	RawPercentage    int              `json:"rawPercentage" bson:"rawPercentage"` // before clamping
	Grade            string           `json:"grade" bson:"grade"`
	GradeClass       string           `json:"gradeClass" bson:"gradeClass"`
	GradeDescription string           `json:"gradeDescription" bson:"gradeDescription"`
	Violations       []Violation      `json:"violations" bson:"violations"`
	Recommendations  []string         `json:"recommendations" bson:"recommendations"`
	Categories       []CategoryResult `json:"categories" bson:"categories"`
}

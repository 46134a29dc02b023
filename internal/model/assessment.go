package model

import "time"

// Assessment is a persisted evaluation. Assessments are insert-only:
// every submission creates a new record.
type Assessment struct {
	ID          string      `json:"id" bson:"_id"`
	UserID      string      `json:"userId" bson:"userId"`
	Topic       string      `json:"topic" bson:"topic"`
	CompanySize CompanySize `json:"companySize" bson:"companySize"`
	CompanyName string      `json:"companyName" bson:"companyName"`
	Answers     Answers     `json:"answers" bson:"answers"`
	Report      Report      `json:"report" bson:"report"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
}

// SubmitAssessmentRequest is the request body for a new assessment
type SubmitAssessmentRequest struct {
	Answers     Answers `json:"answers"`
	CompanySize string  `json:"companySize"`
	CompanyName string  `json:"companyName"`
}

// TopicSummary describes an available question bank
type TopicSummary struct {
	Topic         string `json:"topic"`
	Title         string `json:"title"`
	QuestionCount int    `json:"questionCount"`
}

// PublicOption is an option as shown to the user, without correctness
type PublicOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// PublicQuestion is a question as shown to the user
type PublicQuestion struct {
	ID      string         `json:"id"`
	Text    string         `json:"text"`
	Article string         `json:"article"`
	Type    AnswerType     `json:"type"`
	Options []PublicOption `json:"options,omitempty"`
}

// QuestionSection groups the questions of one category
type QuestionSection struct {
	Category    string           `json:"category"`
	DisplayName string           `json:"displayName"`
	Questions   []PublicQuestion `json:"questions"`
}

// Questionnaire is the display form of a bank
type Questionnaire struct {
	Topic    string            `json:"topic"`
	Title    string            `json:"title"`
	Sections []QuestionSection `json:"sections"`
}

// ViolationStat counts how often a question was answered non-compliantly
type ViolationStat struct {
	QuestionID string `json:"questionId"`
	Question   string `json:"question"`
	Article    string `json:"article"`
	Count      int64  `json:"count"`
}

package model

// AnswerType defines how a question is answered and scored
type AnswerType string

const (
	AnswerTypeYesNo      AnswerType = "YES_NO"      // yes / no / partially
	AnswerTypeChoice     AnswerType = "CHOICE"      // exactly one option value
	AnswerTypeMultiCheck AnswerType = "MULTI_CHECK" // any subset of option values
)

// SanctionLevel selects a penalty pair from the sanction table
type SanctionLevel string

const (
	SanctionHigh   SanctionLevel = "HIGH"
	SanctionMedium SanctionLevel = "MEDIUM"
	SanctionNone   SanctionLevel = "NONE"
)

// Answer tokens understood by the evaluator
const (
	AnswerYes           = "yes"
	AnswerNo            = "no"
	AnswerPartially     = "partially"
	AnswerNotApplicable = "not_applicable"
)

// Option is one selectable answer of a CHOICE or MULTI_CHECK question
type Option struct {
	Value     string `json:"value" yaml:"value" bson:"value"`
	Text      string `json:"text" yaml:"text" bson:"text"`
	IsCorrect bool   `json:"isCorrect" yaml:"isCorrect" bson:"isCorrect"`
}

// Question is a single compliance check item
type Question struct {
	ID             string        `json:"id" yaml:"id"`
	Category       string        `json:"category" yaml:"category"`
	Text           string        `json:"text" yaml:"text"`
	Article        string        `json:"article" yaml:"article"`
	Type           AnswerType    `json:"type" yaml:"type"`
	Weight         float64       `json:"weight" yaml:"weight"`
	SanctionLevel  SanctionLevel `json:"sanctionLevel" yaml:"sanctionLevel"`
	CorrectAnswer  string        `json:"correctAnswer,omitempty" yaml:"correctAnswer,omitempty"` // YES_NO only
	Options        []Option      `json:"options,omitempty" yaml:"options,omitempty"`             // CHOICE, MULTI_CHECK
	Recommendation string        `json:"recommendation,omitempty" yaml:"recommendation,omitempty"`
}

// OptionByValue returns the option with the given value, if any
func (q *Question) OptionByValue(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

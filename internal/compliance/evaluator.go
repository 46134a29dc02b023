// Package compliance scores a company's answers to a question bank
// against the labour law checks it encodes.
//
// An Evaluator is cheap to build and is meant to be created per request.
// It performs no I/O and never panics on malformed answers: unknown
// answer values score zero and are reported as violations.
package compliance

import (
	"math"
	"strings"

	"nexaterminal/internal/model"
)

// Outcome is the result of scoring a single question
type Outcome struct {
	Score     float64
	Compliant bool
	Message   string
}

// Evaluator scores answers for one bank, company size and company name
type Evaluator struct {
	bank        *model.Bank
	companyName string
	sanctions   map[model.SanctionLevel]model.Sanction
}

// New creates an evaluator. An empty size defaults to micro.
func New(bank *model.Bank, size model.CompanySize, companyName string) *Evaluator {
	if size == "" {
		size = model.CompanyMicro
	}
	return &Evaluator{
		bank:        bank,
		companyName: companyName,
		sanctions:   bank.Sanctions[size],
	}
}

// tally accumulates the running totals of one Evaluate call
type tally struct {
	score           float64
	maxScore        float64
	violations      []model.Violation
	recommendations []string
	categories      map[string]*model.CategoryResult
	order           []string
}

func newTally() *tally {
	return &tally{
		violations:      []model.Violation{},
		recommendations: []string{},
		categories:      make(map[string]*model.CategoryResult),
	}
}

func (t *tally) category(bank *model.Bank, key string) *model.CategoryResult {
	c, ok := t.categories[key]
	if !ok {
		c = &model.CategoryResult{Category: key, DisplayName: bank.CategoryName(key)}
		t.categories[key] = c
		t.order = append(t.order, key)
	}
	return c
}

// Evaluate scores answers against every question of the bank, in bank
// order, and returns the graded report
func (e *Evaluator) Evaluate(answers model.Answers) model.Report {
	t := newTally()

	for i := range e.bank.Questions {
		q := &e.bank.Questions[i]
		answer := answers[q.ID]
		if answer.Skipped() {
			continue
		}

		out := e.ScoreQuestion(q, answer)

		cat := t.category(e.bank, q.Category)
		cat.Answered++
		cat.MaxScore += q.Weight
		cat.Score += out.Score
		t.maxScore += q.Weight
		t.score += out.Score

		if !out.Compliant {
			cat.Violations++
			t.violations = append(t.violations, model.Violation{
				QuestionID: q.ID,
				Question:   q.Text,
				Article:    q.Article,
				Category:   e.bank.CategoryName(q.Category),
				Finding:    out.Message,
				Severity:   q.SanctionLevel,
			})
			if q.Recommendation != "" {
				t.recommendations = append(t.recommendations, q.Recommendation)
			}
		}
	}

	raw := percentage(t.score, t.maxScore)
	pct := clamp(raw, 0, 100)
	grade, ok := e.grade(pct)

	report := model.Report{
		Score:           t.score,
		MaxScore:        t.maxScore,
		Percentage:      pct,
		RawPercentage:   raw,
		Violations:      t.violations,
		Recommendations: dedupe(t.recommendations),
		Categories:      make([]model.CategoryResult, 0, len(t.order)),
	}
	if ok {
		report.Grade = grade.Label
		report.GradeClass = grade.Class
		report.GradeDescription = e.describe(grade)
	} else {
		report.GradeDescription = msgGradeUnknown
	}
	for _, key := range t.order {
		report.Categories = append(report.Categories, *t.categories[key])
	}
	return report
}

// ScoreQuestion scores one answer according to the question type
func (e *Evaluator) ScoreQuestion(q *model.Question, answer model.AnswerValue) Outcome {
	switch q.Type {
	case model.AnswerTypeYesNo:
		return e.scoreYesNo(q, answer.Single())
	case model.AnswerTypeChoice:
		return e.scoreChoice(q, answer.Single())
	case model.AnswerTypeMultiCheck:
		return e.scoreMultiCheck(q, answer)
	}
	return Outcome{}
}

func (e *Evaluator) scoreYesNo(q *model.Question, answer string) Outcome {
	switch answer {
	case model.AnswerYes, model.AnswerNo:
		if answer == q.CorrectAnswer {
			return Outcome{Score: q.Weight, Compliant: true, Message: compliantMessage(q.Article)}
		}
		return Outcome{Score: -q.Weight, Message: violationMessage(q.Article, e.SanctionText(q.SanctionLevel))}
	case model.AnswerPartially:
		return Outcome{Score: -q.Weight * 0.5, Message: partialMessage(q.Article, e.SanctionText(q.SanctionLevel))}
	}
	return Outcome{}
}

func (e *Evaluator) scoreChoice(q *model.Question, answer string) Outcome {
	opt, ok := q.OptionByValue(answer)
	if !ok {
		return Outcome{Message: msgInvalidAnswer}
	}
	if opt.IsCorrect {
		return Outcome{Score: q.Weight, Compliant: true, Message: compliantMessage(q.Article)}
	}
	return Outcome{Score: -q.Weight, Message: violationMessage(q.Article, e.SanctionText(q.SanctionLevel))}
}

// scoreMultiCheck splits the weight evenly across the options. Each
// option earns its share when its selection state matches IsCorrect and
// loses it otherwise.
func (e *Evaluator) scoreMultiCheck(q *model.Question, answer model.AnswerValue) Outcome {
	if len(q.Options) == 0 {
		return Outcome{Message: msgInvalidAnswer}
	}
	selected := make(map[string]bool, len(answer))
	for _, v := range answer {
		if _, ok := q.OptionByValue(v); !ok {
			return Outcome{Message: msgInvalidAnswer}
		}
		selected[v] = true
	}

	share := q.Weight / float64(len(q.Options))
	var score float64
	var mismatched []string
	for _, o := range q.Options {
		if selected[o.Value] == o.IsCorrect {
			score += share
			continue
		}
		score -= share
		mismatched = append(mismatched, o.Text)
	}

	if len(mismatched) == 0 {
		return Outcome{Score: score, Compliant: true, Message: compliantMessage(q.Article)}
	}
	return Outcome{Score: score, Message: mismatchMessage(q.Article, mismatched, e.SanctionText(q.SanctionLevel))}
}

// SanctionText describes the penalty for a sanction level at the
// evaluator's company size. Levels missing from the table yield "".
func (e *Evaluator) SanctionText(level model.SanctionLevel) string {
	if level == model.SanctionNone {
		return msgNoSanction
	}
	s, ok := e.sanctions[level]
	if !ok {
		return ""
	}
	return formatSanction(s)
}

func (e *Evaluator) grade(pct int) (model.Grade, bool) {
	return Grade(e.bank.Grades, pct)
}

func (e *Evaluator) describe(g model.Grade) string {
	if g.Description == "" {
		return msgGradeUnknown
	}
	return strings.ReplaceAll(g.Description, companyPlaceholder, e.companyName)
}

// Grade returns the first entry whose Min is at or below pct. The table
// must be ordered by Min, descending.
func Grade(table model.GradeTable, pct int) (model.Grade, bool) {
	for _, g := range table {
		if g.Min <= pct {
			return g, true
		}
	}
	return model.Grade{}, false
}

// percentage rounds half up, so -2.5 becomes -2
func percentage(score, maxScore float64) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Floor(score/maxScore*100 + 0.5))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

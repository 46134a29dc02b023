package compliance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexaterminal/internal/model"
)

func testBank(questions ...model.Question) *model.Bank {
	return &model.Bank{
		Topic: "test",
		CategoryNames: map[string]string{
			"working_time": "Работно време",
			"payment":      "Плата",
		},
		Questions: questions,
		Sanctions: model.SanctionTable{
			model.CompanyMicro: {
				model.SanctionHigh:   {Employer: "500 евра", Responsible: "250 евра"},
				model.SanctionMedium: {Employer: "200 евра", Responsible: "100 евра"},
			},
			model.CompanyLarge: {
				model.SanctionHigh: {Employer: "5.000 евра", Responsible: "1.000 евра"},
			},
		},
		Grades: model.GradeTable{
			{Min: 80, Label: "Одлична", Class: "excellent", Description: "{company} е усогласена."},
			{Min: 60, Label: "Добра", Class: "good", Description: "{company} е делумно усогласена."},
			{Min: 0, Label: "Ниска", Class: "low"},
		},
	}
}

func yesNo(id string, correct string, weight float64) model.Question {
	return model.Question{
		ID:            id,
		Category:      "working_time",
		Text:          "Прашање " + id,
		Article:       "член 1",
		Type:          model.AnswerTypeYesNo,
		CorrectAnswer: correct,
		Weight:        weight,
		SanctionLevel: model.SanctionHigh,
	}
}

func choice(id string, weight float64) model.Question {
	return model.Question{
		ID:            id,
		Category:      "payment",
		Text:          "Прашање " + id,
		Article:       "член 2",
		Type:          model.AnswerTypeChoice,
		Weight:        weight,
		SanctionLevel: model.SanctionMedium,
		Options: []model.Option{
			{Value: "good", Text: "Добро", IsCorrect: true},
			{Value: "bad", Text: "Лошо", IsCorrect: false},
		},
	}
}

func TestEvaluate_SingleQuestionScenario(t *testing.T) {
	bank := &model.Bank{
		Topic:         "scenario",
		CategoryNames: map[string]string{"working_time": "Работно време"},
		Questions: []model.Question{{
			ID: "q1", Category: "working_time", Text: "Q1", Article: "член 1",
			Type: model.AnswerTypeYesNo, CorrectAnswer: model.AnswerYes, Weight: 1,
			SanctionLevel: "sanction1",
		}},
		Sanctions: model.SanctionTable{
			model.CompanyMicro: {"sanction1": {Employer: "500 евра", Responsible: "250 евра"}},
		},
		Grades: model.GradeTable{
			{Min: 100, Label: "Перфектна"},
			{Min: 0, Label: "Ниска"},
		},
	}

	ok := New(bank, model.CompanyMicro, "Фирма").Evaluate(model.AnswersFrom(map[string]string{"q1": "yes"}))
	assert.Equal(t, 1.0, ok.Score)
	assert.Equal(t, 1.0, ok.MaxScore)
	assert.Equal(t, 100, ok.Percentage)
	assert.Equal(t, "Перфектна", ok.Grade)
	assert.Empty(t, ok.Violations)
	assert.Empty(t, ok.Recommendations)

	bad := New(bank, model.CompanyMicro, "Фирма").Evaluate(model.AnswersFrom(map[string]string{"q1": "no"}))
	assert.Equal(t, -1.0, bad.Score)
	assert.Equal(t, 1.0, bad.MaxScore)
	assert.Equal(t, 0, bad.Percentage)
	assert.Equal(t, -100, bad.RawPercentage)
	assert.Equal(t, "Ниска", bad.Grade)
	require.Len(t, bad.Violations, 1)
	assert.Equal(t, model.SanctionLevel("sanction1"), bad.Violations[0].Severity)
	assert.Contains(t, bad.Violations[0].Finding, "500 евра")
	assert.Contains(t, bad.Violations[0].Finding, "250 евра")
	assert.Empty(t, bad.Recommendations)
}

func TestEvaluate_SkipsUnansweredAndNotApplicable(t *testing.T) {
	q := yesNo("q1", model.AnswerYes, 5)
	q.Recommendation = "препорака"
	bank := testBank(q, yesNo("q2", model.AnswerYes, 7), yesNo("q3", model.AnswerYes, 9))

	report := New(bank, model.CompanyMicro, "Фирма").Evaluate(model.Answers{
		"q1": model.Answer(model.AnswerNotApplicable),
		"q2": model.Answer(""),
	})

	assert.Zero(t, report.Score)
	assert.Zero(t, report.MaxScore)
	assert.Zero(t, report.Percentage)
	assert.Empty(t, report.Violations)
	assert.Empty(t, report.Recommendations)
	assert.Empty(t, report.Categories)
}

func TestEvaluate_EmptyAnswers(t *testing.T) {
	bank := testBank(yesNo("q1", model.AnswerYes, 1), choice("q2", 2))

	report := New(bank, model.CompanyMicro, "Фирма").Evaluate(model.Answers{})

	assert.Zero(t, report.Score)
	assert.Zero(t, report.MaxScore)
	assert.Zero(t, report.Percentage)
	assert.Empty(t, report.Violations)
	assert.Empty(t, report.Recommendations)
	assert.Equal(t, "Ниска", report.Grade)
}

func TestEvaluate_MaxScoreIsSumOfAnsweredWeights(t *testing.T) {
	bank := testBank(
		yesNo("q1", model.AnswerYes, 1),
		yesNo("q2", model.AnswerNo, 2.5),
		choice("q3", 4),
		yesNo("q4", model.AnswerYes, 8),
	)

	report := New(bank, model.CompanyMicro, "Фирма").Evaluate(model.AnswersFrom(map[string]string{
		"q1": "yes",
		"q2": "partially",
		"q3": "unknown",
		"q4": model.AnswerNotApplicable,
	}))

	assert.Equal(t, 7.5, report.MaxScore)
	assert.Equal(t, 1.0-1.25+0, report.Score)
}

func TestScoreQuestion_YesNo(t *testing.T) {
	e := New(testBank(), model.CompanyMicro, "Фирма")

	tests := []struct {
		name          string
		correct       string
		answer        string
		wantScore     float64
		wantCompliant bool
		wantPrefix    string
	}{
		{"yes when yes expected", model.AnswerYes, "yes", 4, true, "✓"},
		{"no when yes expected", model.AnswerYes, "no", -4, false, "✗"},
		{"no when no expected", model.AnswerNo, "no", 4, true, "✓"},
		{"yes when no expected", model.AnswerNo, "yes", -4, false, "✗"},
		{"partially when yes expected", model.AnswerYes, "partially", -2, false, "⚠"},
		{"partially when no expected", model.AnswerNo, "partially", -2, false, "⚠"},
		{"unknown token", model.AnswerYes, "maybe", 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := yesNo("q", tt.correct, 4)
			out := e.ScoreQuestion(&q, model.Answer(tt.answer))
			assert.Equal(t, tt.wantScore, out.Score)
			assert.Equal(t, tt.wantCompliant, out.Compliant)
			if tt.wantPrefix == "" {
				assert.Empty(t, out.Message)
			} else {
				assert.True(t, strings.HasPrefix(out.Message, tt.wantPrefix), out.Message)
			}
		})
	}
}

func TestScoreQuestion_Choice(t *testing.T) {
	e := New(testBank(), model.CompanyMicro, "Фирма")
	q := choice("q", 3)

	good := e.ScoreQuestion(&q, model.Answer("good"))
	assert.Equal(t, 3.0, good.Score)
	assert.True(t, good.Compliant)

	bad := e.ScoreQuestion(&q, model.Answer("bad"))
	assert.Equal(t, -3.0, bad.Score)
	assert.False(t, bad.Compliant)
	assert.Contains(t, bad.Message, "200 евра")

	invalid := e.ScoreQuestion(&q, model.Answer("other"))
	assert.Zero(t, invalid.Score)
	assert.False(t, invalid.Compliant)
	assert.Equal(t, "Невалиден одговор", invalid.Message)
}

func TestEvaluate_InvalidChoiceIsRecordedAsViolation(t *testing.T) {
	bank := testBank(choice("q1", 3))

	report := New(bank, model.CompanyMicro, "Фирма").Evaluate(model.AnswersFrom(map[string]string{"q1": "other"}))

	require.Len(t, report.Violations, 1)
	assert.Equal(t, "Невалиден одговор", report.Violations[0].Finding)
	assert.Equal(t, "Плата", report.Violations[0].Category)
	assert.Equal(t, 3.0, report.MaxScore)
	assert.Zero(t, report.Score)
}

func TestScoreQuestion_MultiCheck(t *testing.T) {
	e := New(testBank(), model.CompanyMicro, "Фирма")
	q := model.Question{
		ID: "m", Category: "payment", Text: "M", Article: "член 3",
		Type: model.AnswerTypeMultiCheck, Weight: 3, SanctionLevel: model.SanctionHigh,
		Options: []model.Option{
			{Value: "a", Text: "А", IsCorrect: true},
			{Value: "b", Text: "Б", IsCorrect: true},
			{Value: "c", Text: "В", IsCorrect: false},
		},
	}

	all := e.ScoreQuestion(&q, model.Answer("a", "b"))
	assert.InDelta(t, 3.0, all.Score, 1e-9)
	assert.True(t, all.Compliant)

	missing := e.ScoreQuestion(&q, model.Answer("a"))
	assert.InDelta(t, 1.0, missing.Score, 1e-9)
	assert.False(t, missing.Compliant)
	assert.Contains(t, missing.Message, "Б")
	assert.NotContains(t, missing.Message, "В")

	wrong := e.ScoreQuestion(&q, model.Answer("c"))
	assert.InDelta(t, -3.0, wrong.Score, 1e-9)
	assert.False(t, wrong.Compliant)

	invalid := e.ScoreQuestion(&q, model.Answer("a", "zzz"))
	assert.Zero(t, invalid.Score)
	assert.False(t, invalid.Compliant)
	assert.Equal(t, "Невалиден одговор", invalid.Message)
}

func TestScoreQuestion_SeveralValuesForSingleAnswer(t *testing.T) {
	e := New(testBank(), model.CompanyMicro, "Фирма")
	yn := yesNo("q", model.AnswerNo, 2)
	ch := choice("c", 3)

	out := e.ScoreQuestion(&yn, model.Answer("no", "yes"))
	assert.Zero(t, out.Score)
	assert.False(t, out.Compliant)

	out = e.ScoreQuestion(&ch, model.Answer("good", "bad"))
	assert.Zero(t, out.Score)
	assert.False(t, out.Compliant)
	assert.Equal(t, "Невалиден одговор", out.Message)

	report := New(testBank(yn, ch), model.CompanyMicro, "Фирма").Evaluate(model.Answers{
		"q": model.Answer("no", "yes"),
		"c": model.Answer("good", "bad"),
	})
	assert.Equal(t, 5.0, report.MaxScore)
	assert.Zero(t, report.Score)
	assert.Len(t, report.Violations, 2)
}

func TestScoreQuestion_UnknownType(t *testing.T) {
	e := New(testBank(), model.CompanyMicro, "Фирма")
	q := model.Question{ID: "x", Type: "FREE_TEXT", Weight: 2}

	out := e.ScoreQuestion(&q, model.Answer("yes"))
	assert.Equal(t, Outcome{}, out)
}

func TestEvaluate_PercentageClamped(t *testing.T) {
	bank := testBank(yesNo("q1", model.AnswerYes, 1), yesNo("q2", model.AnswerYes, 3))

	report := New(bank, model.CompanyMicro, "Фирма").Evaluate(model.AnswersFrom(map[string]string{
		"q1": "yes",
		"q2": "no",
	}))

	assert.Equal(t, -2.0, report.Score)
	assert.Equal(t, -50, report.RawPercentage)
	assert.Equal(t, 0, report.Percentage)

	assert.Equal(t, 100, clamp(percentage(12, 8), 0, 100))
	assert.Equal(t, 0, clamp(percentage(-1, 8), 0, 100))
	assert.Equal(t, 13, clamp(percentage(1, 8), 0, 100))
}

func TestEvaluate_RecommendationsDeduplicated(t *testing.T) {
	q1 := yesNo("q1", model.AnswerYes, 1)
	q1.Recommendation = "Донесете интерен акт."
	q2 := yesNo("q2", model.AnswerYes, 1)
	q2.Recommendation = "Донесете интерен акт."
	q3 := yesNo("q3", model.AnswerYes, 1)
	q3.Recommendation = "Водете евиденција."

	report := New(testBank(q1, q2, q3), model.CompanyMicro, "Фирма").Evaluate(model.AnswersFrom(map[string]string{
		"q1": "no",
		"q2": "no",
		"q3": "partially",
	}))

	assert.Len(t, report.Violations, 3)
	assert.Equal(t, []string{"Донесете интерен акт.", "Водете евиденција."}, report.Recommendations)
}

func TestEvaluate_CompliantAnswerHasNoRecommendation(t *testing.T) {
	q := yesNo("q1", model.AnswerYes, 1)
	q.Recommendation = "препорака"

	report := New(testBank(q), model.CompanyMicro, "Фирма").Evaluate(model.AnswersFrom(map[string]string{"q1": "yes"}))

	assert.Empty(t, report.Recommendations)
}

func TestGrade_BoundaryUsesFirstMatch(t *testing.T) {
	table := testBank().Grades

	tests := []struct {
		pct  int
		want string
	}{
		{100, "Одлична"},
		{80, "Одлична"},
		{79, "Добра"},
		{60, "Добра"},
		{59, "Ниска"},
		{0, "Ниска"},
	}
	for _, tt := range tests {
		g, ok := Grade(table, tt.pct)
		require.True(t, ok)
		assert.Equal(t, tt.want, g.Label, "percentage %d", tt.pct)
	}

	_, ok := Grade(model.GradeTable{{Min: 50, Label: "x"}}, 10)
	assert.False(t, ok)
}

func TestEvaluate_GradeDescription(t *testing.T) {
	bank := testBank(yesNo("q1", model.AnswerYes, 1))

	good := New(bank, model.CompanyMicro, "Нова ДООЕЛ").Evaluate(model.AnswersFrom(map[string]string{"q1": "yes"}))
	assert.Equal(t, "Нова ДООЕЛ е усогласена.", good.GradeDescription)
	assert.Equal(t, "excellent", good.GradeClass)

	low := New(bank, model.CompanyMicro, "Нова ДООЕЛ").Evaluate(model.AnswersFrom(map[string]string{"q1": "no"}))
	assert.Equal(t, "Ниска", low.Grade)
	assert.Equal(t, msgGradeUnknown, low.GradeDescription)
}

func TestSanctionText(t *testing.T) {
	bank := testBank()

	micro := New(bank, "", "Фирма")
	assert.Equal(t, "Можна санкција: 500 евра за работодавачот и 250 евра за одговорното лице.", micro.SanctionText(model.SanctionHigh))
	assert.Equal(t, msgNoSanction, micro.SanctionText(model.SanctionNone))

	large := New(bank, model.CompanyLarge, "Фирма")
	assert.Contains(t, large.SanctionText(model.SanctionHigh), "5.000 евра")
	assert.Empty(t, large.SanctionText(model.SanctionMedium))

	unknown := New(bank, "huge", "Фирма")
	assert.Empty(t, unknown.SanctionText(model.SanctionHigh))
}

func TestEvaluate_MissingSanctionLeavesPlainFinding(t *testing.T) {
	q := yesNo("q1", model.AnswerYes, 1)
	q.SanctionLevel = model.SanctionMedium

	report := New(testBank(q), model.CompanyLarge, "Фирма").Evaluate(model.AnswersFrom(map[string]string{"q1": "no"}))

	require.Len(t, report.Violations, 1)
	assert.Equal(t, "✗ Не постапувате во согласност со член 1.", report.Violations[0].Finding)
}

func TestEvaluate_CategoryBreakdown(t *testing.T) {
	bank := testBank(
		yesNo("q1", model.AnswerYes, 2),
		choice("q2", 3),
		yesNo("q3", model.AnswerYes, 1),
	)

	report := New(bank, model.CompanyMicro, "Фирма").Evaluate(model.AnswersFrom(map[string]string{
		"q1": "yes",
		"q2": "bad",
		"q3": "no",
	}))

	require.Len(t, report.Categories, 2)
	assert.Equal(t, model.CategoryResult{
		Category: "working_time", DisplayName: "Работно време",
		Score: 1, MaxScore: 3, Answered: 2, Violations: 1,
	}, report.Categories[0])
	assert.Equal(t, model.CategoryResult{
		Category: "payment", DisplayName: "Плата",
		Score: -3, MaxScore: 3, Answered: 1, Violations: 1,
	}, report.Categories[1])
}

func TestEvaluate_RepeatedCallsAreIndependent(t *testing.T) {
	q := yesNo("q1", model.AnswerYes, 1)
	q.Recommendation = "препорака"
	e := New(testBank(q), model.CompanyMicro, "Фирма")

	first := e.Evaluate(model.AnswersFrom(map[string]string{"q1": "no"}))
	second := e.Evaluate(model.AnswersFrom(map[string]string{"q1": "no"}))

	assert.Equal(t, first, second)
	assert.Len(t, second.Violations, 1)
}

func TestPercentage_RoundsHalfUp(t *testing.T) {
	assert.Equal(t, 0, percentage(1, 0))
	assert.Equal(t, 67, percentage(2, 3))
	assert.Equal(t, 50, percentage(0.995, 2)) // 49.75
	assert.Equal(t, 83, percentage(2.5, 3))   // 83.33
	assert.Equal(t, -50, percentage(-1.5, 3))
	assert.Equal(t, 13, percentage(1, 8))   // 12.5
	assert.Equal(t, -12, percentage(-1, 8)) // -12.5
	assert.Equal(t, 150, percentage(12, 8))
}

package questionbank

import (
	"errors"
	"fmt"

	"nexaterminal/internal/model"
)

// ErrInvalidBank is returned for banks that break a data invariant
var ErrInvalidBank = errors.New("invalid question bank")

// Validate checks the invariants the evaluator relies on. A bank that
// fails validation must not be served.
func Validate(b *model.Bank) error {
	var problems []error
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if b.Topic == "" {
		add("topic is empty")
	}
	if len(b.Questions) == 0 {
		add("no questions")
	}

	seen := make(map[string]bool, len(b.Questions))
	for i, q := range b.Questions {
		ref := fmt.Sprintf("question %d (%s)", i, q.ID)
		if q.ID == "" {
			add("question %d: id is empty", i)
		} else if seen[q.ID] {
			add("%s: duplicate id", ref)
		}
		seen[q.ID] = true

		if q.Weight <= 0 {
			add("%s: weight must be positive, got %v", ref, q.Weight)
		}
		if _, ok := b.CategoryNames[q.Category]; !ok {
			add("%s: category %q has no display name", ref, q.Category)
		}
		switch q.SanctionLevel {
		case model.SanctionHigh, model.SanctionMedium, model.SanctionNone:
		default:
			add("%s: unknown sanction level %q", ref, q.SanctionLevel)
		}

		switch q.Type {
		case model.AnswerTypeYesNo:
			if q.CorrectAnswer != model.AnswerYes && q.CorrectAnswer != model.AnswerNo {
				add("%s: correctAnswer must be yes or no", ref)
			}
			if len(q.Options) > 0 {
				add("%s: YES_NO question must not have options", ref)
			}
		case model.AnswerTypeChoice, model.AnswerTypeMultiCheck:
			if q.CorrectAnswer != "" {
				add("%s: %s question must not have correctAnswer", ref, q.Type)
			}
			if err := validateOptions(q); err != nil {
				add("%s: %v", ref, err)
			}
		default:
			add("%s: unknown type %q", ref, q.Type)
		}
	}

	if err := validateGrades(b.Grades); err != nil {
		add("grades: %v", err)
	}
	for size := range b.Sanctions {
		if !size.Valid() {
			add("sanctions: unknown company size %q", size)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidBank, b.Topic, errors.Join(problems...))
	}
	return nil
}

func validateOptions(q model.Question) error {
	if len(q.Options) == 0 {
		return errors.New("no options")
	}
	values := make(map[string]bool, len(q.Options))
	correct := 0
	for _, o := range q.Options {
		if o.Value == "" {
			return errors.New("option with empty value")
		}
		if values[o.Value] {
			return fmt.Errorf("duplicate option value %q", o.Value)
		}
		values[o.Value] = true
		if o.IsCorrect {
			correct++
		}
	}
	if correct == 0 {
		return errors.New("no correct option")
	}
	return nil
}

func validateGrades(grades model.GradeTable) error {
	if len(grades) == 0 {
		return errors.New("empty grade table")
	}
	for i := 1; i < len(grades); i++ {
		if grades[i].Min >= grades[i-1].Min {
			return fmt.Errorf("entries must be ordered by min, descending (%d after %d)", grades[i].Min, grades[i-1].Min)
		}
	}
	if grades[len(grades)-1].Min != 0 {
		return errors.New("lowest grade must have min 0")
	}
	return nil
}

package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AnswerValue is the submitted answer for one question. YES_NO and
// CHOICE answers hold a single value, MULTI_CHECK answers hold the
// selected option values. It decodes from either a string or a list of
// strings.
type AnswerValue []string

// Answer builds an AnswerValue from one or more values
func Answer(values ...string) AnswerValue {
	return AnswerValue(values)
}

// Answers maps question id to the submitted answer
type Answers map[string]AnswerValue

// AnswersFrom converts a plain id -> value map
func AnswersFrom(m map[string]string) Answers {
	out := make(Answers, len(m))
	for k, v := range m {
		out[k] = AnswerValue{v}
	}
	return out
}

// Single returns the only value, or "" unless exactly one was given
func (a AnswerValue) Single() string {
	if len(a) != 1 {
		return ""
	}
	return a[0]
}

// Skipped reports whether the answer excludes the question from scoring:
// nothing submitted, an empty value, or the not_applicable sentinel.
func (a AnswerValue) Skipped() bool {
	if len(a) == 0 {
		return true
	}
	if len(a) == 1 && (a[0] == "" || a[0] == AnswerNotApplicable) {
		return true
	}
	return false
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	if len(a) == 1 {
		return json.Marshal(a[0])
	}
	return json.Marshal([]string(a))
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = AnswerValue{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("answer must be a string or a list of strings: %w", err)
	}
	*a = AnswerValue(many)
	return nil
}

func (a *AnswerValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*a = AnswerValue{node.Value}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*a = AnswerValue(many)
		return nil
	}
	return fmt.Errorf("answer must be a string or a list of strings (line %d)", node.Line)
}

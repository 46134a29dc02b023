// Package questionbank holds the built-in labour law question banks and
// loads additional banks from YAML.
package questionbank

import (
	"errors"
	"sort"

	"nexaterminal/internal/model"
)

// ErrUnknownTopic is returned when no bank is registered for a topic
var ErrUnknownTopic = errors.New("unknown topic")

// Builtin returns fresh copies of the built-in banks
func Builtin() []*model.Bank {
	return []*model.Bank{
		WorkingTime(),
		Payment(),
		Termination(),
		Protection(),
	}
}

// Registry indexes validated banks by topic. It is read-only once built
// and safe for concurrent use.
type Registry struct {
	banks map[string]*model.Bank
}

// NewRegistry validates the banks and indexes them. A later bank
// replaces an earlier one with the same topic.
func NewRegistry(banks ...*model.Bank) (*Registry, error) {
	r := &Registry{banks: make(map[string]*model.Bank, len(banks))}
	for _, b := range banks {
		if err := Validate(b); err != nil {
			return nil, err
		}
		r.banks[b.Topic] = b
	}
	return r, nil
}

// Get returns the bank for a topic
func (r *Registry) Get(topic string) (*model.Bank, error) {
	b, ok := r.banks[topic]
	if !ok {
		return nil, ErrUnknownTopic
	}
	return b, nil
}

// Topics returns the registered topics, sorted
func (r *Registry) Topics() []string {
	topics := make([]string, 0, len(r.banks))
	for t := range r.banks {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

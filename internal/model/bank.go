package model

// Sanction holds the human-readable penalty ranges for one level
type Sanction struct {
	Employer    string `json:"employer" yaml:"employer"`
	Responsible string `json:"responsible" yaml:"responsible"`
}

// SanctionTable maps company size -> sanction level -> penalties.
// SanctionNone intentionally has no entries.
type SanctionTable map[CompanySize]map[SanctionLevel]Sanction

// Grade is one percentage band. Description may contain the {company}
// placeholder.
type Grade struct {
	Min         int    `json:"min" yaml:"min"`
	Label       string `json:"label" yaml:"label"`
	Class       string `json:"class" yaml:"class"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// GradeTable is ordered by Min, descending
type GradeTable []Grade

// Bank is the question bank of one topic area together with the tables
// used to score it
type Bank struct {
	Topic         string            `json:"topic" yaml:"topic"`
	Title         string            `json:"title" yaml:"title"`
	CategoryNames map[string]string `json:"categoryNames" yaml:"categoryNames"`
	Questions     []Question        `json:"questions" yaml:"questions"`
	Sanctions     SanctionTable     `json:"sanctions,omitempty" yaml:"sanctions,omitempty"`
	Grades        GradeTable        `json:"grades,omitempty" yaml:"grades,omitempty"`
}

// CategoryName returns the display name of a category, or the raw key
// when no display name is configured
func (b *Bank) CategoryName(category string) string {
	if name, ok := b.CategoryNames[category]; ok && name != "" {
		return name
	}
	return category
}

// QuestionByID finds a question by its id
func (b *Bank) QuestionByID(id string) (*Question, bool) {
	for i := range b.Questions {
		if b.Questions[i].ID == id {
			return &b.Questions[i], true
		}
	}
	return nil, false
}

// Categories returns the distinct categories in the order they first
// appear in the bank
func (b *Bank) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range b.Questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"nexaterminal/internal/cache"
	"nexaterminal/internal/compliance"
	"nexaterminal/internal/metrics"
	"nexaterminal/internal/model"
	"nexaterminal/internal/questionbank"
	"nexaterminal/internal/repository"
)

var (
	ErrUnknownTopic       = questionbank.ErrUnknownTopic
	ErrInvalidCompanySize = errors.New("invalid company size")
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	defaultTopLimit     = 10
)

// AssessmentService runs health checks and keeps their results
type AssessmentService struct {
	banks   *questionbank.Registry
	repo    repository.AssessmentRepo
	results cache.ResultCache
	stats   cache.ViolationStats
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewAssessmentService creates a new assessment service. A nil logger
// falls back to slog.Default(); nil metrics disables instrumentation.
func NewAssessmentService(
	banks *questionbank.Registry,
	repo repository.AssessmentRepo,
	results cache.ResultCache,
	stats cache.ViolationStats,
	m *metrics.Metrics,
	logger *slog.Logger,
) *AssessmentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssessmentService{
		banks:   banks,
		repo:    repo,
		results: results,
		stats:   stats,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Topics lists the available question banks
func (s *AssessmentService) Topics() []model.TopicSummary {
	topics := s.banks.Topics()
	out := make([]model.TopicSummary, 0, len(topics))
	for _, t := range topics {
		b, err := s.banks.Get(t)
		if err != nil {
			continue
		}
		out = append(out, model.TopicSummary{
			Topic:         b.Topic,
			Title:         b.Title,
			QuestionCount: len(b.Questions),
		})
	}
	return out
}

// Questionnaire returns the questions of a topic grouped by category,
// without the correct answers
func (s *AssessmentService) Questionnaire(topic string) (*model.Questionnaire, error) {
	b, err := s.banks.Get(topic)
	if err != nil {
		return nil, err
	}

	sections := make(map[string]*model.QuestionSection)
	q := &model.Questionnaire{Topic: b.Topic, Title: b.Title}
	for _, cat := range b.Categories() {
		sections[cat] = &model.QuestionSection{
			Category:    cat,
			DisplayName: b.CategoryName(cat),
			Questions:   []model.PublicQuestion{},
		}
	}
	for _, question := range b.Questions {
		pq := model.PublicQuestion{
			ID:      question.ID,
			Text:    question.Text,
			Article: question.Article,
			Type:    question.Type,
		}
		for _, o := range question.Options {
			pq.Options = append(pq.Options, model.PublicOption{Value: o.Value, Text: o.Text})
		}
		sec := sections[question.Category]
		sec.Questions = append(sec.Questions, pq)
	}
	for _, cat := range b.Categories() {
		q.Sections = append(q.Sections, *sections[cat])
	}
	return q, nil
}

// Submit evaluates the answers, stores the assessment and returns it.
// Only the database write can fail the request; cache, statistics and
// metrics are best effort.
func (s *AssessmentService) Submit(ctx context.Context, userID, topic string, req *model.SubmitAssessmentRequest) (*model.Assessment, error) {
	b, err := s.banks.Get(topic)
	if err != nil {
		return nil, err
	}
	size, ok := model.ParseCompanySize(req.CompanySize)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCompanySize, req.CompanySize)
	}
	// ids outside the bank are dropped before they reach storage
	answers := make(model.Answers, len(req.Answers))
	for id, v := range req.Answers {
		if _, ok := b.QuestionByID(id); ok {
			answers[id] = v
		}
	}

	report := compliance.New(b, size, req.CompanyName).Evaluate(answers)

	a := &model.Assessment{
		ID:          uuid.New().String(),
		UserID:      userID,
		Topic:       topic,
		CompanySize: size,
		CompanyName: req.CompanyName,
		Answers:     answers,
		Report:      report,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, fmt.Errorf("store assessment: %w", err)
	}

	if err := s.results.Set(ctx, a); err != nil {
		s.logger.Warn("cache assessment failed", "topic", topic, "user", userID, "error", err)
	}
	ids := make([]string, 0, len(report.Violations))
	for _, v := range report.Violations {
		ids = append(ids, v.QuestionID)
	}
	if err := s.stats.Record(ctx, topic, ids); err != nil {
		s.logger.Warn("record violation stats failed", "topic", topic, "error", err)
	}
	if s.metrics != nil {
		s.metrics.Observe(topic, &a.Report)
	}

	s.logger.Info("assessment completed",
		"id", a.ID,
		"topic", topic,
		"user", userID,
		"companySize", size,
		"percentage", report.Percentage,
		"violations", len(report.Violations),
	)
	return a, nil
}

// Latest returns the most recent assessment of a user for a topic, or
// nil when there is none
func (s *AssessmentService) Latest(ctx context.Context, userID, topic string) (*model.Assessment, error) {
	if _, err := s.banks.Get(topic); err != nil {
		return nil, err
	}

	cached, err := s.results.Get(ctx, userID, topic)
	if err != nil {
		s.logger.Warn("read cached assessment failed", "topic", topic, "user", userID, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	a, err := s.repo.GetLatest(ctx, userID, topic)
	if err != nil {
		return nil, err
	}
	if a != nil {
		if err := s.results.Set(ctx, a); err != nil {
			s.logger.Warn("cache assessment failed", "topic", topic, "user", userID, "error", err)
		}
	}
	return a, nil
}

// History lists past assessments, newest first
func (s *AssessmentService) History(ctx context.Context, userID, topic string, limit int) ([]*model.Assessment, error) {
	if _, err := s.banks.Get(topic); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID, topic, clampLimit(limit, defaultHistoryLimit, maxHistoryLimit))
}

// TopViolations returns the most frequently violated questions of a topic
func (s *AssessmentService) TopViolations(ctx context.Context, topic string, limit int) ([]model.ViolationStat, error) {
	b, err := s.banks.Get(topic)
	if err != nil {
		return nil, err
	}

	counts, err := s.stats.Top(ctx, topic, clampLimit(limit, defaultTopLimit, len(b.Questions)))
	if err != nil {
		return nil, err
	}

	out := make([]model.ViolationStat, 0, len(counts))
	for _, c := range counts {
		stat := model.ViolationStat{QuestionID: c.QuestionID, Count: c.Count}
		// questions removed from the bank keep their id only
		if q, ok := b.QuestionByID(c.QuestionID); ok {
			stat.Question = q.Text
			stat.Article = q.Article
		}
		out = append(out, stat)
	}
	return out, nil
}

func clampLimit(limit, def, maximum int) int {
	if limit <= 0 {
		limit = def
	}
	return min(limit, maximum)
}

package moderation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"askbox/internal/models"
)

// SubmitResult reports the fate of an accepted submission.
type SubmitResult struct {
	Question models.Question
	Queued   bool
	Reasons  []string
}

// Submitter decides the fate of one incoming question: validate, rate
// check, evaluate policy, persist, audit, notify.
type Submitter struct {
	policy     *Policy
	limiter    *RateLimiter
	questions  QuestionStore
	reviews    ReviewStore
	audit      *AuditLog
	notifier   Notifier
	hashOrigin func(string) string
	now        func() time.Time
}

func NewSubmitter(policy *Policy, limiter *RateLimiter, questions QuestionStore, reviews ReviewStore, audit *AuditLog, notifier Notifier, hashOrigin func(string) string) *Submitter {
	return &Submitter{
		policy:     policy,
		limiter:    limiter,
		questions:  questions,
		reviews:    reviews,
		audit:      audit,
		notifier:   notifier,
		hashOrigin: hashOrigin,
		now:        time.Now,
	}
}

// Submit runs the full submission pipeline. Store failures abort the
// remaining steps without compensating already-written rows; the error
// is reported to the notifier, never to the end user in raw form.
func (s *Submitter) Submit(ctx context.Context, content string, who Identity, origin string) (SubmitResult, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return SubmitResult{}, ErrEmptyContent
	}

	originHash := ""
	if origin != "" {
		originHash = s.hashOrigin(origin)
	}

	allowed, err := s.limiter.Allow(ctx, who.SessionID, originHash, s.now())
	if err != nil {
		s.notifier.Notify("Submission failed", map[string]interface{}{
			"error": err.Error(), "session_id": who.SessionID,
		})
		return SubmitResult{}, fmt.Errorf("rate check: %w", err)
	}
	if !allowed {
		// No audit row for abuse attempts, only the side channel.
		s.notifier.Notify("Submission rate limited", map[string]interface{}{
			"role": who.ActorRole(), "session_id": who.SessionID,
		})
		return SubmitResult{}, ErrRateLimited
	}

	dec := s.policy.Evaluate(trimmed)

	q := models.Question{Content: trimmed, OriginHash: originHash}
	if err := s.questions.Insert(ctx, &q); err != nil {
		s.notifier.Notify("Submission failed", map[string]interface{}{
			"error": err.Error(), "session_id": who.SessionID,
		})
		return SubmitResult{}, fmt.Errorf("insert question: %w", err)
	}

	if dec.Action == ActionQueue {
		pr := models.PendingReview{
			QuestionID: q.ID,
			Reason:     strings.Join(dec.Reasons, ","),
			Status:     models.ReviewStatusPending,
		}
		if err := s.reviews.Insert(ctx, &pr); err != nil {
			// The question row stays behind with no review; accepted.
			s.notifier.Notify("Submission failed", map[string]interface{}{
				"error": err.Error(), "question_id": q.ID,
			})
			return SubmitResult{}, fmt.Errorf("insert pending review: %w", err)
		}

		s.audit.Append(ctx, models.ActionQueue, who.ActorRole(), &q.ID, models.LogDetails{
			SessionID: who.SessionID,
			Reasons:   dec.Reasons,
			PendingID: pr.ID,
		})
		s.notifier.Notify("Question queued for review", map[string]interface{}{
			"question_id": q.ID, "reasons": strings.Join(dec.Reasons, ","),
		})
		return SubmitResult{Question: q, Queued: true, Reasons: dec.Reasons}, nil
	}

	// Direct publish carries no question id in its log entry.
	s.audit.Append(ctx, models.ActionPublish, who.ActorRole(), nil, models.LogDetails{
		SessionID: who.SessionID,
	})
	return SubmitResult{Question: q}, nil
}

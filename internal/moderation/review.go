package moderation

import (
	"context"
	"fmt"
	"time"

	"askbox/internal/models"
)

// Reviewer drives the pending-review state machine: pending is the only
// non-terminal state, approve and reject each fire exactly once per
// review, and every action lands in the audit log.
//
// reject is three independent store calls (review update, question
// archive, log append) with no cross-table transaction; a failure in
// between leaves a rejected review with an unarchived question. That
// window is reported to the notifier, not compensated.
type Reviewer struct {
	questions QuestionStore
	reviews   ReviewStore
	audit     *AuditLog
	notifier  Notifier
	now       func() time.Time
}

func NewReviewer(questions QuestionStore, reviews ReviewStore, audit *AuditLog, notifier Notifier) *Reviewer {
	return &Reviewer{
		questions: questions,
		reviews:   reviews,
		audit:     audit,
		notifier:  notifier,
		now:       time.Now,
	}
}

// Approve marks a pending review approved. Visibility of the question is
// untouched. A review that already left pending returns ErrAlreadyReviewed
// with no writes.
func (r *Reviewer) Approve(ctx context.Context, who Identity, reviewID uint) error {
	if !who.CanModerate() {
		return ErrForbidden
	}

	pr, err := r.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if pr.Status != models.ReviewStatusPending {
		return ErrAlreadyReviewed
	}

	if err := r.reviews.MarkReviewed(ctx, pr.ID, models.ReviewStatusApproved, r.now()); err != nil {
		r.notifier.Notify("Approve failed", map[string]interface{}{
			"error": err.Error(), "pending_id": pr.ID,
		})
		return fmt.Errorf("mark approved: %w", err)
	}

	r.audit.Append(ctx, models.ActionApprove, who.Role, &pr.QuestionID, models.LogDetails{
		PendingID: pr.ID, SessionID: who.SessionID,
	})
	r.notifier.Notify("Approved by moderator", map[string]interface{}{
		"question_id": pr.QuestionID, "pending_id": pr.ID, "role": who.Role,
	})
	return nil
}

// Reject marks a pending review rejected and soft-archives the linked
// question.
func (r *Reviewer) Reject(ctx context.Context, who Identity, reviewID uint) error {
	if !who.CanModerate() {
		return ErrForbidden
	}

	pr, err := r.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if pr.Status != models.ReviewStatusPending {
		return ErrAlreadyReviewed
	}

	now := r.now()
	if err := r.reviews.MarkReviewed(ctx, pr.ID, models.ReviewStatusRejected, now); err != nil {
		r.notifier.Notify("Reject failed", map[string]interface{}{
			"error": err.Error(), "pending_id": pr.ID,
		})
		return fmt.Errorf("mark rejected: %w", err)
	}
	if err := r.questions.SetArchived(ctx, pr.QuestionID, true, &now); err != nil {
		r.notifier.Notify("Reject failed", map[string]interface{}{
			"error": err.Error(), "question_id": pr.QuestionID,
		})
		return fmt.Errorf("archive question: %w", err)
	}

	r.audit.Append(ctx, models.ActionReject, who.Role, &pr.QuestionID, models.LogDetails{
		PendingID: pr.ID, SessionID: who.SessionID,
	})
	r.notifier.Notify("Rejected by moderator", map[string]interface{}{
		"question_id": pr.QuestionID, "pending_id": pr.ID, "role": who.Role,
	})
	return nil
}

// Delete hard-deletes a question after snapshotting it into the audit
// log, so the content stays forensically recoverable from the log only.
// It ignores any pending-review state.
func (r *Reviewer) Delete(ctx context.Context, who Identity, questionID uint) error {
	if !who.CanModerate() {
		return ErrForbidden
	}

	q, err := r.questions.GetByID(ctx, questionID)
	if err != nil {
		return err
	}
	snapshot := q

	if err := r.questions.Delete(ctx, questionID); err != nil {
		r.notifier.Notify("Delete failed", map[string]interface{}{
			"error": err.Error(), "question_id": questionID,
		})
		return fmt.Errorf("delete question: %w", err)
	}

	r.audit.Append(ctx, models.ActionDelete, who.Role, &questionID, models.LogDetails{
		Snapshot: &snapshot, SessionID: who.SessionID,
	})
	r.notifier.Notify("Deleted by moderator", map[string]interface{}{
		"question_id": questionID, "role": who.Role,
	})
	return nil
}

// Restore clears a question's archived state. The rejected review that
// archived it stays rejected; restore does not revive reviews.
func (r *Reviewer) Restore(ctx context.Context, who Identity, questionID uint) error {
	if !who.CanModerate() {
		return ErrForbidden
	}

	if err := r.questions.SetArchived(ctx, questionID, false, nil); err != nil {
		r.notifier.Notify("Restore failed", map[string]interface{}{
			"error": err.Error(), "question_id": questionID,
		})
		return fmt.Errorf("restore question: %w", err)
	}

	r.audit.Append(ctx, models.ActionRestore, who.Role, &questionID, models.LogDetails{
		SessionID: who.SessionID,
	})
	r.notifier.Notify("Restored by moderator", map[string]interface{}{
		"question_id": questionID, "role": who.Role,
	})
	return nil
}

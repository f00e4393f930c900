package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"askbox/internal/middleware"
	"askbox/internal/moderation"
	"askbox/internal/utils"

	"github.com/gin-gonic/gin"
)

const reviewListLimit = 50

// ReviewHandler exposes the moderation queue and the audit log to
// moderators and admins. The role gate runs in middleware before any of
// these handlers; the Reviewer checks again before touching the store.
type ReviewHandler struct {
	reviewer *moderation.Reviewer
	reviews  moderation.ReviewStore
	audit    *moderation.AuditLog
}

func NewReviewHandler(reviewer *moderation.Reviewer, reviews moderation.ReviewStore, audit *moderation.AuditLog) *ReviewHandler {
	return &ReviewHandler{reviewer: reviewer, reviews: reviews, audit: audit}
}

// List shows the newest reviews with their current status.
func (h *ReviewHandler) List(c *gin.Context) {
	items, err := h.reviews.ListRecent(c.Request.Context(), reviewListLimit)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load reviews")
		return
	}

	Render(c, http.StatusOK, "admin/review.html", gin.H{
		"Title":   "Pending Reviews",
		"Reviews": items,
		"OK":      c.Query("ok") != "",
		"Error":   c.Query("error"),
	})
}

func (h *ReviewHandler) Approve(c *gin.Context) {
	h.act(c, "id", h.reviewer.Approve)
}

func (h *ReviewHandler) Reject(c *gin.Context) {
	h.act(c, "id", h.reviewer.Reject)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	h.act(c, "question_id", h.reviewer.Delete)
}

func (h *ReviewHandler) Restore(c *gin.Context) {
	h.act(c, "question_id", h.reviewer.Restore)
}

// act runs one review action and redirects with a coarse status flag.
func (h *ReviewHandler) act(c *gin.Context, field string, fn func(ctx context.Context, who moderation.Identity, id uint) error) {
	id := utils.StringToUint(c.PostForm(field))
	if id == 0 {
		c.Redirect(http.StatusFound, "/admin/review?error=missing")
		return
	}

	err := fn(c.Request.Context(), middleware.CurrentIdentity(c), id)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/admin/review?ok=1")
	case errors.Is(err, moderation.ErrForbidden):
		c.String(http.StatusForbidden, "forbidden")
	case errors.Is(err, moderation.ErrNotFound):
		c.Redirect(http.StatusFound, "/admin/review?error=missing")
	case errors.Is(err, moderation.ErrAlreadyReviewed):
		c.Redirect(http.StatusFound, "/admin/review?error=conflict")
	default:
		c.Redirect(http.StatusFound, "/admin/review?error=server")
	}
}

// Logs shows the audit trail, filterable by action, role and date.
func (h *ReviewHandler) Logs(c *gin.Context) {
	filter := moderation.LogFilter{
		Action:    c.Query("action"),
		ActorRole: c.Query("role"),
	}
	if after := c.Query("after"); after != "" {
		if t, err := time.Parse("2006-01-02", after); err == nil {
			filter.After = t
		}
	}

	entries, err := h.audit.Recent(c.Request.Context(), filter)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load logs")
		return
	}

	Render(c, http.StatusOK, "admin/logs.html", gin.H{
		"Title":   "Moderation Logs",
		"Entries": entries,
	})
}

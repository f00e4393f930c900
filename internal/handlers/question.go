package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"askbox/internal/middleware"
	"askbox/internal/moderation"
	"askbox/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	boardLimit    = 8
	boardCacheKey = "board:index"
	boardCacheTTL = time.Minute
)

type questionCard struct {
	ID        uint
	Content   template.HTML
	CreatedAt time.Time
}

type QuestionHandler struct {
	questions moderation.QuestionStore
	submitter *moderation.Submitter
	cache     *utils.Cache
}

func NewQuestionHandler(questions moderation.QuestionStore, submitter *moderation.Submitter, cache *utils.Cache) *QuestionHandler {
	return &QuestionHandler{questions: questions, submitter: submitter, cache: cache}
}

// Board shows the newest non-archived questions.
func (h *QuestionHandler) Board(c *gin.Context) {
	if cached := h.cache.Get(boardCacheKey); cached != nil {
		if items, ok := cached.([]questionCard); ok {
			h.renderBoard(c, items)
			return
		}
	}

	rows, err := h.questions.ListPublic(c.Request.Context(), boardLimit)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load questions")
		return
	}

	items := make([]questionCard, 0, len(rows))
	for _, q := range rows {
		items = append(items, questionCard{
			ID:        q.ID,
			Content:   utils.RenderContent(q.Content),
			CreatedAt: q.CreatedAt,
		})
	}
	h.cache.Set(boardCacheKey, items, boardCacheTTL)

	h.renderBoard(c, items)
}

func (h *QuestionHandler) renderBoard(c *gin.Context, items []questionCard) {
	Render(c, http.StatusOK, "board/list.html", gin.H{
		"Title":     "Questions",
		"Questions": items,
		"Posted":    c.Query("posted") != "",
	})
}

// ShowAsk renders the submission form, echoing any redirect flag.
func (h *QuestionHandler) ShowAsk(c *gin.Context) {
	Render(c, http.StatusOK, "board/ask.html", gin.H{
		"Title":  "Ask",
		"Error":  c.Query("error"),
		"Queued": c.Query("queued") != "",
	})
}

// Submit handles POST /ask/submit. The outcome is always a redirect
// carrying a coarse status flag; raw errors never reach the visitor.
func (h *QuestionHandler) Submit(c *gin.Context) {
	content := c.PostForm("content")
	who := middleware.CurrentIdentity(c)

	res, err := h.submitter.Submit(c.Request.Context(), content, who, c.ClientIP())
	switch {
	case errors.Is(err, moderation.ErrEmptyContent):
		c.Redirect(http.StatusFound, "/ask?error=empty")
	case errors.Is(err, moderation.ErrRateLimited):
		c.Redirect(http.StatusFound, "/ask?error=rate")
	case err != nil:
		c.Redirect(http.StatusFound, "/ask?error=server")
	case res.Queued:
		c.Redirect(http.StatusFound, "/ask?queued=1")
	default:
		h.cache.Delete(boardCacheKey)
		c.Redirect(http.StatusFound, "/?posted=1")
	}
}

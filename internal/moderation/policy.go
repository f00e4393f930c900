package moderation

import (
	"strings"
	"unicode/utf8"
)

// Policy actions.
const (
	ActionPublish = "publish"
	ActionQueue   = "queue"
)

// Reason codes, appended in rule order.
const (
	ReasonTooLong    = "len>280"
	ReasonBannedWord = "banned_word"
)

const maxPublishLength = 280

// Decision is the outcome of evaluating one submission.
type Decision struct {
	Action  string
	Reasons []string
}

// Policy decides whether a submission publishes immediately or goes to
// the review queue. It is a fixed, deterministic rule set: the policy
// never rejects content outright, rejection is a moderator decision.
type Policy struct {
	banned []string
}

func NewPolicy() *Policy {
	return &Policy{banned: []string{"spam", "abuse"}}
}

// Evaluate is pure: no I/O, identical input yields identical output.
// A submission can match several rules; reasons accumulate.
func (p *Policy) Evaluate(content string) Decision {
	trimmed := strings.TrimSpace(content)
	lower := strings.ToLower(trimmed)

	var reasons []string
	if utf8.RuneCountInString(trimmed) > maxPublishLength {
		reasons = append(reasons, ReasonTooLong)
	}
	for _, w := range p.banned {
		if strings.Contains(lower, w) {
			reasons = append(reasons, ReasonBannedWord)
			break
		}
	}

	if len(reasons) > 0 {
		return Decision{Action: ActionQueue, Reasons: reasons}
	}
	return Decision{Action: ActionPublish}
}

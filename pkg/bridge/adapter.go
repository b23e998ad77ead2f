package bridge

import (
	"strings"

	"github.com/rlmdev/rlmbridge/pkg/api"
)

// ToContextAndQuery collapses an ordered message sequence into the
// two-part input model of the engine: every message except the last is
// rendered as a "[ROLE]: content" block joined by blank lines (the
// context), and the last message's content becomes the query.
//
// The function is total. An empty sequence yields ("", ""), a missing role
// defaults to "user", missing content to the empty string. It must never
// be the reason a request fails.
func ToContextAndQuery(messages []api.Message) (string, string) {
	if len(messages) == 0 {
		return "", ""
	}

	parts := make([]string, 0, len(messages)-1)
	for _, msg := range messages[:len(messages)-1] {
		role := msg.Role
		if role == "" {
			role = "user"
		}
		parts = append(parts, "["+strings.ToUpper(role)+"]: "+msg.Content)
	}

	return strings.Join(parts, "\n\n"), messages[len(messages)-1].Content
}

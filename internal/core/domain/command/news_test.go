package command

import (
	"errors"
	"iranscbot/internal/core/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsRespond(t *testing.T) {
	tests := []struct {
		name  string
		reply domain.Reply
	}{
		{name: "article", reply: domain.Reply{Text: domain.FormatArticle(domain.Article{Title: "t", URL: "u"})}},
		{name: "no news", reply: domain.Reply{Text: domain.MsgNewsNotFound, Failure: domain.FailureNotFound}},
		{name: "provider failed", reply: domain.Reply{Text: domain.MsgNewsError, Failure: domain.FailureUpstream}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nc := &MockNewsClient{reply: tc.reply}
			ts := &MockTextSender{}
			h := NewNews(nc, ts)

			err := h.Respond(t.Context(), time.Second, &domain.Message{Text: "/news"})

			require.NoError(t, err)
			assert.Equal(t, 1, nc.calls)
			assert.Equal(t, []string{tc.reply.Text}, ts.Replies())
			assert.Equal(t, "/news", h.GetCommand())
			assert.Equal(t, domain.DescNews, h.Description())
		})
	}
}

func TestNewsRespondSendFails(t *testing.T) {
	ts := &MockTextSender{err: errors.New("mock error")}

	err := NewNews(&MockNewsClient{reply: domain.Reply{Text: "X"}}, ts).
		Respond(t.Context(), time.Second, &domain.Message{Text: "/news"})

	require.ErrorIs(t, err, domain.ErrSendingReplyFailed)
}

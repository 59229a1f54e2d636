package assistant

import (
	"testing"
	"time"

	"wukala/database/kv"
	"wukala/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *DefaultAssistantService {
	return &DefaultAssistantService{
		Ctx: NewContextStore(kv.NewMemoryStore(), time.Hour),
	}
}

func TestAskDeliversInlineReplyWithoutQueue(t *testing.T) {
	s := newTestService()

	ack, err := s.Ask("h1", "How do I file for khula?")
	require.NoError(t, err)
	assert.True(t, ack.Accepted)
	assert.False(t, ack.Typing)
	assert.Contains(t, ack.Reply, "Family Courts")

	history, err := s.History("h1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.AssistantRoleUser, history[0].Role)
	assert.Equal(t, models.AssistantRoleAssistant, history[1].Role)
	assert.Equal(t, ack.Reply, history[1].Text)
}

func TestTopicKeywordMatching(t *testing.T) {
	cases := []struct {
		text  string
		topic string
	}{
		{"the police refused to register my FIR", "criminal"},
		{"my landlord raised the rent on the plot", "property"},
		{"my employer withheld my salary", "labour"},
		{"I received an FBR tax notice", "tax"},
		{"hello there", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.topic, matchTopic(tc.text), tc.text)
	}
}

func TestMultiTopicQuestionMatchesStably(t *testing.T) {
	// "property" precedes "tax" in the precedence order, so the same
	// question always gets the same reply.
	for i := 0; i < 20; i++ {
		assert.Equal(t, "property", matchTopic("how is property tax assessed on my plot?"))
	}
}

func TestUnmatchedQuestionGetsFallbackReply(t *testing.T) {
	s := newTestService()

	ack, err := s.Ask("h1", "hello")
	require.NoError(t, err)
	assert.Contains(t, fallbackReplies, ack.Reply)
}

// recordingQueue captures enqueued replies instead of scheduling them.
type recordingQueue struct {
	handle string
	text   string
	delay  time.Duration
}

func (q *recordingQueue) EnqueueReply(handle, text string, delay time.Duration) error {
	q.handle, q.text, q.delay = handle, text, delay
	return nil
}

func TestAskWithQueueSchedulesDelayedReply(t *testing.T) {
	q := &recordingQueue{}
	s := newTestService()
	s.Queue = q
	s.Delay = 1500 * time.Millisecond

	ack, err := s.Ask("h1", "bail application")
	require.NoError(t, err)
	assert.True(t, ack.Typing)
	assert.Empty(t, ack.Reply)
	assert.Equal(t, "h1", q.handle)
	assert.Equal(t, 1500*time.Millisecond, q.delay)

	// Only the user's message is in history until the worker runs.
	history, err := s.History("h1")
	require.NoError(t, err)
	require.Len(t, history, 1)

	// Worker delivery applies its effect regardless of the asking client.
	reply, err := s.Reply(q.handle, q.text)
	require.NoError(t, err)
	assert.Contains(t, reply, "FIR")

	history, err = s.History("h1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, reply, history[1].Text)
}

func TestClearHistory(t *testing.T) {
	s := newTestService()

	_, err := s.Ask("h1", "tax notice")
	require.NoError(t, err)
	require.NoError(t, s.ClearHistory("h1"))

	history, err := s.History("h1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

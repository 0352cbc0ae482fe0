package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_Greeting(t *testing.T) {
	c := NewConversation(DefaultResponder())

	turns := c.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, AssistantGreeting, turns[0].Text)
	assert.False(t, turns[0].IsUser)
	assert.NotEmpty(t, turns[0].ID)
}

func TestConversation_Send(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	oldNow := timeNow
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = oldNow })

	c := NewConversation(DefaultResponder())

	user, reply, topic, ok := c.Send("My baby has a fever")
	require.True(t, ok)
	assert.Equal(t, TopicFever, topic)
	assert.True(t, user.IsUser)
	assert.Equal(t, "My baby has a fever", user.Text)
	assert.False(t, reply.IsUser)
	assert.Contains(t, reply.Text, "For fever management:")
	assert.Equal(t, fixed, reply.Timestamp)
	assert.NotEqual(t, user.ID, reply.ID)

	turns := c.Turns()
	require.Len(t, turns, 3)
	assert.Equal(t, user, turns[1])
	assert.Equal(t, reply, turns[2])
}

func TestConversation_BlankMessageIgnored(t *testing.T) {
	c := NewConversation(DefaultResponder())

	_, _, _, ok := c.Send("   ")
	assert.False(t, ok)
	assert.Len(t, c.Turns(), 1)
}

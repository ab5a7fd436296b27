package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyageui/voyage"
)

func TestMessageStoreAppendAndRead(t *testing.T) {
	history := NewMessageStore(nil)
	require.Equal(t, 0, history.Len())

	history.Append(
		voyage.Message{Role: voyage.RoleUser, Content: "Plan a trip to Tokyo"},
		voyage.Message{Role: voyage.RoleAssistant, Content: "Here are some flights."},
	)
	assert.Equal(t, 2, history.Len())

	msgs := history.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, voyage.RoleUser, msgs[0].Role)

	// Mutating the returned slice must not affect the store.
	msgs[0].Content = "changed"
	assert.Equal(t, "Plan a trip to Tokyo", history.Messages()[0].Content)
}

func TestMessageStoreLast(t *testing.T) {
	history := NewMessageStoreFrom([]voyage.Message{
		{Role: voyage.RoleUser, Content: "one"},
		{Role: voyage.RoleAssistant, Content: "two"},
		{Role: voyage.RoleUser, Content: "three"},
	}, nil)

	last := history.Last(2)
	require.Len(t, last, 2)
	assert.Equal(t, "two", last[0].Content)
	assert.Equal(t, "three", last[1].Content)

	assert.Len(t, history.Last(10), 3)
	assert.Nil(t, history.Last(0))
}

func TestMessageStoreSyncReload(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()

	history := NewMessageStore(adapter)
	history.Append(voyage.Message{
		Role: voyage.RoleAssistant,
		ToolCalls: []voyage.ToolCall{
			{ID: "call-1", Name: "search_flights", Arguments: `{"destination":"Tokyo"}`},
		},
	})
	require.NoError(t, history.Sync(ctx, "thread-1"))

	restored := NewMessageStore(adapter)
	require.NoError(t, restored.Reload(ctx, "thread-1"))
	require.Equal(t, 1, restored.Len())
	assert.Equal(t, "search_flights", restored.Messages()[0].ToolCalls[0].Name)
}

func TestMessageStoreReloadMissingKey(t *testing.T) {
	history := NewMessageStore(nil)
	err := history.Reload(context.Background(), "no-such-thread")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryAdapter(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()

	require.NoError(t, adapter.Set(ctx, "a", []byte(`1`)))
	require.NoError(t, adapter.Set(ctx, "b", []byte(`2`)))

	v, ok, err := adapter.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`1`), []byte(v))

	keys, err := adapter.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)

	require.NoError(t, adapter.Delete(ctx, "a"))
	_, ok, err = adapter.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, adapter.Clear(ctx))
	n, err := adapter.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

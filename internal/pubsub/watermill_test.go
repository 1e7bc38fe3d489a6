package pubsub_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct {
	Seq int `json:"seq"`
}

func TestWatermillBridge(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	t.Run("delivers topic, payload and metadata", func(t *testing.T) {
		got := make(chan pubsub.Message, 1)
		require.NoError(t, bus.Subscribe(ctx, "test.raw", func(ctx context.Context, msg pubsub.Message) error {
			got <- msg
			return nil
		}))

		err := bus.Publish(ctx, pubsub.Message{
			Topic:    "test.raw",
			Payload:  []byte("hello"),
			Metadata: map[string]string{"request_id": "r-1"},
		})
		require.NoError(t, err)

		select {
		case msg := <-got:
			assert.Equal(t, "test.raw", msg.Topic)
			assert.Equal(t, []byte("hello"), msg.Payload)
			assert.Equal(t, "r-1", msg.Metadata["request_id"])
			assert.NotContains(t, msg.Metadata, "topic")
		case <-time.After(2 * time.Second):
			t.Fatal("message was not delivered")
		}
	})

	t.Run("typed events round trip", func(t *testing.T) {
		event := pubsub.NewEvent[ping]("test.typed")
		got := make(chan ping, 1)
		require.NoError(t, event.Subscribe(ctx, bus, func(ctx context.Context, p ping) error {
			got <- p
			return nil
		}))

		require.NoError(t, event.Publish(ctx, bus, ping{Seq: 7}))

		select {
		case p := <-got:
			assert.Equal(t, 7, p.Seq)
		case <-time.After(2 * time.Second):
			t.Fatal("typed message was not delivered")
		}
	})

	t.Run("failed messages are dropped, not redelivered", func(t *testing.T) {
		calls := make(chan int, 4)
		n := 0
		require.NoError(t, bus.Subscribe(ctx, "test.nack", func(ctx context.Context, msg pubsub.Message) error {
			n++
			calls <- n
			if n == 1 {
				return errors.New("first one fails")
			}
			return nil
		}))

		require.NoError(t, bus.Publish(ctx, pubsub.Message{Topic: "test.nack"}))
		require.NoError(t, bus.Publish(ctx, pubsub.Message{Topic: "test.nack"}))

		for want := 1; want <= 2; want++ {
			select {
			case got := <-calls:
				assert.Equal(t, want, got)
			case <-time.After(2 * time.Second):
				t.Fatalf("call %d was not made", want)
			}
		}
	})
}

package mq

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []*EngagementEvent
	err    error
}

func (r *recorder) PublishEngagementEvent(ctx context.Context, event *EngagementEvent) error {
	r.events = append(r.events, event)
	return r.err
}

func (r *recorder) Close() error { return nil }

func TestNewEvent(t *testing.T) {
	ev := NewEvent(EventReply, "u1").WithVideo("v1").WithComment("c1")
	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, EventReply, ev.Type)
	assert.Equal(t, "u1", ev.ActorID)
	assert.Equal(t, "v1", ev.VideoID)
	assert.Equal(t, "c1", ev.CommentID)
	assert.Empty(t, ev.ChannelID)
	assert.NotZero(t, ev.Timestamp)
}

func TestPublishSwallowsErrors(t *testing.T) {
	rec := &recorder{err: errors.New("broker down")}
	SetProducer(rec)
	defer SetProducer(nil)

	assert.NotPanics(t, func() {
		Publish(context.Background(), NewEvent(EventLike, "u1"))
	})
	assert.Len(t, rec.events, 1)
}

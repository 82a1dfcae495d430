package service

import (
	"context"
	"testing"
	"time"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/database/dbtest"
	"VidTube.com/pkg/mq"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	ctx    context.Context
	conn   *gorm.DB
	users  []*model.User
	video  *model.Video
	events *eventRecorder
}

type eventRecorder struct {
	events []*mq.EngagementEvent
}

func (r *eventRecorder) PublishEngagementEvent(ctx context.Context, event *mq.EngagementEvent) error {
	r.events = append(r.events, event)
	return nil
}

func (r *eventRecorder) Close() error { return nil }

func (r *eventRecorder) types() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func setup(t *testing.T) *fixture {
	conn := dbtest.New(t)
	db.Init(conn)
	rec := &eventRecorder{}
	mq.SetProducer(rec)
	t.Cleanup(func() { mq.SetProducer(nil) })

	f := &fixture{ctx: context.Background(), conn: conn, events: rec}
	for _, name := range []string{"uploader", "alice", "bob"} {
		u := &model.User{Username: name, Email: name + "@example.com", Password: "x"}
		require.NoError(t, conn.Create(u).Error)
		f.users = append(f.users, u)
	}
	f.video = &model.Video{
		Title: "clip", URL: "http://v", ThumbnailURL: "http://t", Category: "music",
		ChannelID: "ch", UploaderID: f.users[0].ID,
	}
	require.NoError(t, conn.Create(f.video).Error)
	return f
}

func (f *fixture) reloadVideo(t *testing.T) *model.Video {
	var v model.Video
	require.NoError(t, f.conn.First(&v, "id = ?", f.video.ID).Error)
	return &v
}

func (f *fixture) reloadComment(t *testing.T, id string) *model.Comment {
	var c model.Comment
	require.NoError(t, f.conn.First(&c, "id = ?", id).Error)
	return &c
}

// pause 保证相邻写入的 created_at 可区分
func pause() {
	time.Sleep(2 * time.Millisecond)
}

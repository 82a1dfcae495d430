package service

import (
	"context"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/database/dbtest"
	"VidTube.com/pkg/mq"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	ctx     context.Context
	conn    *gorm.DB
	owner   *model.User
	viewer  *model.User
	channel *model.Channel
}

func setup(t *testing.T) *fixture {
	conn := dbtest.New(t)
	db.Init(conn)
	mq.SetProducer(nil)

	f := &fixture{
		ctx:    context.Background(),
		conn:   conn,
		owner:  &model.User{Username: "owner", Email: "owner@example.com", Password: "x"},
		viewer: &model.User{Username: "viewer", Email: "viewer@example.com", Password: "x"},
	}
	require.NoError(t, conn.Create(f.owner).Error)
	require.NoError(t, conn.Create(f.viewer).Error)
	f.channel = &model.Channel{Name: "Main", OwnerID: f.owner.ID}
	require.NoError(t, conn.Create(f.channel).Error)
	return f
}

func (f *fixture) newVideo(t *testing.T, title string) *model.Video {
	v, err := NewVideoService(f.ctx).CreateVideo(f.owner.ID, &CreateVideoRequest{
		Title:        title,
		VideoUrl:     "http://cdn/" + title + ".mp4",
		ThumbnailUrl: "http://cdn/" + title + ".jpg",
		Category:     "music",
		ChannelId:    f.channel.ID,
	})
	require.NoError(t, err)
	return v
}

func (f *fixture) reloadVideo(t *testing.T, id string) *model.Video {
	var v model.Video
	require.NoError(t, f.conn.First(&v, "id = ?", id).Error)
	return &v
}

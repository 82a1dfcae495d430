package service

import (
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistMembership(t *testing.T) {
	f := setup(t)
	a, b := f.newVideo(t, "a"), f.newVideo(t, "b")
	svc := NewPlaylistService(f.ctx)

	pl, err := svc.CreatePlaylist(f.viewer.ID, &CreatePlaylistRequest{Name: "Later"})
	require.NoError(t, err)
	assert.Empty(t, pl.Thumbnail)

	pl, err = svc.AddVideo(pl.ID, f.viewer.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ThumbnailURL, pl.Thumbnail)

	_, err = svc.AddVideo(pl.ID, f.viewer.ID, a.ID)
	assert.ErrorIs(t, err, errno.InvalidStateErr)
	assert.Equal(t, "Video already in playlist", errno.ConvertErr(err).ErrMsg)

	pl, err = svc.AddVideo(pl.ID, f.viewer.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ThumbnailURL, pl.Thumbnail)
	require.Len(t, pl.Videos, 2)
	assert.Equal(t, a.ID, pl.Videos[0].ID)
	assert.Equal(t, b.ID, pl.Videos[1].ID)

	// 移除第一个视频后封面保持不变
	pl, err = svc.RemoveVideo(pl.ID, f.viewer.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ThumbnailURL, pl.Thumbnail)

	// 移除不在列表中的视频不报错
	pl, err = svc.RemoveVideo(pl.ID, f.viewer.ID, a.ID)
	require.NoError(t, err)
	assert.Len(t, pl.Videos, 1)

	pl, err = svc.RemoveVideo(pl.ID, f.viewer.ID, b.ID)
	require.NoError(t, err)
	assert.Empty(t, pl.Thumbnail)
	assert.Empty(t, pl.Videos)
}

func TestPlaylistCheckOrder(t *testing.T) {
	f := setup(t)
	a := f.newVideo(t, "a")
	svc := NewPlaylistService(f.ctx)
	pl, err := svc.CreatePlaylist(f.viewer.ID, &CreatePlaylistRequest{Name: "Mine"})
	require.NoError(t, err)

	_, err = svc.AddVideo("missing", f.viewer.ID, a.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)

	// 非所有者先得到 Forbidden，即使视频不存在
	_, err = svc.AddVideo(pl.ID, f.owner.ID, "missing")
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)

	_, err = svc.AddVideo(pl.ID, f.viewer.ID, "missing")
	assert.ErrorIs(t, err, errno.NotFoundErr)

	_, err = svc.RemoveVideo(pl.ID, f.owner.ID, a.ID)
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)
}

func TestPlaylistVisibility(t *testing.T) {
	f := setup(t)
	svc := NewPlaylistService(f.ctx)

	_, err := svc.CreatePlaylist(f.viewer.ID, &CreatePlaylistRequest{Name: "  "})
	assert.ErrorIs(t, err, errno.ParamErr)

	private, err := svc.CreatePlaylist(f.viewer.ID, &CreatePlaylistRequest{Name: "Private"})
	require.NoError(t, err)
	_, err = svc.GetPlaylist(private.ID, f.owner.ID)
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)

	public := true
	_, err = svc.UpdatePlaylist(private.ID, f.viewer.ID, &UpdatePlaylistRequest{IsPublic: &public})
	require.NoError(t, err)
	got, err := svc.GetPlaylist(private.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "viewer", got.Owner.Username)

	assert.ErrorIs(t, svc.DeletePlaylist(private.ID, f.owner.ID), errno.AuthorizationFailedErr)
	require.NoError(t, svc.DeletePlaylist(private.ID, f.viewer.ID))
	_, err = svc.GetPlaylist(private.ID, f.viewer.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

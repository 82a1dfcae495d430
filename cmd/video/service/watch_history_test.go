package service

import (
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackWatchKeepsMaxProgress(t *testing.T) {
	f := setup(t)
	v := f.newVideo(t, "clip")
	svc := NewWatchHistoryService(f.ctx)

	rec, err := svc.TrackWatch(v.ID, f.viewer.ID, &TrackWatchRequest{SecondsWatched: 50, TotalDuration: 100})
	require.NoError(t, err)
	assert.Equal(t, 50.0, rec.SecondsWatched)
	assert.False(t, rec.Completed)
	assert.Equal(t, int64(1), f.reloadVideo(t, v.ID).Views)

	rec, err = svc.TrackWatch(v.ID, f.viewer.ID, &TrackWatchRequest{SecondsWatched: 30, TotalDuration: 100})
	require.NoError(t, err)
	assert.Equal(t, 50.0, rec.SecondsWatched)
	assert.Equal(t, int64(1), f.reloadVideo(t, v.ID).Views)

	rec, err = svc.TrackWatch(v.ID, f.viewer.ID, &TrackWatchRequest{SecondsWatched: 95, TotalDuration: 100})
	require.NoError(t, err)
	assert.Equal(t, 95.0, rec.SecondsWatched)
	assert.True(t, rec.Completed)

	history, err := svc.GetWatchHistory(f.viewer.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.NotNil(t, history[0].Video)
	assert.Equal(t, "clip", history[0].Video.Title)
}

func TestTrackWatchCompletionUsesRequestValues(t *testing.T) {
	f := setup(t)
	v := f.newVideo(t, "clip")
	svc := NewWatchHistoryService(f.ctx)

	_, err := svc.TrackWatch(v.ID, f.viewer.ID, &TrackWatchRequest{SecondsWatched: 95, TotalDuration: 100})
	require.NoError(t, err)
	rec, err := svc.TrackWatch(v.ID, f.viewer.ID, &TrackWatchRequest{SecondsWatched: 10, TotalDuration: 100})
	require.NoError(t, err)
	assert.Equal(t, 95.0, rec.SecondsWatched)
	assert.False(t, rec.Completed)

	rec, err = svc.TrackWatch(v.ID, f.viewer.ID, &TrackWatchRequest{SecondsWatched: 10, TotalDuration: 0})
	require.NoError(t, err)
	assert.False(t, rec.Completed)
}

func TestTrackWatchErrors(t *testing.T) {
	f := setup(t)
	v := f.newVideo(t, "clip")
	svc := NewWatchHistoryService(f.ctx)

	_, err := svc.TrackWatch(v.ID, f.viewer.ID, &TrackWatchRequest{SecondsWatched: -1, TotalDuration: 10})
	assert.ErrorIs(t, err, errno.ParamErr)
	_, err = svc.TrackWatch("missing", f.viewer.ID, &TrackWatchRequest{SecondsWatched: 1, TotalDuration: 10})
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestAddViewIsUnconditional(t *testing.T) {
	f := setup(t)
	v := f.newVideo(t, "clip")
	svc := NewVideoService(f.ctx)

	for i := 0; i < 3; i++ {
		_, err := svc.AddView(v.ID)
		require.NoError(t, err)
	}
	_, err := NewWatchHistoryService(f.ctx).TrackWatch(v.ID, f.viewer.ID, &TrackWatchRequest{SecondsWatched: 1, TotalDuration: 10})
	require.NoError(t, err)
	views, err := svc.AddView(v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), views)

	_, err = svc.AddView("missing")
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestClearWatchHistory(t *testing.T) {
	f := setup(t)
	a, b := f.newVideo(t, "a"), f.newVideo(t, "b")
	svc := NewWatchHistoryService(f.ctx)
	for _, v := range []string{a.ID, b.ID} {
		_, err := svc.TrackWatch(v, f.viewer.ID, &TrackWatchRequest{SecondsWatched: 1, TotalDuration: 10})
		require.NoError(t, err)
	}
	_, err := svc.TrackWatch(a.ID, f.owner.ID, &TrackWatchRequest{SecondsWatched: 1, TotalDuration: 10})
	require.NoError(t, err)

	n, err := svc.ClearWatchHistory(f.viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	history, err := svc.GetWatchHistory(f.viewer.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
	history, err = svc.GetWatchHistory(f.owner.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

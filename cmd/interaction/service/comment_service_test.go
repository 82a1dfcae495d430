package service

import (
	"strings"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateCommentValidation(t *testing.T) {
	f := setup(t)
	svc := NewCommentService(f.ctx)
	alice := f.users[1].ID

	_, err := svc.CreateComment(alice, &CreateCommentRequest{Text: "   ", VideoId: f.video.ID})
	assert.ErrorIs(t, err, errno.ParamErr)

	_, err = svc.CreateComment(alice, &CreateCommentRequest{Text: strings.Repeat("字", constants.MaxCommentText+1), VideoId: f.video.ID})
	assert.ErrorIs(t, err, errno.ParamErr)

	c, err := svc.CreateComment(alice, &CreateCommentRequest{Text: strings.Repeat("字", constants.MaxCommentText), VideoId: f.video.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)

	_, err = svc.CreateComment(alice, &CreateCommentRequest{Text: "hi"})
	assert.ErrorIs(t, err, errno.ParamErr)

	_, err = svc.CreateComment(alice, &CreateCommentRequest{Text: "hi", VideoId: "missing"})
	assert.ErrorIs(t, err, errno.NotFoundErr)

	_, err = svc.CreateComment(alice, &CreateCommentRequest{Text: "hi", VideoId: f.video.ID, ParentComment: strPtr("missing")})
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestReplyOnOtherVideoIsRejected(t *testing.T) {
	f := setup(t)
	other := &model.Video{Title: "b", URL: "u", ThumbnailURL: "t", Category: "c", ChannelID: "ch", UploaderID: f.users[0].ID}
	require.NoError(t, f.conn.Create(other).Error)
	svc := NewCommentService(f.ctx)

	parent, err := svc.CreateComment(f.users[1].ID, &CreateCommentRequest{Text: "top", VideoId: f.video.ID})
	require.NoError(t, err)
	_, err = svc.CreateComment(f.users[2].ID, &CreateCommentRequest{Text: "r", VideoId: other.ID, ParentComment: &parent.ID})
	assert.ErrorIs(t, err, errno.ParamErr)
	assert.Equal(t, int64(0), f.reloadComment(t, parent.ID).Engagement)
}

func TestEngagementTracksRepliesAndLikes(t *testing.T) {
	f := setup(t)
	svc := NewCommentService(f.ctx)
	alice, bob := f.users[1].ID, f.users[2].ID

	parent, err := svc.CreateComment(alice, &CreateCommentRequest{Text: "top", VideoId: f.video.ID})
	require.NoError(t, err)
	reply, err := svc.CreateComment(bob, &CreateCommentRequest{Text: "reply", VideoId: f.video.ID, ParentComment: &parent.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.reloadComment(t, parent.ID).Engagement)

	res, err := svc.LikeComment(parent.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, &CommentLikeResult{Likes: 1, Engagement: 2, Liked: true}, res)

	_, err = svc.LikeComment(parent.ID, bob)
	assert.Equal(t, "Comment already liked", errno.ConvertErr(err).ErrMsg)

	require.NoError(t, svc.DeleteComment(reply.ID, bob))
	assert.Equal(t, int64(1), f.reloadComment(t, parent.ID).Engagement)

	res, err = svc.UnlikeComment(parent.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, &CommentLikeResult{Likes: 0, Engagement: 0, Liked: false}, res)

	_, err = svc.UnlikeComment(parent.ID, bob)
	assert.Equal(t, "Comment not liked", errno.ConvertErr(err).ErrMsg)

	assert.Equal(t, []string{mq.EventComment, mq.EventReply}, f.events.types())
}

func TestDeleteOneOfTwoReplies(t *testing.T) {
	f := setup(t)
	svc := NewCommentService(f.ctx)
	alice, bob := f.users[1].ID, f.users[2].ID

	parent, err := svc.CreateComment(alice, &CreateCommentRequest{Text: "top", VideoId: f.video.ID})
	require.NoError(t, err)
	first, err := svc.CreateComment(bob, &CreateCommentRequest{Text: "first", VideoId: f.video.ID, ParentComment: &parent.ID})
	require.NoError(t, err)
	second, err := svc.CreateComment(alice, &CreateCommentRequest{Text: "second", VideoId: f.video.ID, ParentComment: &parent.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.reloadComment(t, parent.ID).Engagement)

	require.NoError(t, svc.DeleteComment(first.ID, bob))
	assert.Equal(t, int64(1), f.reloadComment(t, parent.ID).Engagement)

	kept := f.reloadComment(t, second.ID)
	assert.Equal(t, "second", kept.Text)
	require.NotNil(t, kept.ParentID)
	assert.Equal(t, parent.ID, *kept.ParentID)

	list, err := svc.GetVideoCommentWithSort(f.video.ID, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Replies, 1)
	assert.Equal(t, second.ID, list[0].Replies[0].ID)
}

func TestDeleteTopLevelCascadesOneLevel(t *testing.T) {
	f := setup(t)
	svc := NewCommentService(f.ctx)
	alice, bob := f.users[1].ID, f.users[2].ID

	top, err := svc.CreateComment(alice, &CreateCommentRequest{Text: "top", VideoId: f.video.ID})
	require.NoError(t, err)
	r1, err := svc.CreateComment(bob, &CreateCommentRequest{Text: "r1", VideoId: f.video.ID, ParentComment: &top.ID})
	require.NoError(t, err)
	r2, err := svc.CreateComment(bob, &CreateCommentRequest{Text: "r2", VideoId: f.video.ID, ParentComment: &top.ID})
	require.NoError(t, err)
	nested, err := svc.CreateComment(alice, &CreateCommentRequest{Text: "nested", VideoId: f.video.ID, ParentComment: &r1.ID})
	require.NoError(t, err)
	_, err = svc.LikeComment(r2.ID, alice)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteComment(top.ID, bob), errno.AuthorizationFailedErr)
	require.NoError(t, svc.DeleteComment(top.ID, alice))

	var remaining []model.Comment
	require.NoError(t, f.conn.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, nested.ID, remaining[0].ID)

	var likes int64
	f.conn.Model(&model.CommentLike{}).Count(&likes)
	assert.Zero(t, likes)

	assert.ErrorIs(t, svc.DeleteComment(top.ID, alice), errno.NotFoundErr)
}

func TestListingOrder(t *testing.T) {
	f := setup(t)
	svc := NewCommentService(f.ctx)
	alice, bob := f.users[1].ID, f.users[2].ID

	first, err := svc.CreateComment(alice, &CreateCommentRequest{Text: "first", VideoId: f.video.ID})
	require.NoError(t, err)
	pause()
	second, err := svc.CreateComment(bob, &CreateCommentRequest{Text: "second", VideoId: f.video.ID})
	require.NoError(t, err)
	pause()
	r1, err := svc.CreateComment(bob, &CreateCommentRequest{Text: "r1", VideoId: f.video.ID, ParentComment: &first.ID})
	require.NoError(t, err)
	pause()
	r2, err := svc.CreateComment(alice, &CreateCommentRequest{Text: "r2", VideoId: f.video.ID, ParentComment: &first.ID})
	require.NoError(t, err)
	pause()
	_, err = svc.CreateComment(alice, &CreateCommentRequest{Text: "deep", VideoId: f.video.ID, ParentComment: &r1.ID})
	require.NoError(t, err)
	_, err = svc.LikeComment(first.ID, bob)
	require.NoError(t, err)

	newest, err := svc.GetVideoCommentWithSort(f.video.ID, constants.SortNewest)
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, second.ID, newest[0].ID)
	assert.Equal(t, first.ID, newest[1].ID)

	top, err := svc.GetVideoCommentWithSort(f.video.ID, constants.SortTop)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, first.ID, top[0].ID)

	replies := top[0].Replies
	require.Len(t, replies, 2)
	assert.Equal(t, r1.ID, replies[0].ID)
	assert.Equal(t, r2.ID, replies[1].ID)
	require.NotNil(t, replies[0].Author)
	assert.Equal(t, "bob", replies[0].Author.Username)
	assert.Equal(t, "alice", top[0].Author.Username)

	unknown, err := svc.GetVideoCommentWithSort(f.video.ID, "bogus")
	require.NoError(t, err)
	assert.Equal(t, second.ID, unknown[0].ID)
}

func TestUpdateComment(t *testing.T) {
	f := setup(t)
	svc := NewCommentService(f.ctx)
	c, err := svc.CreateComment(f.users[1].ID, &CreateCommentRequest{Text: "old", VideoId: f.video.ID})
	require.NoError(t, err)

	_, err = svc.UpdateComment(c.ID, f.users[2].ID, "hack")
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)

	updated, err := svc.UpdateComment(c.ID, f.users[1].ID, "  new  ")
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Text)
}

package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type CreateCommentRequest struct {
	Text          string  `json:"text" form:"text"`
	VideoId       string  `json:"videoId" form:"videoId"`
	ParentComment *string `json:"parentComment" form:"parentComment"`
}

type CommentLikeResult struct {
	Likes      int64 `json:"likes"`
	Engagement int64 `json:"engagement"`
	Liked      bool  `json:"liked"`
}

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// validateCommentContent 返回去掉首尾空白后的正文
func (service *CommentService) validateCommentContent(content string) (string, error) {
	text := strings.TrimSpace(content)
	if text == "" {
		return "", errno.ParamErr.WithMessage("Comment text is required")
	}
	if utf8.RuneCountInString(text) > constants.MaxCommentText {
		return "", errno.ParamErr.WithMessage("Comment cannot be more than 10000 characters")
	}
	return text, nil
}

// CreateComment 回复会让父评论的 engagement 加一，二者在同一事务内完成
func (service *CommentService) CreateComment(userId string, req *CreateCommentRequest) (*model.Comment, error) {
	text, err := service.validateCommentContent(req.Text)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.VideoId) == "" {
		return nil, errno.ParamErr.WithMessage("Video id is required")
	}
	var parentId *string
	if req.ParentComment != nil && strings.TrimSpace(*req.ParentComment) != "" {
		id := strings.TrimSpace(*req.ParentComment)
		parentId = &id
	}

	comment := &model.Comment{
		Text:     text,
		VideoID:  req.VideoId,
		UserID:   userId,
		ParentID: parentId,
	}
	err = database.Transaction(service.ctx, db.DB, func(ctx context.Context) error {
		if _, err := db.GetVideoInfo(ctx, req.VideoId); err != nil {
			return convertDBErr(ctx, err, videoNotFound)
		}
		if parentId != nil {
			parent, err := db.GetCommentInfo(ctx, *parentId)
			if err != nil {
				return convertDBErr(ctx, err, "Parent comment not found")
			}
			if parent.VideoID != req.VideoId {
				return errno.ParamErr.WithMessage("Parent comment belongs to a different video")
			}
			if err = db.AddEngagement(ctx, parent.ID, 1); err != nil {
				return err
			}
		}
		return db.CreateComment(ctx, comment)
	})
	if err != nil {
		return nil, convertDBErr(service.ctx, err, commentNotFound)
	}

	if comment.IsReply() {
		mq.Publish(service.ctx, mq.NewEvent(mq.EventReply, userId).WithVideo(comment.VideoID).WithComment(comment.ID))
	} else {
		mq.Publish(service.ctx, mq.NewEvent(mq.EventComment, userId).WithVideo(comment.VideoID).WithComment(comment.ID))
	}
	if err = service.attachAuthors([]*model.Comment{comment}); err != nil {
		return nil, err
	}
	comment.Replies = make([]*model.Comment, 0)
	return comment, nil
}

func (service *CommentService) GetComment(commentId string) (*model.Comment, error) {
	comment, err := db.GetCommentInfo(service.ctx, commentId)
	if err != nil {
		return nil, convertDBErr(service.ctx, err, commentNotFound)
	}
	if err = service.buildCommentData([]*model.Comment{comment}); err != nil {
		return nil, err
	}
	return comment, nil
}

func (service *CommentService) UpdateComment(commentId, userId, content string) (*model.Comment, error) {
	text, err := service.validateCommentContent(content)
	if err != nil {
		return nil, err
	}
	comment, err := db.GetCommentInfo(service.ctx, commentId)
	if err != nil {
		return nil, convertDBErr(service.ctx, err, commentNotFound)
	}
	if comment.UserID != userId {
		return nil, errno.AuthorizationFailedErr.WithMessage("Not authorized to update this comment")
	}
	if err = db.UpdateCommentText(service.ctx, commentId, text); err != nil {
		return nil, convertDBErr(service.ctx, err, commentNotFound)
	}
	return service.GetComment(commentId)
}

// DeleteComment 删除回复时父评论 engagement 减一；删除顶层评论时一并删除其直接回复
func (service *CommentService) DeleteComment(commentId, userId string) error {
	err := database.Transaction(service.ctx, db.DB, func(ctx context.Context) error {
		comment, err := db.GetCommentInfo(ctx, commentId)
		if err != nil {
			return err
		}
		if comment.UserID != userId {
			return errno.AuthorizationFailedErr.WithMessage("Not authorized to delete this comment")
		}
		ids := []string{comment.ID}
		if comment.IsReply() {
			if err = db.AddEngagement(ctx, *comment.ParentID, -1); err != nil {
				return err
			}
		} else {
			children, err := db.GetChildCommentIds(ctx, comment.ID)
			if err != nil {
				return err
			}
			ids = append(ids, children...)
		}
		return db.DeleteComments(ctx, ids)
	})
	if err != nil {
		return convertDBErr(service.ctx, err, commentNotFound)
	}
	hlog.CtxInfof(service.ctx, "comment %s deleted by %s", commentId, userId)
	return nil
}

func (service *CommentService) LikeComment(commentId, userId string) (*CommentLikeResult, error) {
	return service.toggleLike(commentId, userId, true)
}

func (service *CommentService) UnlikeComment(commentId, userId string) (*CommentLikeResult, error) {
	return service.toggleLike(commentId, userId, false)
}

func (service *CommentService) toggleLike(commentId, userId string, like bool) (*CommentLikeResult, error) {
	res := &CommentLikeResult{Liked: like}
	err := database.Transaction(service.ctx, db.DB, func(ctx context.Context) error {
		if _, err := db.GetCommentInfo(ctx, commentId); err != nil {
			return err
		}
		liked, err := db.IsCommentLiked(ctx, commentId, userId)
		if err != nil {
			return err
		}
		if like {
			if liked {
				return errno.InvalidStateErr.WithMessage("Comment already liked")
			}
			err = db.CreateCommentLike(ctx, commentId, userId)
		} else {
			if !liked {
				return errno.InvalidStateErr.WithMessage("Comment not liked")
			}
			err = db.DeleteCommentLike(ctx, commentId, userId)
		}
		if err != nil {
			return err
		}
		res.Likes, res.Engagement, err = db.SyncCommentLikes(ctx, commentId)
		return err
	})
	if err != nil {
		return nil, convertDBErr(service.ctx, err, commentNotFound)
	}
	cache.ForgetComment(service.ctx, commentId)
	return res, nil
}

// GetVideoCommentWithSort 顶层评论按 sortBy 排序，回复按时间正序挂在父评论下。
// 回复的回复不会出现在列表中
func (service *CommentService) GetVideoCommentWithSort(videoId, sortBy string) ([]*model.Comment, error) {
	order := "created_at DESC"
	if sortBy == constants.SortTop {
		order = "likes DESC, created_at DESC"
	}
	comments, err := db.GetVideoTopComments(service.ctx, videoId, order)
	if err != nil {
		return nil, convertDBErr(service.ctx, err, videoNotFound)
	}
	if err = service.buildCommentData(comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// buildCommentData 为评论挂上直接回复与作者信息
func (service *CommentService) buildCommentData(comments []*model.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	ids := make([]string, 0, len(comments))
	byId := make(map[string]*model.Comment, len(comments))
	for _, c := range comments {
		c.Replies = make([]*model.Comment, 0)
		ids = append(ids, c.ID)
		byId[c.ID] = c
	}
	replies, err := db.GetReplies(service.ctx, ids)
	if err != nil {
		return convertDBErr(service.ctx, err, commentNotFound)
	}
	for _, r := range replies {
		if parent, ok := byId[*r.ParentID]; ok {
			parent.Replies = append(parent.Replies, r)
		}
	}
	return service.attachAuthors(append(comments, replies...))
}

func (service *CommentService) attachAuthors(comments []*model.Comment) error {
	seen := make(map[string]struct{})
	userIds := make([]string, 0)
	for _, c := range comments {
		if _, ok := seen[c.UserID]; !ok {
			seen[c.UserID] = struct{}{}
			userIds = append(userIds, c.UserID)
		}
	}
	users, err := db.GetUsers(service.ctx, userIds)
	if err != nil {
		return convertDBErr(service.ctx, err, commentNotFound)
	}
	for _, c := range comments {
		c.Author = users[c.UserID].Brief()
	}
	return nil
}

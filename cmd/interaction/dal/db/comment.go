package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := conn(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed,err:%v", err)
	}
	return nil
}

func GetCommentInfo(ctx context.Context, commentId string) (*model.Comment, error) {
	var comment model.Comment
	if err := conn(ctx).Where("id = ?", commentId).First(&comment).Error; err != nil {
		return nil, errors.Wrapf(err, "GetCommentInfo failed,err:%v", err)
	}
	return &comment, nil
}

func UpdateCommentText(ctx context.Context, commentId, text string) error {
	if err := conn(ctx).Model(&model.Comment{}).Where("id = ?", commentId).Update("text", text).Error; err != nil {
		return errors.Wrapf(err, "UpdateCommentText failed,err:%v", err)
	}
	return nil
}

// AddEngagement 对父评论的 engagement 做增量调整
func AddEngagement(ctx context.Context, commentId string, delta int64) error {
	if err := conn(ctx).Model(&model.Comment{}).Where("id = ?", commentId).
		Update("engagement", gorm.Expr("engagement + ?", delta)).Error; err != nil {
		return errors.Wrapf(err, "AddEngagement failed,err:%v", err)
	}
	return nil
}

// GetChildCommentIds 只返回直接回复
func GetChildCommentIds(ctx context.Context, commentId string) ([]string, error) {
	ids := make([]string, 0)
	if err := conn(ctx).Model(&model.Comment{}).Where("parent_id = ?", commentId).Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "GetChildCommentIds failed,err:%v", err)
	}
	return ids, nil
}

func GetChildCommentCount(ctx context.Context, commentId string) (count int64, err error) {
	if err := conn(ctx).Model(&model.Comment{}).Where("parent_id = ?", commentId).Count(&count).Error; err != nil {
		return -1, errors.Wrapf(err, "GetChildCommentCount failed,err:%v", err)
	}
	return count, nil
}

// DeleteComments 删除评论及其点赞记录
func DeleteComments(ctx context.Context, commentIds []string) error {
	if len(commentIds) == 0 {
		return nil
	}
	if err := conn(ctx).Where("comment_id IN ?", commentIds).Delete(&model.CommentLike{}).Error; err != nil {
		return errors.Wrapf(err, "Delete comment likes failed,err:%v", err)
	}
	if err := conn(ctx).Where("id IN ?", commentIds).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "Delete comments failed,err:%v", err)
	}
	return nil
}

func IsCommentLiked(ctx context.Context, commentId, userId string) (bool, error) {
	var count int64
	if err := conn(ctx).Model(&model.CommentLike{}).Where("comment_id = ? AND user_id = ?", commentId, userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsCommentLiked failed,err:%v", err)
	}
	return count > 0, nil
}

func CreateCommentLike(ctx context.Context, commentId, userId string) error {
	if err := conn(ctx).Create(&model.CommentLike{
		CommentID: commentId,
		UserID:    userId,
	}).Error; err != nil {
		return errors.Wrapf(err, "CreateCommentLike failed,err:%v", err)
	}
	return nil
}

func DeleteCommentLike(ctx context.Context, commentId, userId string) error {
	if err := conn(ctx).Where("comment_id = ? AND user_id = ?", commentId, userId).Delete(&model.CommentLike{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteCommentLike failed,err:%v", err)
	}
	return nil
}

// SyncCommentLikes 重算 likes，并令 engagement = likes + 直接回复数
func SyncCommentLikes(ctx context.Context, commentId string) (likes, engagement int64, err error) {
	if err = conn(ctx).Model(&model.CommentLike{}).Where("comment_id = ?", commentId).Count(&likes).Error; err != nil {
		return 0, 0, errors.Wrapf(err, "Count comment likes failed,err:%v", err)
	}
	replies, err := GetChildCommentCount(ctx, commentId)
	if err != nil {
		return 0, 0, err
	}
	engagement = likes + replies
	if err = conn(ctx).Model(&model.Comment{}).Where("id = ?", commentId).
		Updates(map[string]interface{}{"likes": likes, "engagement": engagement}).Error; err != nil {
		return 0, 0, errors.Wrapf(err, "Update comment counts failed,err:%v", err)
	}
	return likes, engagement, nil
}

// GetVideoTopComments 视频下的顶层评论，order 由调用方决定
func GetVideoTopComments(ctx context.Context, videoId, order string) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	if err := conn(ctx).Where("video_id = ? AND parent_id IS NULL", videoId).Order(order).Find(&comments).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideoTopComments failed,err:%v", err)
	}
	return comments, nil
}

// GetReplies 批量取直接回复，按创建时间正序
func GetReplies(ctx context.Context, parentIds []string) ([]*model.Comment, error) {
	replies := make([]*model.Comment, 0)
	if len(parentIds) == 0 {
		return replies, nil
	}
	if err := conn(ctx).Where("parent_id IN ?", parentIds).Order("created_at ASC").Find(&replies).Error; err != nil {
		return nil, errors.Wrapf(err, "GetReplies failed,err:%v", err)
	}
	return replies, nil
}

func GetUsers(ctx context.Context, userIds []string) (map[string]*model.User, error) {
	users := make([]*model.User, 0)
	result := make(map[string]*model.User)
	if len(userIds) == 0 {
		return result, nil
	}
	if err := conn(ctx).Where("id IN ?", userIds).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUsers failed,err:%v", err)
	}
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}

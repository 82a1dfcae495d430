package service

import (
	"context"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ReactionResult 操作后视频的计数与当前用户的态度
type ReactionResult struct {
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
	Reaction string `json:"reaction"`
}

// LikeActionService 视频点赞/点踩。态度表是唯一事实来源，
// 每次变更后在同一事务内重算视频上的计数
type LikeActionService struct {
	ctx context.Context
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{ctx: ctx}
}

func validReaction(reaction string) bool {
	switch reaction {
	case constants.ReactionLike, constants.ReactionDislike, constants.ReactionNone:
		return true
	}
	return false
}

// SetReaction 将用户态度切换为 reaction，与当前态度相同时返回 InvalidState
func (service *LikeActionService) SetReaction(videoId, userId, reaction string) (*ReactionResult, error) {
	if !validReaction(reaction) {
		return nil, errno.ParamErr.WithMessage("Invalid reaction")
	}
	return service.apply(videoId, userId, func(current string) (string, error) {
		if current == reaction {
			return "", errno.InvalidStateErr.WithMessage("Reaction already " + reaction)
		}
		return reaction, nil
	})
}

func (service *LikeActionService) Like(videoId, userId string) (*ReactionResult, error) {
	return service.apply(videoId, userId, func(current string) (string, error) {
		if current == constants.ReactionLike {
			return "", errno.InvalidStateErr.WithMessage("Video already liked")
		}
		return constants.ReactionLike, nil
	})
}

func (service *LikeActionService) Unlike(videoId, userId string) (*ReactionResult, error) {
	return service.apply(videoId, userId, func(current string) (string, error) {
		if current != constants.ReactionLike {
			return "", errno.InvalidStateErr.WithMessage("Video not liked")
		}
		return constants.ReactionNone, nil
	})
}

func (service *LikeActionService) Dislike(videoId, userId string) (*ReactionResult, error) {
	return service.apply(videoId, userId, func(current string) (string, error) {
		if current == constants.ReactionDislike {
			return "", errno.InvalidStateErr.WithMessage("Video already disliked")
		}
		return constants.ReactionDislike, nil
	})
}

func (service *LikeActionService) Undislike(videoId, userId string) (*ReactionResult, error) {
	return service.apply(videoId, userId, func(current string) (string, error) {
		if current != constants.ReactionDislike {
			return "", errno.InvalidStateErr.WithMessage("Video not disliked")
		}
		return constants.ReactionNone, nil
	})
}

// GetReaction 读取当前态度。计数命中缓存时取缓存，未命中时用已读出的视频行并回填
func (service *LikeActionService) GetReaction(videoId, userId string) (*ReactionResult, error) {
	video, err := db.GetVideoInfo(service.ctx, videoId)
	if err != nil {
		return nil, convertDBErr(service.ctx, err, videoNotFound)
	}
	reaction, err := db.GetReaction(service.ctx, videoId, userId)
	if err != nil {
		return nil, convertDBErr(service.ctx, err, videoNotFound)
	}
	res := &ReactionResult{Likes: video.Likes, Dislikes: video.Dislikes, Reaction: reaction}
	if likes, dislikes, ok := cache.LoadVideoCounts(service.ctx, videoId); ok {
		res.Likes, res.Dislikes = likes, dislikes
	} else {
		cache.FillVideoCounts(service.ctx, videoId, video.Likes, video.Dislikes)
	}
	return res, nil
}

// apply 在一个事务内完成：读当前态度、决定目标态度、写态度表、重算计数
func (service *LikeActionService) apply(videoId, userId string, decide func(current string) (string, error)) (*ReactionResult, error) {
	res := &ReactionResult{}
	err := database.Transaction(service.ctx, db.DB, func(ctx context.Context) error {
		if _, err := db.GetVideoInfo(ctx, videoId); err != nil {
			return err
		}
		current, err := db.GetReaction(ctx, videoId, userId)
		if err != nil {
			return err
		}
		next, err := decide(current)
		if err != nil {
			return err
		}
		if next == constants.ReactionNone {
			err = db.DeleteReaction(ctx, videoId, userId)
		} else {
			err = db.SaveReaction(ctx, videoId, userId, next)
		}
		if err != nil {
			return err
		}
		res.Reaction = next
		res.Likes, res.Dislikes, err = db.SyncVideoReactionCounts(ctx, videoId)
		return err
	})
	if err != nil {
		return nil, convertDBErr(service.ctx, err, videoNotFound)
	}

	hlog.CtxInfof(service.ctx, "video %s reaction of %s -> %s (likes=%d dislikes=%d)",
		videoId, userId, res.Reaction, res.Likes, res.Dislikes)
	cache.ForgetVideo(service.ctx, videoId)
	if res.Reaction == constants.ReactionLike {
		mq.Publish(service.ctx, mq.NewEvent(mq.EventLike, userId).WithVideo(videoId))
	}
	return res, nil
}

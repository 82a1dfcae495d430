package constants

const (
	IdentityKey = "id"

	DefaultLimit   = 20
	SuggestLimit   = 10
	MaxCommentText = 10000
	MaxTitleLength = 100
	MaxChannelName = 50
	MaxPlaylist    = 100
	MinPassword    = 6

	// 观看进度达到该比例视为看完
	CompletionRatio = 0.90

	SortNewest = "newest"
	SortTop    = "top"
	SortViews  = "views"
	SortLikes  = "likes"

	ReactionLike    = "like"
	ReactionDislike = "dislike"
	ReactionNone    = "none"

	VideoBucket     = "video"
	ThumbnailBucket = "picture"

	APIServiceName          = "vidtube-api"
	NotificationServiceName = "vidtube-notification"
)

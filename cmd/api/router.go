package main

import (
	"context"

	channel "VidTube.com/cmd/api/handlers/channel"
	interaction "VidTube.com/cmd/api/handlers/interaction"
	notification "VidTube.com/cmd/api/handlers/notification"
	"VidTube.com/cmd/api/handlers/pack"
	playlist "VidTube.com/cmd/api/handlers/playlist"
	upload "VidTube.com/cmd/api/handlers/upload"
	user "VidTube.com/cmd/api/handlers/user"
	video "VidTube.com/cmd/api/handlers/video"
	"VidTube.com/cmd/api/router/authfunc"
	"VidTube.com/pkg/bound"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/middleware"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// authed 鉴权通过后依次执行 handlers
func authed(handlers ...app.HandlerFunc) []app.HandlerFunc {
	return append(authfunc.Auth(), handlers...)
}

func register(r *server.Hertz, cpu *bound.CpuLimitHandler) {
	r.GET("/health", func(ctx context.Context, c *app.RequestContext) {
		pack.SendResponse(c, errno.Success, cpu.Health())
	})

	api := r.Group("/api", cpu.Middleware())

	authGroup := api.Group("/auth")
	authGroup.POST("/register", user.Register)
	authGroup.POST("/login", user.LoginUser)
	authGroup.GET("/me", authed(user.GetUserInfo)...)
	authGroup.PUT("/profile", authed(user.UpdateProfile)...)
	authGroup.PUT("/password", authed(user.ChangePassword)...)
	authGroup.DELETE("/account", authed(user.DeleteAccount)...)

	users := api.Group("/users", authfunc.Auth()...)
	users.GET("/me/liked-videos", user.GetLikedVideos)
	users.GET("/me/subscriptions", user.GetSubscriptions)

	subscribeLimit := middleware.FlowLimit(middleware.ResourceSubscribe)
	channels := api.Group("/channels")
	channels.GET("/user/my-channels", authed(channel.GetMyChannels)...)
	channels.GET("/:id", channel.GetChannel)
	channels.GET("/:id/videos", channel.GetChannelVideos)
	channels.GET("/:id/subscribers", channel.GetSubscribers)
	channels.GET("/:id/is-subscribed", authed(channel.IsSubscribed)...)
	channels.POST("", authed(channel.CreateChannel)...)
	channels.PUT("/:id", authed(channel.UpdateChannel)...)
	channels.DELETE("/:id", authed(channel.DeleteChannel)...)
	channels.POST("/:id/subscribe", authed(subscribeLimit, channel.Subscribe)...)
	channels.DELETE("/:id/subscribe", authed(subscribeLimit, channel.Unsubscribe)...)

	reactionLimit := middleware.FlowLimit(middleware.ResourceReaction)
	videos := api.Group("/videos")
	videos.GET("", video.ListVideos)
	videos.GET("/suggest/:query", video.Suggest)
	videos.GET("/watch-history", authed(video.GetWatchHistory)...)
	videos.DELETE("/watch-history/clear", authed(video.ClearWatchHistory)...)
	videos.GET("/:id", video.GetVideo)
	videos.POST("", authed(video.CreateVideo)...)
	videos.PUT("/:id", authed(video.UpdateVideo)...)
	videos.DELETE("/:id", authed(video.DeleteVideo)...)
	videos.PUT("/:id/like", authed(reactionLimit, interaction.Like)...)
	videos.PUT("/:id/unlike", authed(reactionLimit, interaction.Unlike)...)
	videos.PUT("/:id/dislike", authed(reactionLimit, interaction.Dislike)...)
	videos.PUT("/:id/undislike", authed(reactionLimit, interaction.Undislike)...)
	videos.GET("/:id/reaction", authed(interaction.Reaction)...)
	videos.PUT("/:id/reaction", authed(reactionLimit, interaction.SetReaction)...)
	videos.PUT("/:id/view", video.AddView)
	videos.POST("/:id/watch", authed(video.TrackWatch)...)

	commentLimit := middleware.FlowLimit(middleware.ResourceComment)
	comments := api.Group("/comments")
	comments.POST("", authed(commentLimit, interaction.CreateComment)...)
	comments.GET("/video/:videoId", interaction.ListVideoComments)
	comments.GET("/:id", interaction.GetComment)
	comments.PUT("/:id", authed(interaction.UpdateComment)...)
	comments.DELETE("/:id", authed(interaction.DeleteComment)...)
	comments.PUT("/:id/like", authed(reactionLimit, interaction.LikeComment)...)
	comments.PUT("/:id/unlike", authed(reactionLimit, interaction.UnlikeComment)...)

	playlists := api.Group("/playlists", authfunc.Auth()...)
	playlists.GET("/user/my-playlists", playlist.GetMyPlaylists)
	playlists.GET("/:id", playlist.GetPlaylist)
	playlists.POST("", playlist.CreatePlaylist)
	playlists.PUT("/:id", playlist.UpdatePlaylist)
	playlists.DELETE("/:id", playlist.DeletePlaylist)
	playlists.POST("/:id/videos", playlist.AddVideo)
	playlists.DELETE("/:id/videos/:videoId", playlist.RemoveVideo)

	notifications := api.Group("/notifications", authfunc.Auth()...)
	notifications.GET("", notification.ListNotifications)
	notifications.PUT("/:id/read", notification.MarkRead)

	api.POST("/uploads", authed(middleware.FlowLimit(middleware.ResourceUpload), upload.Upload)...)
}

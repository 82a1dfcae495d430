package model

// All returns every table the application migrates.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Channel{},
		&Subscription{},
		&Video{},
		&VideoReaction{},
		&Comment{},
		&CommentLike{},
		&Playlist{},
		&PlaylistVideo{},
		&WatchHistory{},
		&Notification{},
	}
}

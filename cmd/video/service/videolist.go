package service

import (
	"context"
	"sort"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/search"
)

// 搜索引擎最多返回的候选数
const searchCandidates = 200

type ListVideosRequest struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	SortBy   string `query:"sortBy"`
}

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

func orderFor(sortBy string) string {
	switch sortBy {
	case constants.SortViews:
		return "views DESC, created_at DESC"
	case constants.SortLikes:
		return "likes DESC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// VideoList 有搜索词时优先走 ES，未指定 sortBy 时保持 ES 的相关度顺序；
// ES 不可用时退化为标题/简介模糊匹配
func (v *VideoListService) VideoList(req *ListVideosRequest) ([]*VideoDetail, error) {
	filter := &db.VideoFilter{
		Category: strings.TrimSpace(req.Category),
		Keyword:  strings.TrimSpace(req.Search),
		Order:    orderFor(req.SortBy),
	}
	if filter.Keyword != "" {
		if ids, ok := search.VideoIDs(v.ctx, filter.Keyword, searchCandidates); ok {
			filter.IDs = ids
		}
	}
	videos, err := db.Videolist(v.ctx, filter)
	if err != nil {
		return nil, convertDBErr(v.ctx, err, videoNotFound)
	}
	if filter.IDs != nil && strings.TrimSpace(req.SortBy) == "" {
		videos = rankByHits(videos, filter.IDs)
	}
	return NewVideoService(v.ctx).attachInfo(videos)
}

// rankByHits 按搜索命中顺序（相关度）重排，不在命中列表里的排到最后
func rankByHits(videos []*model.Video, ids []string) []*model.Video {
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, ok := rank[id]; !ok {
			rank[id] = i
		}
	}
	pos := func(id string) int {
		if r, ok := rank[id]; ok {
			return r
		}
		return len(ids)
	}
	sort.SliceStable(videos, func(i, j int) bool {
		return pos(videos[i].ID) < pos(videos[j].ID)
	})
	return videos
}

func (v *VideoListService) Suggest(query string) ([]*search.Suggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*search.Suggestion{}, nil
	}
	if out, ok := search.Suggest(v.ctx, query, constants.SuggestLimit); ok {
		return out, nil
	}
	videos, err := db.SuggestTitles(v.ctx, query, constants.SuggestLimit)
	if err != nil {
		return nil, convertDBErr(v.ctx, err, videoNotFound)
	}
	out := make([]*search.Suggestion, 0, len(videos))
	for _, video := range videos {
		out = append(out, &search.Suggestion{ID: video.ID, Title: video.Title})
	}
	return out, nil
}

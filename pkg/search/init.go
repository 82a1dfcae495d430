package search

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var searcher *VideoSearcher

// Init 未配置 ES 时搜索退化为数据库模糊匹配
func Init() {
	c := config.ConfigInfo.Elastic
	if c.Addr == "" {
		hlog.Warn("elasticsearch not configured, falling back to database search")
		return
	}
	s, err := NewVideoSearcher(c.Addr, c.Index)
	if err != nil {
		hlog.Errorf("init elasticsearch failed: %v", err)
		return
	}
	if err = s.EnsureIndex(context.Background()); err != nil {
		hlog.Errorf("ensure elasticsearch index failed: %v", err)
		return
	}
	searcher = s
}

func Enabled() bool {
	return searcher != nil
}

// Index 写索引失败只记录日志
func Index(ctx context.Context, v *model.Video) {
	if searcher == nil {
		return
	}
	if err := searcher.IndexVideo(ctx, v); err != nil {
		hlog.CtxWarnf(ctx, "index video failed: %v", err)
	}
}

func Remove(ctx context.Context, videoId string) {
	if searcher == nil {
		return
	}
	if err := searcher.DeleteVideo(ctx, videoId); err != nil {
		hlog.CtxWarnf(ctx, "remove video from index failed: %v", err)
	}
}

// VideoIDs ok 为 false 时调用方应回退到数据库查询
func VideoIDs(ctx context.Context, text string, limit int) (ids []string, ok bool) {
	if searcher == nil {
		return nil, false
	}
	ids, err := searcher.SearchVideoIDs(ctx, text, limit)
	if err != nil {
		hlog.CtxWarnf(ctx, "search videos failed: %v", err)
		return nil, false
	}
	return ids, true
}

func Suggest(ctx context.Context, prefix string, limit int) ([]*Suggestion, bool) {
	if searcher == nil {
		return nil, false
	}
	out, err := searcher.SuggestTitles(ctx, prefix, limit)
	if err != nil {
		hlog.CtxWarnf(ctx, "suggest titles failed: %v", err)
		return nil, false
	}
	return out, true
}

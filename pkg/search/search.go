package search

import (
	"context"
	"encoding/json"
	"fmt"

	"VidTube.com/cmd/model"
	"github.com/olivere/elastic/v7"
)

// VideoDoc 写入 ES 的视频文档
type VideoDoc struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ChannelID   string   `json:"channel_id"`
	CreatedAt   int64    `json:"created_at"`
}

// Suggestion 搜索框联想结果
type Suggestion struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func NewVideoDoc(v *model.Video) *VideoDoc {
	return &VideoDoc{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		Tags:        []string(v.Tags),
		ChannelID:   v.ChannelID,
		CreatedAt:   v.CreatedAt.Unix(),
	}
}

type VideoSearcher struct {
	client *elastic.Client
	index  string
}

func NewVideoSearcher(addr, index string) (*VideoSearcher, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(addr),
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create elastic client: %w", err)
	}
	return &VideoSearcher{client: client, index: index}, nil
}

// EnsureIndex 索引不存在时创建
func (s *VideoSearcher) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.IndexExists(s.index).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check index %s: %w", s.index, err)
	}
	if exists {
		return nil
	}
	if _, err = s.client.CreateIndex(s.index).BodyString(videoMapping).Do(ctx); err != nil {
		return fmt.Errorf("failed to create index %s: %w", s.index, err)
	}
	return nil
}

func (s *VideoSearcher) IndexVideo(ctx context.Context, v *model.Video) error {
	_, err := s.client.Index().
		Index(s.index).
		Id(v.ID).
		BodyJson(NewVideoDoc(v)).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index video %s: %w", v.ID, err)
	}
	return nil
}

func (s *VideoSearcher) DeleteVideo(ctx context.Context, videoId string) error {
	_, err := s.client.Delete().Index(s.index).Id(videoId).Do(ctx)
	if err != nil && !elastic.IsNotFound(err) {
		return fmt.Errorf("failed to delete video %s: %w", videoId, err)
	}
	return nil
}

// SearchVideoIDs 按相关度返回匹配的视频 id
func (s *VideoSearcher) SearchVideoIDs(ctx context.Context, text string, limit int) ([]string, error) {
	query := elastic.NewMultiMatchQuery(text, "title^3", "description", "tags^2").
		Type("best_fields").
		Fuzziness("AUTO")
	res, err := s.client.Search().
		Index(s.index).
		Query(query).
		FetchSource(false).
		Size(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}
	ids := make([]string, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		ids = append(ids, hit.Id)
	}
	return ids, nil
}

func (s *VideoSearcher) SuggestTitles(ctx context.Context, prefix string, limit int) ([]*Suggestion, error) {
	res, err := s.client.Search().
		Index(s.index).
		Query(elastic.NewMatchPhrasePrefixQuery("title", prefix)).
		FetchSourceContext(elastic.NewFetchSourceContext(true).Include("id", "title")).
		Size(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest titles: %w", err)
	}
	out := make([]*Suggestion, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var s Suggestion
		if err := json.Unmarshal(hit.Source, &s); err != nil {
			return nil, fmt.Errorf("bad suggestion source: %w", err)
		}
		out = append(out, &s)
	}
	return out, nil
}

const videoMapping = `{
  "mappings": {
    "properties": {
      "id":          {"type": "keyword"},
      "title":       {"type": "text"},
      "description": {"type": "text"},
      "category":    {"type": "keyword"},
      "tags":        {"type": "text"},
      "channel_id":  {"type": "keyword"},
      "created_at":  {"type": "long"}
    }
  }
}`

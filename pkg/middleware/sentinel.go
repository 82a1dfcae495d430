package middleware

import (
	"context"

	"VidTube.com/config"
	"VidTube.com/pkg/errno"
	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// 受限流保护的写接口
const (
	ResourceComment   = "comment"
	ResourceReaction  = "reaction"
	ResourceSubscribe = "subscribe"
	ResourceUpload    = "upload"
)

func Rules(qps map[string]float64) []*flow.Rule {
	rules := make([]*flow.Rule, 0, len(qps))
	for resource, threshold := range qps {
		if threshold <= 0 {
			continue
		}
		rules = append(rules, &flow.Rule{
			Resource:               resource,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              threshold,
			StatIntervalInMs:       1000,
		})
	}
	return rules
}

// InitSentinel 按配置加载各资源的 QPS 阈值
func InitSentinel() error {
	if err := sentinel.InitDefault(); err != nil {
		return err
	}
	c := config.ConfigInfo.Sentinel
	return LoadRules(map[string]float64{
		ResourceComment:   c.CommentQPS,
		ResourceReaction:  c.ReactionQPS,
		ResourceSubscribe: c.SubscribeQPS,
		ResourceUpload:    c.UploadQPS,
	})
}

func LoadRules(qps map[string]float64) error {
	if _, err := flow.LoadRules(Rules(qps)); err != nil {
		return err
	}
	hlog.Infof("sentinel flow rules loaded: %v", qps)
	return nil
}

// FlowLimit 被限流时返回 429
func FlowLimit(resource string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		entry, blockErr := sentinel.Entry(resource, sentinel.WithTrafficType(base.Inbound))
		if blockErr != nil {
			hlog.CtxWarnf(ctx, "request to %s blocked by sentinel: %v", resource, blockErr.BlockMsg())
			err := errno.RateLimitedErr
			c.AbortWithStatusJSON(err.HTTPStatus(), utils.H{
				"code":    err.ErrCode,
				"message": err.ErrMsg,
				"data":    nil,
			})
			return
		}
		defer entry.Exit()
		c.Next(ctx)
	}
}

package tracer

import (
	"context"
	"fmt"
	"io"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// InitJaeger 未配置 jaeger 地址时保持 opentracing 的 NoopTracer
func InitJaeger() io.Closer {
	c := config.ConfigInfo.Jaeger
	if c.Addr == "" {
		hlog.Warn("jaeger not configured, tracing disabled")
		return nopCloser{}
	}
	cfg := jaegercfg.Configuration{
		ServiceName: c.ServiceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeProbabilistic,
			Param: c.SampleRate,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           false,
			LocalAgentHostPort: c.Addr,
		},
	}
	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaeger.StdLogger))
	if err != nil {
		hlog.Errorf("init jaeger failed: %v", err)
		return nopCloser{}
	}
	opentracing.SetGlobalTracer(tracer)
	return closer
}

// ServerTracing 每个请求一个 span，gorm 插件从 ctx 中取出它作为父 span
func ServerTracing() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		tracer := opentracing.GlobalTracer()
		carrier := opentracing.TextMapCarrier{}
		c.Request.Header.VisitAll(func(k, v []byte) {
			carrier.Set(string(k), string(v))
		})
		var opts []opentracing.StartSpanOption
		if parent, err := tracer.Extract(opentracing.TextMap, carrier); err == nil {
			opts = append(opts, ext.RPCServerOption(parent))
		}
		name := fmt.Sprintf("%s %s", c.Method(), c.FullPath())
		span := tracer.StartSpan(name, opts...)
		defer span.Finish()

		ext.HTTPMethod.Set(span, string(c.Method()))
		ext.HTTPUrl.Set(span, string(c.Request.URI().Path()))
		c.Next(opentracing.ContextWithSpan(ctx, span))

		status := c.Response.StatusCode()
		ext.HTTPStatusCode.Set(span, uint16(status))
		if status >= 500 {
			ext.Error.Set(span, true)
		}
	}
}

package bound

import (
	"context"
	"sync/atomic"
	"time"

	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

const sampleInterval = time.Second

// CpuLimitHandler 后台每秒采样一次 CPU，超过阈值时拒绝新请求
type CpuLimitHandler struct {
	max     float64
	current atomic.Uint64
}

func NewCpuLimitHandler(maxPercent float64) *CpuLimitHandler {
	return &CpuLimitHandler{max: maxPercent}
}

func (h *CpuLimitHandler) Run(ctx context.Context) {
	for {
		percent, err := cpu.Percent(sampleInterval, false)
		if err != nil {
			hlog.Warnf("sample cpu failed: %v", err)
		} else if len(percent) > 0 {
			h.set(percent[0])
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func (h *CpuLimitHandler) set(p float64) {
	h.current.Store(uint64(p * 100))
}

func (h *CpuLimitHandler) Current() float64 {
	return float64(h.current.Load()) / 100
}

func (h *CpuLimitHandler) Overloaded() bool {
	return h.max > 0 && h.Current() > h.max
}

func (h *CpuLimitHandler) Middleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if h.Overloaded() {
			err := errno.OverloadedErr
			c.AbortWithStatusJSON(err.HTTPStatus(), utils.H{
				"code":    err.ErrCode,
				"message": err.ErrMsg,
				"data":    nil,
			})
			return
		}
		c.Next(ctx)
	}
}

type Health struct {
	Status     string  `json:"status"`
	CPUPercent float64 `json:"cpuPercent"`
	MemPercent float64 `json:"memPercent"`
}

func (h *CpuLimitHandler) Health() *Health {
	out := &Health{Status: "ok", CPUPercent: h.Current()}
	if vm, err := mem.VirtualMemory(); err == nil {
		out.MemPercent = vm.UsedPercent
	}
	if h.Overloaded() {
		out.Status = "overloaded"
	}
	return out
}

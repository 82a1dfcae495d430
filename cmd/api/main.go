package main

import (
	"context"
	"fmt"

	channeldb "VidTube.com/cmd/channel/dal/db"
	interactiondb "VidTube.com/cmd/interaction/dal/db"
	notificationdb "VidTube.com/cmd/notification/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/config"
	"VidTube.com/pkg/bound"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/middleware"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/search"
	"VidTube.com/pkg/tracer"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"gorm.io/gorm"
)

func initDal(conn *gorm.DB) {
	userdb.Init(conn)
	channeldb.Init(conn)
	videodb.Init(conn)
	interactiondb.Init(conn)
	notificationdb.Init(conn)
}

func Init() {
	config.Init()
	conn, err := database.Init()
	if err != nil {
		hlog.Fatalf("Failed to init database: %v", err)
	}
	initDal(conn)

	if err = jwt.Init(); err != nil {
		hlog.Fatalf("Failed to init jwt: %v", err)
	}
	cache.Init()
	mq.Init()
	search.Init()
	if err = oss.InitMinio(); err != nil {
		hlog.Warnf("minio unavailable, uploads disabled: %v", err)
	}
	if err = middleware.InitSentinel(); err != nil {
		hlog.Warnf("Failed to init sentinel: %v", err)
	}
}

func main() {
	Init()
	closer := tracer.InitJaeger()
	defer closer.Close()
	defer mq.Close()

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(config.ConfigInfo.Server.MaxRequestBody),
	)

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// 错误处理
	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))
	r.Use(tracer.ServerTracing())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cpu := bound.NewCpuLimitHandler(config.ConfigInfo.Bound.MaxCPUPercent)
	go cpu.Run(ctx)

	// 注册路由
	register(r, cpu)

	r.Spin()
}

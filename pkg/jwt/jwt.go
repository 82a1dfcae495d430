package jwt

import (
	"context"
	"errors"
	"time"

	"VidTube.com/config"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/jwt"
)

const (
	IdentityKey    = "id"
	defaultTimeout = 7 * 24 * time.Hour
)

var JwtMiddleware *jwt.HertzJWTMiddleware

// New 生成 HS256 中间件，token 只携带用户 id
func New(secret string, timeout time.Duration) (*jwt.HertzJWTMiddleware, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return jwt.New(&jwt.HertzJWTMiddleware{
		Realm:            "vidtube",
		SigningAlgorithm: "HS256",
		Key:              []byte(secret),
		Timeout:          timeout,
		IdentityKey:      IdentityKey,
		TokenLookup:      "header: Authorization",
		TokenHeadName:    "Bearer",
		TimeFunc:         time.Now,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if id, ok := data.(string); ok {
				return jwt.MapClaims{IdentityKey: id}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return claims[IdentityKey]
		},
		HTTPStatusMessageFunc: func(e error, ctx context.Context, c *app.RequestContext) string {
			if errors.Is(e, jwt.ErrEmptyAuthHeader) {
				return "Not authorized, no token"
			}
			return "Not authorized, token failed"
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(consts.StatusUnauthorized, utils.H{
				"code":    errno.TokenInvalidErrCode,
				"message": message,
				"data":    nil,
			})
		},
	})
}

// Init 从配置初始化全局中间件
func Init() error {
	timeout, err := time.ParseDuration(config.ConfigInfo.Jwt.Timeout)
	if err != nil {
		hlog.Warnf("invalid jwt timeout %q, using %s", config.ConfigInfo.Jwt.Timeout, defaultTimeout)
		timeout = defaultTimeout
	}
	mw, err := New(config.ConfigInfo.Jwt.Secret, timeout)
	if err != nil {
		return err
	}
	JwtMiddleware = mw
	return nil
}

func Auth() app.HandlerFunc {
	return JwtMiddleware.MiddlewareFunc()
}

// GenerateToken 登录和注册成功后签发 token
func GenerateToken(userId string) (string, time.Time, error) {
	return JwtMiddleware.TokenGenerator(userId)
}

// GetUserID 读取 Auth 中间件写入的用户 id
func GetUserID(ctx context.Context, c *app.RequestContext) (string, error) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return "", errno.TokenInvalidErr.WithMessage("Not authorized, no token")
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", errno.TokenInvalidErr.WithMessage("Not authorized, token failed")
	}
	return id, nil
}

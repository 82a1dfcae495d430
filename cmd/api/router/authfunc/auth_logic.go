package authfunc

import (
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		jwt.Auth(),
	)
}

package pack

import (
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response，HTTP 状态码由错误码决定
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(Err.HTTPStatus(), Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

// SendCreated 创建成功返回 201
func SendCreated(c *app.RequestContext, data interface{}) {
	c.JSON(consts.StatusCreated, Response{
		Code:    errno.Success.ErrCode,
		Message: errno.Success.ErrMsg,
		Data:    data,
	})
}

// BindErr 请求体无法解析
func BindErr(err error) error {
	return errno.ParamErr.WithMessage("Invalid request body: " + err.Error())
}

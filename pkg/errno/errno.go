package errno

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	SuccessCode             = 0
	ServiceErrCode          = 10001
	ParamErrCode            = 10002
	AuthorizationFailedCode = 10003
	NotFoundErrCode         = 10004
	InvalidStateErrCode     = 10005
	TokenInvalidErrCode     = 10006
	RateLimitedErrCode      = 10007
	OverloadedErrCode       = 10008
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

// Is 按错误码比较，WithMessage 派生出的错误与原错误视为同一类
func (e ErrNo) Is(target error) bool {
	var t ErrNo
	if !errors.As(target, &t) {
		return false
	}
	return e.ErrCode == t.ErrCode
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

// HTTPStatus maps an error code to the status the handlers reply with.
func (e ErrNo) HTTPStatus() int {
	switch e.ErrCode {
	case SuccessCode:
		return http.StatusOK
	case ParamErrCode, InvalidStateErrCode:
		return http.StatusBadRequest
	case TokenInvalidErrCode:
		return http.StatusUnauthorized
	case AuthorizationFailedCode:
		return http.StatusForbidden
	case NotFoundErrCode:
		return http.StatusNotFound
	case RateLimitedErrCode:
		return http.StatusTooManyRequests
	case OverloadedErrCode:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Internal server error")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong parameter has been given")
	RequestErr             = ParamErr
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Not authorized")
	NotFoundErr            = NewErrNo(NotFoundErrCode, "Resource not found")
	InvalidStateErr        = NewErrNo(InvalidStateErrCode, "Action is not allowed in current state")
	TokenInvalidErr        = NewErrNo(TokenInvalidErrCode, "Not authorized, token failed")
	RateLimitedErr         = NewErrNo(RateLimitedErrCode, "Too many requests")
	OverloadedErr          = NewErrNo(OverloadedErrCode, "Server is busy, please retry later")
)

// ConvertErr convert error to Errno
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	return ServiceErr
}

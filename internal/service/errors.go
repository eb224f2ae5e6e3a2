package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrEmailExist           = errors.New("邮箱已注册")
	ErrCredentialsIncorrect = errors.New("邮箱或密码错误")
	ErrUserNotFound         = errors.New("用户不存在")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrEmailExist:           BadRequest,
	ErrCredentialsIncorrect: Unauthorized,
	ErrUserNotFound:         NotFound,
	UnExpectedError:         InternalServerError,
}

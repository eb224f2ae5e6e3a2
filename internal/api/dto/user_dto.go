package dto

import "time"

// RegisterDTO 注册请求体
type RegisterDTO struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6,max=72"`
	FullName *string `json:"full_name" binding:"omitempty,max=255"`
}

// LoginDTO 登录请求体
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserDTO 对外暴露的用户信息
type UserDTO struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenDTO 令牌响应
type TokenDTO struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        *UserDTO `json:"user"`
}

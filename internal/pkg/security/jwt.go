package security

import (
	"Lumina/internal/api/config"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret     []byte
	jwtExpiration                   = time.Hour * 24 * 7
	jwtMethod     jwt.SigningMethod = jwt.SigningMethodHS256
)

// InitJWT 从配置安装签名密钥、算法与有效期
func InitJWT(cfg config.JWTConfig) error {
	if cfg.Secret == "" {
		return errors.New("jwt secret is empty")
	}
	jwtSecret = []byte(cfg.Secret)

	if cfg.ExpireHours > 0 {
		jwtExpiration = time.Duration(cfg.ExpireHours) * time.Hour
	}

	switch cfg.Algorithm {
	case "", "HS256":
		jwtMethod = jwt.SigningMethodHS256
	case "HS384":
		jwtMethod = jwt.SigningMethodHS384
	case "HS512":
		jwtMethod = jwt.SigningMethodHS512
	default:
		return fmt.Errorf("unsupported jwt algorithm: %s", cfg.Algorithm)
	}

	return nil
}

// GenerateToken 为用户签发一个新的 JWT Token
func GenerateToken(userID uint64) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(jwtExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    "Lumina",
	}

	token := jwt.NewWithClaims(jwtMethod, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", fmt.Errorf("签名 Token 失败: %w", err)
	}

	return tokenString, nil
}

// ValidateToken 验证 Token 字符串并解析出 Claims
func ValidateToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非预期的签名方法: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("token 解析失败: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token 无效或已过期")
	}

	return claims, nil
}

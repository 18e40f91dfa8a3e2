package security

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims JWT载荷：Subject 为用户ID，另带用户名与角色，
// 消费方无需查库即可拿到身份与角色
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// 获取token过期时间配置，默认60分钟
func GetTokenExpiration() time.Duration {
	if envExpiration := os.Getenv("JWT_EXPIRATION"); envExpiration != "" {
		if duration, err := time.ParseDuration(envExpiration); err == nil {
			if duration < 5*time.Minute {
				duration = 5 * time.Minute
			}
			if duration > 30*24*time.Hour {
				duration = 30 * 24 * time.Hour
			}
			return duration
		}
		log.Printf("无法解析JWT_EXPIRATION: %s", envExpiration)
	}
	return 60 * time.Minute
}

func getSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET 未配置")
	}
	return []byte(secret), nil
}

// GenerateToken 生成JWT令牌
func GenerateToken(userID, username, role string) (string, time.Time, error) {
	return GenerateTokenWithExpiration(userID, username, role, GetTokenExpiration())
}

// GenerateTokenWithExpiration 生成JWT令牌 - 指定过期时间
func GenerateTokenWithExpiration(userID, username, role string, expiration time.Duration) (string, time.Time, error) {
	secret, err := getSecret()
	if err != nil {
		return "", time.Time{}, err
	}

	now := time.Now()
	expires := now.Add(expiration)

	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("签发令牌失败: %v", err)
	}
	return signed, expires, nil
}

// ParseToken 解析并校验JWT令牌
func ParseToken(tokenString string) (*Claims, error) {
	secret, err := getSecret()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("无效的令牌")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return nil, jwt.ErrTokenExpired
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("令牌缺少Subject声明")
	}
	return claims, nil
}

package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/d60-Lab/post-service/pkg/response"
)

const identityKey = "userID"

// IsLoggedIn 登录守卫：没有有效令牌直接短路。
// 令牌的签发在账号模块，这里只认 HMAC 签名里的 subject。
func IsLoggedIn(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseIdentity(c, secret)
		if err != nil || userID == "" {
			response.Fail(c, http.StatusUnauthorized, "login required")
			c.Abort()
			return
		}
		c.Set(identityKey, userID)
		c.Next()
	}
}

// Identity 可选身份：带令牌则解析出身份，不带则匿名放行
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := parseIdentity(c, secret); err == nil && userID != "" {
			c.Set(identityKey, userID)
		}
		c.Next()
	}
}

// CurrentUserID 取当前请求身份，匿名时为空串
func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func parseIdentity(c *gin.Context, secret string) (string, error) {
	raw := tokenFromRequest(c)
	if raw == "" {
		return "", jwt.ErrTokenMalformed
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", err
	}
	return token.Claims.GetSubject()
}

func tokenFromRequest(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

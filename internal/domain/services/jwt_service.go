package services

import (
	"errors"
	"fmt"
	"oksms-http-service/internal/infrastructure/config"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// InterfaceJWTService 定义JWT服务接口
type InterfaceJWTService interface {
	GenerateToken(userID uint, role string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
}

// JWTService 提供JWT相关服务
type JWTService struct {
	secretKey string
	issuer    string
}

// JWTClaims 定义JWT令牌的声明结构
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"` // admin, manager
	jwt.RegisteredClaims
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "oksms-http-service",
	}
}

// GenerateToken 生成JWT令牌
func (s *JWTService) GenerateToken(userID uint, role string) (string, error) {
	// 令牌有效期为24小时
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken 验证JWT令牌
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims 从令牌中提取声明
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		// 将map claims转换为JWTClaims结构
		jwtClaims := &JWTClaims{}

		// 提取用户ID
		if userID, ok := claims["user_id"].(float64); ok {
			jwtClaims.UserID = uint(userID)
		}

		// 提取角色
		if role, ok := claims["role"].(string); ok {
			jwtClaims.Role = role
		}

		if issuer, ok := claims["iss"].(string); ok {
			jwtClaims.Issuer = issuer
		}

		return jwtClaims, nil
	}

	return nil, errors.New("invalid token claims")
}

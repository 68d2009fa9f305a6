package echoapi

import (
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/masomo-lms/portal/core"
)

var (
	// appJWTConfig is the default JWT auth middleware config.
	appJWTConfig = middleware.JWTConfig{
		SigningKey:    []byte(core.Conf.Server.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "userToken",
		Claims:        new(Claims),
	}
	contextSessionKey = "session"

	tokenTTL = 24 * time.Hour
)

// Claims represents the authorization claims transmitted via a JWT.
// Tokens are issued by the LMS backend; GenerateToken exists for the admin CLI and tests.
type Claims struct {
	jwt.StandardClaims
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// NewClaims returns claims identifying sess, valid for a day.
func NewClaims(sess core.Session) *Claims {
	now := core.NowFunc()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.AppName,
			Subject:   strconv.FormatInt(sess.UserID, 10),
			ExpiresAt: now.Add(tokenTTL).Unix(),
			IssuedAt:  now.Unix(),
		},
		Username: sess.Username,
		Role:     sess.Role,
	}
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(appJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(appJWTConfig.SigningKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(appJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// getContextSession builds the Session of the authenticated caller, once per request.
func getContextSession(ctx echo.Context) (core.Session, error) {
	if sess, ok := ctx.Get(contextSessionKey).(core.Session); ok {
		return sess, nil
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return core.Session{}, err
	}
	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return core.Session{}, errUnauthorized
	}

	sess := core.Session{
		UserID:    uid,
		Username:  claims.Username,
		Role:      claims.Role,
		RequestID: ctx.Response().Header().Get(echo.HeaderXRequestID),
	}
	if err := sess.Validate(); err != nil {
		return core.Session{}, errUnauthorized
	}
	ctx.Set(contextSessionKey, sess)
	return sess, nil
}

package logsvc

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/masomo-lms/portal/core"
)

// ZapLogger writes structured console logs.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

var _ core.Logger = (*ZapLogger)(nil)

// NewZapLogger builds a JSON logger for "prod", and a human readable one for any other mode.
func NewZapLogger(mode string) (*ZapLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	lgr, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: lgr.Sugar()}, nil
}

// NewZapLoggerFrom wraps an existing zap logger, e.g. zaptest's.
func NewZapLoggerFrom(lgr *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: lgr.Sugar()}
}

func (l *ZapLogger) Sync() {
	_ = l.sugar.Sync()
}

func (l *ZapLogger) Debug(msg string, args ...interface{}) { l.sugar.Debugw(msg, fields(args)...) }
func (l *ZapLogger) Info(msg string, args ...interface{})  { l.sugar.Infow(msg, fields(args)...) }
func (l *ZapLogger) Warn(msg string, args ...interface{})  { l.sugar.Warnw(msg, fields(args)...) }
func (l *ZapLogger) Error(msg string, args ...interface{}) { l.sugar.Errorw(msg, fields(args)...) }
func (l *ZapLogger) Fatal(msg string, args ...interface{}) { l.sugar.Fatalw(msg, fields(args)...) }

// fields turns free-form logger args into zap key/value pairs.
// expected args: error, core.Session, map[string]interface{}, anything else is logged as argN.
func fields(args []interface{}) []interface{} {
	kvs := make([]interface{}, 0, len(args)*2)
	for i, arg := range args {
		switch v := arg.(type) {
		case nil:
		case error:
			kvs = append(kvs, "error", fmt.Sprintf("%+v", v))
		case core.Session:
			kvs = append(kvs, "user_id", v.UserID, "username", v.Username)
			if v.RequestID != "" {
				kvs = append(kvs, "request_id", v.RequestID)
			}
		case map[string]interface{}:
			for key, val := range v {
				kvs = append(kvs, key, redact(key, val))
			}
		default:
			kvs = append(kvs, fmt.Sprintf("arg%d", i), v)
		}
	}
	return kvs
}

func redact(key string, val interface{}) interface{} {
	key = strings.ToLower(key)
	for _, secret := range []string{"token", "authorization", "password", "secret"} {
		if strings.Contains(key, secret) {
			return "[REDACTED]"
		}
	}
	return val
}

package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Data source modes
const (
	DataSourceMock = "mock"
	DataSourceREST = "rest"
)

var Conf *Config

type (
	Config struct {
		Env          string
		Build        string
		AppName      string
		Debug        bool
		TestMode     bool
		LogMode      string
		RollbarToken string

		Server     ServerConfig
		DataSource DataSourceConfig
	}

	ServerConfig struct {
		Address        string
		SecretKey      string
		DisableReqLogs bool
	}

	DataSourceConfig struct {
		Mode    string // mock (default) | rest
		BaseURL string
		Token   string
		Timeout time.Duration
	}
)

func init() {
	Conf = NewConfig(loadViper())
}

func loadViper() *viper.Viper {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Masomo")
	v.SetDefault("build", "dev")
	v.SetDefault("logMode", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("address", ":8080")
	v.SetDefault("secretKey", "poq5-wer)enb$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	v.SetDefault("disableReqLogs", false)
	v.SetDefault("dataSourceMode", DataSourceMock)
	v.SetDefault("dataSourceBaseUrl", "http://localhost:8081/api")
	v.SetDefault("dataSourceToken", "")
	v.SetDefault("dataSourceTimeout", 10*time.Second)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetDefault("env", env)
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()
	return v
}

// NewConfig reads a Config out of v. Keys are looked up by their flat names, so
// `DEV_DATASOURCEMODE=rest` switches the data source in DEV.
func NewConfig(v *viper.Viper) *Config {
	mode := CleanString(v.GetString("dataSourceMode"), true /* lower */)
	if mode != DataSourceREST {
		mode = DataSourceMock
	}
	return &Config{
		Env:          v.GetString("env"),
		Build:        v.GetString("build"),
		AppName:      v.GetString("appName"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		LogMode:      v.GetString("logMode"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:        v.GetString("address"),
			SecretKey:      v.GetString("secretKey"),
			DisableReqLogs: v.GetBool("disableReqLogs"),
		},
		DataSource: DataSourceConfig{
			Mode:    mode,
			BaseURL: strings.TrimRight(v.GetString("dataSourceBaseUrl"), "/"),
			Token:   v.GetString("dataSourceToken"),
			Timeout: v.GetDuration("dataSourceTimeout"),
		},
	}
}

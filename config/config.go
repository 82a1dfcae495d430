package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// Init 读取 config.yml，环境变量 VIDTUBE_* 可覆盖同名配置项
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	if err := godotenv.Load(); err == nil {
		logrus.Info("Loaded environment from .env")
	}

	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")
	viper.SetEnvPrefix("VIDTUBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	configPaths := []string{
		"../../config",
		"./config",
		"../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
		absPath, _ := filepath.Abs(path)
		logrus.Debugf("Added config path: %s (absolute: %s)", path, absPath)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
			return
		}
	} else {
		logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())
	}

	load()

	logrus.Infof("Config loaded - MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
	if ConfigInfo.Jwt.Secret == "" {
		logrus.Warn("No jwt secret configured!")
	}
}

func setDefaults() {
	viper.SetDefault("server.addr", "0.0.0.0:8000")
	viper.SetDefault("server.allow_origins", []string{"http://localhost:5173"})
	viper.SetDefault("server.max_request_body", 600*1024*1024)
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("elastic.index", "videos")
	viper.SetDefault("jaeger.service_name", "vidtube-api")
	viper.SetDefault("jaeger.sample_rate", 1.0)
	viper.SetDefault("jwt.timeout", "168h")
	viper.SetDefault("sentinel.comment_qps", 50)
	viper.SetDefault("sentinel.reaction_qps", 200)
	viper.SetDefault("sentinel.subscribe_qps", 100)
	viper.SetDefault("sentinel.upload_qps", 5)
	viper.SetDefault("bound.max_cpu_percent", 90)
}

// 手动从viper获取配置值，避免Unmarshal对嵌套环境变量不生效的问题
func load() {
	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.AllowOrigins = viper.GetStringSlice("server.allow_origins")
	ConfigInfo.Server.MaxRequestBody = viper.GetInt("server.max_request_body")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.RabbitMq.Addr = viper.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = viper.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = viper.GetString("rabbitmq.password")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = viper.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = viper.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	ConfigInfo.Minio.PublicURL = viper.GetString("minio.public_url")

	ConfigInfo.Elastic.Addr = viper.GetString("elastic.addr")
	ConfigInfo.Elastic.Index = viper.GetString("elastic.index")

	ConfigInfo.Jaeger.Addr = viper.GetString("jaeger.addr")
	ConfigInfo.Jaeger.ServiceName = viper.GetString("jaeger.service_name")
	ConfigInfo.Jaeger.SampleRate = viper.GetFloat64("jaeger.sample_rate")

	ConfigInfo.Jwt.Secret = viper.GetString("jwt.secret")
	ConfigInfo.Jwt.Timeout = viper.GetString("jwt.timeout")

	ConfigInfo.Sentinel.CommentQPS = viper.GetFloat64("sentinel.comment_qps")
	ConfigInfo.Sentinel.ReactionQPS = viper.GetFloat64("sentinel.reaction_qps")
	ConfigInfo.Sentinel.SubscribeQPS = viper.GetFloat64("sentinel.subscribe_qps")
	ConfigInfo.Sentinel.UploadQPS = viper.GetFloat64("sentinel.upload_qps")

	ConfigInfo.Bound.MaxCPUPercent = viper.GetFloat64("bound.max_cpu_percent")
}

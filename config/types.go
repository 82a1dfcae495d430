package config

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	Elastic  elastic  `yaml:"elastic" mapstructure:"elastic"`
	Jaeger   jaeger   `yaml:"jaeger" mapstructure:"jaeger"`
	Jwt      jwt      `yaml:"jwt" mapstructure:"jwt"`
	Sentinel sentinel `yaml:"sentinel" mapstructure:"sentinel"`
	Bound    bound    `yaml:"bound" mapstructure:"bound"`
}

type server struct {
	Addr           string   `yaml:"addr"`
	AllowOrigins   []string `yaml:"allow_origins" mapstructure:"allow_origins"`
	MaxRequestBody int      `yaml:"max_request_body" mapstructure:"max_request_body"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	PublicURL string `yaml:"public_url" mapstructure:"public_url"`
}

type elastic struct {
	Addr  string `yaml:"addr"`
	Index string `yaml:"index"`
}

type jaeger struct {
	Addr        string  `yaml:"addr"`
	ServiceName string  `yaml:"service_name" mapstructure:"service_name"`
	SampleRate  float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

type jwt struct {
	Secret  string `yaml:"secret"`
	Timeout string `yaml:"timeout"`
}

type sentinel struct {
	CommentQPS   float64 `yaml:"comment_qps" mapstructure:"comment_qps"`
	ReactionQPS  float64 `yaml:"reaction_qps" mapstructure:"reaction_qps"`
	SubscribeQPS float64 `yaml:"subscribe_qps" mapstructure:"subscribe_qps"`
	UploadQPS    float64 `yaml:"upload_qps" mapstructure:"upload_qps"`
}

type bound struct {
	MaxCPUPercent float64 `yaml:"max_cpu_percent" mapstructure:"max_cpu_percent"`
}

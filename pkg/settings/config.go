package settings

type Config struct {
	Server        Server        `mapstructure:"server"`
	Logger        Logger        `mapstructure:"logger"`
	Elasticsearch Elasticsearch `mapstructure:"elasticsearch"`
}

// Server is the configuration for the optional HTTP ingest facade
type Server struct {
	Mode string `mapstructure:"mode"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	MaxSize     int    `mapstructure:"max_size"`
	Compress    bool   `mapstructure:"compress"`
}

// Elasticsearch is the configuration for the Elasticsearch client
type Elasticsearch struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	Timeout   int      `mapstructure:"timeout"` // Seconds
	Bulk      Bulk     `mapstructure:"bulk"`
}

// Bulk tunes how bulk submissions are partitioned
type Bulk struct {
	MaxBodyBytes int `mapstructure:"max_body_bytes"` // Bytes, per-batch body budget
}

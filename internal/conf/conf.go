package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap is the root of configs/config.yaml.
type Bootstrap struct {
	Server *Server `json:"server"`
	Data   *Data   `json:"data"`
	Biz    *Biz    `json:"biz"`
	Log    *Log    `json:"log"`
}

// Log configures the process logger.
type Log struct {
	Level     string `json:"level"`
	Directory string `json:"directory"`
}

// LevelOr returns the configured level, or def when unset.
func (l *Log) LevelOr(def string) string {
	if l == nil || l.Level == "" {
		return def
	}
	return l.Level
}

// DirectoryOr returns the configured log directory, or def when unset.
func (l *Log) DirectoryOr(def string) string {
	if l == nil || l.Directory == "" {
		return def
	}
	return l.Directory
}

type Server struct {
	Http *Server_HTTP `json:"http"`
}

type Server_HTTP struct {
	Network string   `json:"network"`
	Addr    string   `json:"addr"`
	Timeout Duration `json:"timeout"`
}

type Data struct {
	Database *Data_Database `json:"database"`
	Redis    *Data_Redis    `json:"redis"`
	Rabbitmq *Data_Rabbitmq `json:"rabbitmq"`
}

type Data_Database struct {
	Driver string `json:"driver"`
	Source string `json:"source"`
}

type Data_Redis struct {
	Addr string `json:"addr"`
}

type Data_Rabbitmq struct {
	Host       string `json:"host"`
	Port       string `json:"port"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Vhost      string `json:"vhost"`
	Exchange   string `json:"exchange"`
	RoutingKey string `json:"routing_key"`
}

// Biz holds usecase limits.
type Biz struct {
	// MaxLineLength rejects longer lines when > 0.
	MaxLineLength int `json:"max_line_length"`
}

// Duration reads "1.5s"-style strings as well as plain nanoseconds.
type Duration time.Duration

func (d Duration) AsDuration() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		*d = Duration(x)
	case string:
		p, err := time.ParseDuration(x)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", x, err)
		}
		*d = Duration(p)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

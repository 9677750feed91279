package conf

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	var s Server_HTTP
	require.NoError(t, json.Unmarshal([]byte(`{"addr":"0.0.0.0:8000","timeout":"1.5s"}`), &s))
	require.Equal(t, 1500*time.Millisecond, s.Timeout.AsDuration())

	require.NoError(t, json.Unmarshal([]byte(`{"timeout":2000000000}`), &s))
	require.Equal(t, 2*time.Second, s.Timeout.AsDuration())

	require.Error(t, json.Unmarshal([]byte(`{"timeout":"soon"}`), &s))
	require.Error(t, json.Unmarshal([]byte(`{"timeout":true}`), &s))
}

func TestBootstrapUnmarshal(t *testing.T) {
	raw := `{
		"server": {"http": {"addr": "0.0.0.0:8000", "timeout": "1s"}},
		"data": {
			"database": {"driver": "mysql", "source": "root:root@tcp(127.0.0.1:3306)/winline"},
			"redis": {"addr": "127.0.0.1:6379"},
			"rabbitmq": {"host": "127.0.0.1", "port": "5672", "exchange": "winline", "routing_key": "win"}
		},
		"biz": {"max_line_length": 15},
		"log": {"level": "warn"}
	}`
	var bc Bootstrap
	require.NoError(t, json.Unmarshal([]byte(raw), &bc))
	require.Equal(t, "0.0.0.0:8000", bc.Server.Http.Addr)
	require.Equal(t, "mysql", bc.Data.Database.Driver)
	require.Equal(t, "win", bc.Data.Rabbitmq.RoutingKey)
	require.Equal(t, 15, bc.Biz.MaxLineLength)
	require.Equal(t, "warn", bc.Log.LevelOr("info"))
	require.Equal(t, "/var/log/winline", bc.Log.DirectoryOr("/var/log/winline"))
}

func TestLogDefaults(t *testing.T) {
	var l *Log
	require.Equal(t, "info", l.LevelOr("info"))
	require.Equal(t, "./logs", l.DirectoryOr("./logs"))
}

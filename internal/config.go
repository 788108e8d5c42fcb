package internal

import "time"

type Config struct {
	LogLevel string `env:"LOG_LEVEL,required=true"`
	Host     string `env:"HOST,required=true"`
	Port     int    `env:"PORT,required=true"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`

	DefaultAccount string        `env:"DEFAULT_TARGET_ACCOUNT,required=true"`
	TopN           int           `env:"TOP_N,required=true"`
	BufferSize     int           `env:"BUFFER_SIZE,required=true"`
	SinkTimeout    time.Duration `env:"SINK_TIMEOUT,required=true"`

	ReconnectDelay      time.Duration `env:"RECONNECT_DELAY,required=true"`
	SwitchDelay         time.Duration `env:"SWITCH_RECONNECT_DELAY,required=true"`
	WatchdogInterval    time.Duration `env:"WATCHDOG_INTERVAL,required=true"`
	IdleSweepInterval   time.Duration `env:"IDLE_SWEEP_INTERVAL,required=true"`
	IdleThreshold       time.Duration `env:"IDLE_THRESHOLD,required=true"`
	ExpirySweepInterval time.Duration `env:"EXPIRY_SWEEP_INTERVAL,required=true"`
	RestartInterval     time.Duration `env:"RESTART_INTERVAL,required=true"`
	HealthInterval      time.Duration `env:"HEALTH_INTERVAL,required=true"`

	AdminSecret       string        `env:"ADMIN_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
}

package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Port              int           `env:"PORT,required=true"`
	GrpcPort          int           `env:"GRPC_PORT,required=true"`
	DebugPort         int           `env:"DEBUG_PORT"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	BadgerSyncWrites  bool          `env:"BADGER_SYNC_WRITES,default=true"`
	JwtSecret         string        `env:"JWT_SECRET,required=true"`
	JwtIssuer         string        `env:"JWT_ISSUER,default=job-chat"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`

	MaxBodyLength    int   `env:"MAX_BODY_LENGTH,default=5000"`
	MaxSubjectLength int   `env:"MAX_SUBJECT_LENGTH,default=200"`
	PreviewLength    int   `env:"PREVIEW_LENGTH,default=100"`
	LimitMessages    *int  `env:"LIMIT_MESSAGES"`
	SnowflakeNode    int64 `env:"SNOWFLAKE_NODE,default=1"`
	RoomStripes      int   `env:"ROOM_STRIPES,default=256"`

	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	WriteWait            time.Duration `env:"WRITE_WAIT,default=10s"`
	PongWait             time.Duration `env:"PONG_WAIT,default=60s"`
	MaxFrameSize         int64         `env:"MAX_FRAME_SIZE,default=16384"`

	HookBufferSize  int           `env:"HOOK_BUFFER_SIZE,default=1024"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,required=true"`

	EnableModeration bool   `env:"ENABLE_MODERATION,default=false"`
	CharReplacement  string `env:"CHARACTER_REPLACEMENT,default=*"`
	CensoredPath     string `env:"CENSORED_PATH,default=censored"`

	NatsURL     string        `env:"NATS_URL"`
	NatsSubject string        `env:"NATS_SUBJECT,default=chat.message.created"`
	RedisURL    string        `env:"REDIS_URL"`
	PresenceTTL time.Duration `env:"PRESENCE_TTL,default=90s"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

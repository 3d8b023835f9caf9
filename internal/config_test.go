package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "8080")
	t.Setenv("GRPC_PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("AUTH_TOKEN_DURATION", "1h")
	t.Setenv("CONNECTION_BUFFER_SIZE", "64")
	t.Setenv("RESTART_INTERVAL", "200ms")
	t.Setenv("METRIC_INTERVAL", "30s")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.Equal(5000, config.MaxBodyLength)
	req.Equal(200, config.MaxSubjectLength)
	req.Equal(100, config.PreviewLength)
	req.Equal(60*time.Second, config.PongWait)
	req.Equal("chat.message.created", config.NatsSubject)
	req.Nil(config.LimitMessages)
	req.Empty(config.RedisURL)
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("**")
	req.Error(err)
}

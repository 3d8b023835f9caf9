package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_SERVER_ADDR is the host:port of a running job-chat HTTP listener.
	// The suites skip when it is empty.
	ServerAddr string `envconfig:"E2E_SERVER_ADDR"`
	GrpcAddr   string `envconfig:"E2E_GRPC_ADDR"`
	// E2E_SERVICE_TOKEN is a service-role token, see cmd/token
	ServiceToken string `envconfig:"E2E_SERVICE_TOKEN"`
	// E2E_DEBUG_JSON dumps every frame and gRPC body as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

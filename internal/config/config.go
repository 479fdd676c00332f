package config

import "github.com/pkg/errors"

const (
	defaultFPS         = 30
	defaultLogLevel    = "info"
	defaultSSHHost     = "::"
	defaultSSHPort     = "2222"
	defaultHostKeyPath = ".ssh/geomview_ed25519"
)

// Viewer configures the terminal viewer.
type Viewer struct {
	ScenePath string // empty means the embedded default scene
	FPS       int
	LogLevel  string
}

// SSH configures the SSH front end of the viewer.
type SSH struct {
	Host        string
	Port        string
	HostKeyPath string
}

// ViewerFromEnv reads the viewer configuration from the environment.
func ViewerFromEnv() (Viewer, error) {
	fps, err := GetEnvInt("GEOMVIEW_FPS", defaultFPS)
	if err != nil {
		return Viewer{}, err
	}
	if fps <= 0 {
		return Viewer{}, errors.Errorf("GEOMVIEW_FPS must be positive, got %d", fps)
	}

	return Viewer{
		ScenePath: GetEnv("GEOMVIEW_SCENE", ""),
		FPS:       fps,
		LogLevel:  GetEnv("LOG_LEVEL", defaultLogLevel),
	}, nil
}

// SSHFromEnv reads the SSH server configuration from the environment.
func SSHFromEnv() SSH {
	return SSH{
		Host:        GetEnv("SSH_HOST", defaultSSHHost),
		Port:        GetEnv("SSH_PORT", defaultSSHPort),
		HostKeyPath: GetEnv("SSH_HOST_KEY", defaultHostKeyPath),
	}
}

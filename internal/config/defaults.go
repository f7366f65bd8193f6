package config

const (
	defaultProjectDir   = "."
	defaultWorkspaceDir = "~/.local/share/noa/workspaces"
	defaultLogDir       = "~/.local/share/noa/logs"
	defaultStateDir     = "~/.local/share/noa"
	defaultServicePort  = 8000
	defaultModulePrefix = "example.com/services"
	defaultComposeFile  = "docker-compose.yml"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

func defaultEndpoints() []string {
	return []string{"/", "/health", "/process"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectDir:   defaultProjectDir,
			WorkspaceDir: defaultWorkspaceDir,
			LogDir:       defaultLogDir,
			StateDir:     defaultStateDir,
		},
		Generator: Generator{
			DefaultEndpoints: defaultEndpoints(),
			ServicePort:      defaultServicePort,
			ModulePrefix:     defaultModulePrefix,
			ComposeFile:      defaultComposeFile,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

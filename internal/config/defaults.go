package config

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		Core: Core{
			AllowCrossDevice: false,
			Restore: RestoreConfig{
				Verbose: true,
			},
			Logging: LoggingConfig{
				Enabled: false,
				Level:   "info",
				Rotation: RotationConfig{
					MaxSize:  "10MB",
					MaxFiles: 3,
				},
			},
		},
		UI: UI{
			Cursor:     "#AD58B4", // Purple
			Selected:   "#5FB458", // Green
			TimeFormat: "relative",
		},
		View: View{
			Include: IncludeConfig{
				Period: 0,
			},
			Exclude: ExcludeConfig{
				Files: []string{
					// Finder metadata
					".DS_Store",
				},
				Patterns: []string{},
				Globs:    []string{},
				Size:     SizeConfig{},
			},
		},
	}
}

package config

// AppConfig представляет метаданные приложения.
type AppConfig struct {
	Name    string `yaml:"name" env:"NOTES_APP_NAME" env-default:"Smart Notes Manager - Notes API"`
	Version string `yaml:"version" env:"NOTES_APP_VERSION" env-default:"0.1.0"`
}

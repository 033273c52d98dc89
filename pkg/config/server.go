package config

const (
	DefaultPort = "8080"
)

type ServerConfig struct {
	Port string
}

func (c *ServerConfig) PopulateUnsetConfigVars() {
	if c.Port == "" {
		c.Port = DefaultPort
	}
}

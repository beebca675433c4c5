package cli

var DefaultConfig = Config{
	Endpoint: "http://localhost:8080",
}

type Config struct {
	Endpoint string `yaml:"endpoint"`
}

type Context struct {
	Config Config
	Client *Client
}

package config

type HTTP struct {
	Port       uint32 `env:"HTTP_PORT" envDefault:"4000"`
	Playground bool   `env:"HTTP_PLAYGROUND" envDefault:"true"`
}

package config

// Kafka is optional: with no addresses configured the server publishes
// product change events to a no-op publisher.
type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES" envSeparator:","`
	Group     string   `env:"KAFKA_GROUP" envDefault:"product-graphql"`
}

// Enabled reports whether a broker list was configured.
func (k Kafka) Enabled() bool {
	return len(k.Addresses) > 0
}

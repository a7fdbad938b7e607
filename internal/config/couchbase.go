package config

import "time"

type Couchbase struct {
	ConnectionString string `env:"COUCHBASE_CONNECTION_STRING,required"`
	Username         string `env:"COUCHBASE_USERNAME,required"`
	Password         string `env:"COUCHBASE_PASSWORD,required"`

	Bucket      string `env:"COUCHBASE_BUCKET" envDefault:"store-bucket"`
	Scope       string `env:"COUCHBASE_SCOPE" envDefault:"products-scope"`
	Collection  string `env:"COUCHBASE_COLLECTION" envDefault:"products"`
	SearchIndex string `env:"COUCHBASE_SEARCH_INDEX" envDefault:"index-products"`

	// WanProfile applies the SDK's wan-development profile, needed when the
	// cluster is reached over a WAN (e.g. Capella).
	WanProfile     bool          `env:"COUCHBASE_WAN_PROFILE" envDefault:"true"`
	ConnectTimeout time.Duration `env:"COUCHBASE_CONNECT_TIMEOUT" envDefault:"10s"`
}

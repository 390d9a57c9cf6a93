package config

// Config file (global)
var Config JSONConfig

// JSONConfig structure based on config.json
type JSONConfig struct {
	Origin    string        `json:"origin"`
	Port      string        `json:"port"`
	JwtSecret string        `json:"jwtSecret"`
	Scylla    ScyllaConfig  `json:"scylla"`
	Redis     RedisConfig   `json:"redis"`
	MinIO     MinIOConfig   `json:"minIO"`
	TextGen   TextGenConfig `json:"textGen"`
}

// ScyllaConfig structure is the config for the ScyllaDB connection
type ScyllaConfig struct {
	Host     string `json:"host"`
	Keyspace string `json:"keyspace"`
}

// RedisConfig structure is the config for the redis connection
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// MinIOConfig structure is the config for the MinIO connection
type MinIOConfig struct {
	Endpoint string `json:"endpoint"`
	User     string `json:"user"`
	Password string `json:"password"`
	BaseURL  string `json:"baseURL"`
}

// TextGenConfig structure is the config for the text-generation collaborator
type TextGenConfig struct {
	Endpoint string `json:"endpoint"`
	APIKey   string `json:"apiKey"`
}

package redis

type CfgRedis struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	EnableTLS     bool
}

var configData CfgRedis

func LoadConfig(config *CfgRedis) {
	configData = *config
}

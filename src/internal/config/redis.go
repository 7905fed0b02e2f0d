package config

import (
	"ticketing-service/src/pkg/log"
	redisModule "ticketing-service/src/pkg/redis"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func LoadRedisConfig(viper *viper.Viper, log log.Log) {
	cfgRedis := &redisModule.CfgRedis{
		RedisHost:     viper.GetString("redis.host"),
		RedisPort:     viper.GetString("redis.port"),
		RedisPassword: viper.GetString("redis.password"),
		RedisDB:       viper.GetInt("redis.db"),
		EnableTLS:     viper.GetBool("redis.tls"),
	}
	redisModule.LoadConfig(cfgRedis)
	if err := redisModule.InitConnection(); err != nil {
		log.Error("redis init", err.Error(), "config", "")
	}
}

func NewRedis() redis.UniversalClient {
	return redisModule.GetClient()
}

package redis

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	redisHostFlag = "redis-host"
	redisPortFlag = "redis-port"
	redisPassFlag = "redis-pass"
	redisDBFlag   = "redis-db"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   redisHostFlag,
			Usage:  "redis host (leave empty to disable redis)",
			EnvVar: "REDIS_MASTER_SERVICE_HOST, REDIS_HOST",
		},
		cli.IntFlag{
			Name:   redisPortFlag,
			Usage:  "redis port",
			EnvVar: "REDIS_MASTER_SERVICE_PORT, REDIS_PORT",
			Value:  6379,
		},
		cli.StringFlag{
			Name:   redisPassFlag,
			Usage:  "redis password",
			EnvVar: "REDIS_PASS",
		},
		cli.IntFlag{
			Name:   redisDBFlag,
			Usage:  "redis db",
			EnvVar: "REDIS_DB",
		},
	)
}

// New returns nil when redis is not configured.
func New(c *cli.Context) *redis.Client {
	host := c.String(redisHostFlag)
	if host == "" {
		return nil
	}
	addr := fmt.Sprintf("%v:%v", host, c.Int(redisPortFlag))
	log.Infof("redis endpoint %v", addr)
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: c.String(redisPassFlag),
		DB:       c.Int(redisDBFlag),
	})
}

package redis_test

import (
	"stay/config"
	"stay/infras/redis"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSkipsWhenUnused(t *testing.T) {
	assert.Nil(t, redis.New(&config.Config{}))
}

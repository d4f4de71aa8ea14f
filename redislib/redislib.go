// Package redislib keeps dictionary verdicts in Redis so they survive between runs
package redislib

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

/***************************************************************************************************************
****************************************************************************************************************
* Redis functions **********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// NewPool returns a redis.Pool dialing addr ("host:port")
func NewPool(addr string) *redis.Pool {
	return &redis.Pool{
		// Max number of idle connections in the pool
		MaxIdle: 4,
		// The wordlist run is sequential, one connection is enough
		MaxActive:   4,
		IdleTimeout: 5 * time.Minute,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr)
		},
	}
}

// Store implements verdict storage on top of a pool
type Store struct {
	pool *redis.Pool
	// TTL expires verdicts; 0 keeps them forever
	TTL time.Duration
}

// NewStore wraps pool
func NewStore(pool *redis.Pool) *Store {
	return &Store{pool: pool}
}

// Ping tests connectivity for redis (PONG should be returned)
func (s *Store) Ping() error {
	conn := s.pool.Get()
	defer conn.Close()

	pong, err := redis.String(conn.Do("PING"))
	if err != nil {
		return err
	}
	if pong != "PONG" {
		return fmt.Errorf("redis ping: unexpected reply %q", pong)
	}
	return nil
}

// GetVerdict executes the redis GET command; found is false for a missing key
func (s *Store) GetVerdict(key string) (verdict bool, found bool, err error) {
	conn := s.pool.Get()
	defer conn.Close()

	verdict, err = redis.Bool(conn.Do("GET", key))
	if err == redis.ErrNil {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return verdict, true, nil
}

// SetVerdict executes the redis SET command
func (s *Store) SetVerdict(key string, verdict bool) error {
	conn := s.pool.Get()
	defer conn.Close()

	value := "0"
	if verdict {
		value = "1"
	}

	var err error
	if s.TTL > 0 {
		_, err = conn.Do("SET", key, value, "EX", int64(s.TTL/time.Second))
	} else {
		_, err = conn.Do("SET", key, value)
	}
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the pool
func (s *Store) Close() error {
	return s.pool.Close()
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	defaultPrefix  = "thynx:sess:"
	commandTimeout = 3 * time.Second
)

type Options struct {
	Address  string
	Password string
	DB       int
	Prefix   string
}

// SessionStorage implements fiber.Storage so the session middleware keeps
// admin sessions in Redis and they survive restarts and span instances.
type SessionStorage struct {
	client *redis.Client
	prefix string
	log    *logrus.Logger
}

var _ fiber.Storage = (*SessionStorage)(nil)

func New(opts Options, log *logrus.Logger) (*SessionStorage, error) {
	log.Info(fmt.Sprintf("Connecting to Redis at %s...", opts.Address))

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
		_ = client.Close()
		return nil, err
	}
	log.Info("Successfully connected to Redis")

	return NewFromClient(client, opts.Prefix, log), nil
}

func NewFromClient(client *redis.Client, prefix string, log *logrus.Logger) *SessionStorage {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &SessionStorage{client: client, prefix: prefix, log: log}
}

func (s *SessionStorage) key(id string) string {
	return s.prefix + id
}

// Get returns nil, nil for a missing key as fiber.Storage requires.
func (s *SessionStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Error getting session from redis")
		return nil, err
	}
	return val, nil
}

func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), val, exp).Err(); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Error saving session to redis")
		return err
	}
	return nil
}

func (s *SessionStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	return s.client.Del(ctx, s.key(key)).Err()
}

// Reset removes every session under the storage prefix, leaving other keys
// in the same database alone.
func (s *SessionStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *SessionStorage) Close() error {
	return s.client.Close()
}

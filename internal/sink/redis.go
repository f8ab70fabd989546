// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sink

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// ListPusher abstracts the minimal Redis surface the sink needs.
// *redis.Client satisfies it; tests can substitute a fake.
type ListPusher interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	Close() error
}

// RedisSink appends each record line to a Redis list. Collectors on the
// analysis side pop the list (LPOP/LRANGE) at their own pace, so sweep
// drivers never block on the consumer.
type RedisSink struct {
	client ListPusher
	key    string
}

// NewRedisSink dials addr and targets the given list key.
func NewRedisSink(addr, key string) *RedisSink {
	return &RedisSink{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		key:    key,
	}
}

// NewRedisSinkWithClient wires an existing client (or a test fake).
func NewRedisSinkWithClient(client ListPusher, key string) *RedisSink {
	return &RedisSink{client: client, key: key}
}

func (s *RedisSink) Emit(ctx context.Context, line string) error {
	if err := s.client.RPush(ctx, s.key, line).Err(); err != nil {
		return fmt.Errorf("redis rpush %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisSink) Close() error { return s.client.Close() }

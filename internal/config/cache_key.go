package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key holding a user's active session JTI.
func (r *CacheKeyStruct) UserSessionKey(userID int) string {
	return fmt.Sprintf("login:%d", userID)
}

// MarkCommentsChannel returns the Redis PubSub channel carrying new
// comments on a mark's grading thread.
func (r *CacheKeyStruct) MarkCommentsChannel(markID int) string {
	return fmt.Sprintf("mark:%d:comments", markID)
}

var CacheKey = NewCacheKeyStruct()

// Package statistics provides synchronized thread-safe statistics
// counters for concurrent hashing runs.
package statistics

import (
	"sync/atomic"
	"time"
)

type HashSync struct {
	hashedInputs    int64
	failedInputs    int64
	hashedBytes     int64
	highestHashTime int64
	averageHashTime int64
}

func NewHashSync() *HashSync {
	return &HashSync{}
}

// Update records one successfully hashed input.
func (s *HashSync) Update(hashedBytes int, hashTime time.Duration) {
	hashedInputs := atomic.AddInt64(&s.hashedInputs, 1)
	atomic.AddInt64(&s.hashedBytes, int64(hashedBytes))

	// Average hashing time
	curAvgHashTime := atomic.LoadInt64(&s.averageHashTime)
	atomic.AddInt64(
		&s.averageHashTime,
		(int64(hashTime)-curAvgHashTime)/hashedInputs,
	)

	// Highest hashing time
	if int64(hashTime) > atomic.LoadInt64(&s.highestHashTime) {
		atomic.StoreInt64(&s.highestHashTime, int64(hashTime))
	}
}

// Fail records one input that couldn't be hashed.
func (s *HashSync) Fail() {
	atomic.AddInt64(&s.failedInputs, 1)
}

func (s *HashSync) GetHashedInputs() int64 {
	return atomic.LoadInt64(&s.hashedInputs)
}

func (s *HashSync) GetFailedInputs() int64 {
	return atomic.LoadInt64(&s.failedInputs)
}

func (s *HashSync) GetHashedBytes() int64 {
	return atomic.LoadInt64(&s.hashedBytes)
}

func (s *HashSync) GetHighestHashTime() int64 {
	return atomic.LoadInt64(&s.highestHashTime)
}

func (s *HashSync) GetAverageHashTime() int64 {
	return atomic.LoadInt64(&s.averageHashTime)
}

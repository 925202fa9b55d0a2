package statistics_test

import (
	"sync"
	"testing"
	"time"

	"github.com/graph-guard/fxhash/pkg/statistics"
	"github.com/stretchr/testify/require"
)

func TestHashSync(t *testing.T) {
	s := statistics.NewHashSync()

	require.Zero(t, s.GetHashedInputs())
	require.Zero(t, s.GetFailedInputs())
	require.Zero(t, s.GetHashedBytes())
	require.Zero(t, s.GetHighestHashTime())
	require.Zero(t, s.GetAverageHashTime())

	s.Update(100, time.Second)
	require.Equal(t, int64(1), s.GetHashedInputs())
	require.Equal(t, int64(100), s.GetHashedBytes())
	require.Equal(t, time.Second, time.Duration(s.GetAverageHashTime()))
	require.Equal(t, time.Second, time.Duration(s.GetHighestHashTime()))

	s.Update(200, 2*time.Second)
	require.Equal(t, int64(2), s.GetHashedInputs())
	require.Equal(t, int64(300), s.GetHashedBytes())
	require.Equal(t,
		int64(1500),
		time.Duration(s.GetAverageHashTime()).Milliseconds(),
	)
	require.Equal(t, 2*time.Second, time.Duration(s.GetHighestHashTime()))

	s.Fail()
	require.Equal(t, int64(1), s.GetFailedInputs())
	require.Equal(t, int64(2), s.GetHashedInputs())
}

func TestHashSyncConcurrent(t *testing.T) {
	s := statistics.NewHashSync()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 64; n++ {
				s.Update(10, time.Millisecond)
			}
			s.Fail()
		}()
	}
	wg.Wait()

	require.Equal(t, int64(16*64), s.GetHashedInputs())
	require.Equal(t, int64(16*64*10), s.GetHashedBytes())
	require.Equal(t, int64(16), s.GetFailedInputs())
	require.Equal(
		t, time.Millisecond, time.Duration(s.GetHighestHashTime()),
	)
}

package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/graph-guard/fxhash/pkg/cli"
	"github.com/graph-guard/fxhash/pkg/fxhash"
	"github.com/graph-guard/fxhash/pkg/statistics"

	"github.com/dustin/go-humanize"
	plog "github.com/phuslu/log"
)

func main() {
	switch c := cli.Parse(os.Stdout, os.Args).(type) {
	case cli.CommandSum:
		os.Exit(sum(c, os.Stdin, os.Stdout))
	case cli.CommandHelp:
	default:
		os.Exit(2)
	}
}

func sum(c cli.CommandSum, in io.Reader, out io.Writer) (exitCode int) {
	level := plog.WarnLevel
	if c.Verbose {
		level = plog.DebugLevel
	}
	log := plog.Logger{
		Level:      level,
		TimeField:  "time",
		TimeFormat: "15:04:05",
		Writer:     &plog.IOWriter{Writer: os.Stderr},
	}

	start := time.Now()
	stats := statistics.NewHashSync()

	if len(c.FilePaths) == 0 {
		sum, n, err := hashReader(in)
		if err != nil {
			log.Error().Err(err).Msg("hashing standard input")
			stats.Fail()
		} else {
			stats.Update(n, time.Since(start))
			fmt.Fprintf(out, "%016x  -\n", sum)
		}
	} else {
		sums := make([]uint64, len(c.FilePaths))
		failed := make([]bool, len(c.FilePaths))
		var wg sync.WaitGroup
		for i := range c.FilePaths {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				hashStart := time.Now()
				sum, n, err := hashFile(c.FilePaths[i])
				if err != nil {
					log.Error().Err(err).
						Str("file", c.FilePaths[i]).
						Msg("hashing file")
					failed[i] = true
					stats.Fail()
					return
				}
				sums[i] = sum
				stats.Update(n, time.Since(hashStart))
			}(i)
		}
		wg.Wait()

		// Report in argument order
		for i := range c.FilePaths {
			if failed[i] {
				continue
			}
			fmt.Fprintf(out, "%016x  %s\n", sums[i], c.FilePaths[i])
		}
	}

	if c.Verbose {
		took := time.Since(start)
		throughput := float64(stats.GetHashedBytes()) / took.Seconds()
		log.Info().
			Int64("inputs", stats.GetHashedInputs()).
			Str("hashed", humanize.IBytes(uint64(stats.GetHashedBytes()))).
			Str("throughput", humanize.IBytes(uint64(throughput))+"/s").
			Str("took", took.String()).
			Msg("done")
	}

	if stats.GetFailedInputs() > 0 {
		return 1
	}
	return 0
}

func hashFile(path string) (sum uint64, size int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = f.Close() }()
	return hashReader(f)
}

// hashReader consumes r in full buffers so that the chunking decisions
// of the hash match a single-call hash of the whole stream.
func hashReader(r io.Reader) (sum uint64, size int, err error) {
	h := fxhash.New()
	// The buffer length must be a multiple of the word length.
	buf := make([]byte, 64*1024)
	for {
		n, err := io.ReadFull(r, buf)
		fxhash.Write(&h, buf[:n])
		size += n
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return h.Sum64(), size, nil
		}
		if err != nil {
			return 0, size, err
		}
	}
}

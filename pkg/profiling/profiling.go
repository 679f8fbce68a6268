// Package profiling writes CPU and heap profiles for the --cpuprofile and --memprofile flags.
package profiling

import (
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
	memProfilingInterval  = 30 * time.Second
)

// DoCPUProfiling starts CPU profiling into filePath.
// The returned func stops it and is never nil, failures are only logged.
func DoCPUProfiling(filePath string, log zerolog.Logger) func() {
	f, err := osCreate(filePath)
	if err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("could not create CPU profile")
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.Error().Err(err).Msg("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		if err := f.Close(); err != nil {
			log.Error().Err(err).Msg("could not close CPU profile")
		}
	}
}

// DoMemProfiling rewrites the heap profile at filePath every memProfilingInterval.
// The returned func stops the loop and writes the final profile.
func DoMemProfiling(filePath string, log zerolog.Logger) func() {
	interval := memProfilingInterval
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				writeHeapProfile(filePath, log)
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
			writeHeapProfile(filePath, log)
		})
	}
}

func writeHeapProfile(filePath string, log zerolog.Logger) {
	f, err := osCreate(filePath)
	if err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("could not create memory profile")
		return
	}
	defer func() {
		_ = f.Close()
	}()
	runtime.GC()
	if err = pprofWriteHeapProfile(f); err != nil {
		log.Error().Err(err).Msg("could not write memory profile")
	}
}

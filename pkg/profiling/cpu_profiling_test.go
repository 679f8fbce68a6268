package profiling

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDoCPUProfiling(t *testing.T) {
	// Not parallel: swaps package vars.
	profile := filepath.Join(t.TempDir(), "cpu.prof")
	stop := DoCPUProfiling(profile, zerolog.Nop())
	assert.NotNil(t, stop)
	stop()
	_, err := os.Stat(profile)
	assert.NoError(t, err)
}

func TestDoCPUProfiling_ErrorOsCreate(t *testing.T) {
	origOsCreate := osCreate
	defer func() {
		osCreate = origOsCreate
	}()
	osCreate = func(name string) (*os.File, error) {
		return nil, errors.New("mock error")
	}
	var buf bytes.Buffer
	stop := DoCPUProfiling("invalid", zerolog.New(&buf))
	assert.NotNil(t, stop, "returns a no-op func on error")
	stop()
	assert.Contains(t, buf.String(), "could not create CPU profile")
}

func TestDoCPUProfiling_ErrorPprofStartCPUProfile(t *testing.T) {
	origStart := pprofStartCPUProfile
	defer func() {
		pprofStartCPUProfile = origStart
	}()
	pprofStartCPUProfile = func(w io.Writer) error {
		return errors.New("mock pprof error")
	}
	var buf bytes.Buffer
	stop := DoCPUProfiling(filepath.Join(t.TempDir(), "cpu_err.prof"), zerolog.New(&buf))
	stop()
	assert.Contains(t, buf.String(), "mock pprof error")
}

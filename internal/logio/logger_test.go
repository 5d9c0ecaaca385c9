package logio

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/wordforth/internal/panicerr"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("nope") }

func TestLogger(t *testing.T) {
	var out strings.Builder
	log := NewLogger(&out)

	log.Printf("INFO", "hello %v", "world")
	log.Leveledf("TRACE")("> %v -- %v", "DUP", []int32{1, 1})
	log.Printf("", "bare\n")
	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode())

	log.ErrorIf(errors.New("stack underflow"))
	assert.Equal(t, 1, log.ExitCode())

	assert.Equal(t, strings.Join([]string{
		"INFO: hello world",
		"TRACE: > DUP -- [1 1]",
		"bare",
		"ERROR: stack underflow",
		"",
	}, "\n"), out.String())

	log = NewLogger(failWriter{})
	log.Printf("INFO", "lost")
	assert.Equal(t, 2, log.ExitCode())
}

func TestLogger_ErrorIf_panic(t *testing.T) {
	var out strings.Builder
	log := NewLogger(&out)
	err := panicerr.Recover("eval", func() error {
		var stack []int32
		_ = stack[3]
		return nil
	})
	log.ErrorIf(fmt.Errorf("line 2: %w", err))
	assert.Equal(t, 1, log.ExitCode())

	lines := strings.SplitN(out.String(), "\n", 2)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ERROR: line 2: eval paniced: runtime error: index out of range")
	assert.True(t, strings.HasPrefix(lines[1], "PANIC: "), "expected panic stack, got %q", lines[1])
	assert.Contains(t, lines[1], "goroutine")
}

func TestLogger_concurrent(t *testing.T) {
	var out strings.Builder
	log := NewLogger(&out)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			log.Printf("INFO", "line %v", i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 8, strings.Count(out.String(), "\n"))
}

package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/wordforth/internal/flushio"
	"github.com/jcorbin/wordforth/internal/logio"
	"github.com/jcorbin/wordforth/internal/store"
)

func Test_runFiles(t *testing.T) {
	lib := writeTestFile(t, "lib.fs", ": double dup + ;\n")
	a := writeTestFile(t, "a.fs", "5 double\n")
	b := writeTestFile(t, "b.fs", ": foo 5 ;\n: bar foo ;\n: foo 6 ;\nbar foo\n")
	c := writeTestFile(t, "c.fs", "1 2\n4 0 /\n")
	missing := filepath.Join(t.TempDir(), "missing.fs")

	for _, jobs := range []int{1, 3} {
		var out, logs strings.Builder
		log := logio.NewLogger(&logs)
		cfg := Config{Jobs: jobs, Prelude: []string{lib}}
		require.NoError(t, runFiles(context.Background(), cfg, log, flushio.NewWriteFlusher(&out), []string{a, b, c, missing}))

		assert.Equal(t, a+": [10]\n"+b+": [5 6]\n", out.String(), "jobs=%v", jobs)
		assert.Contains(t, logs.String(), "ERROR: "+c+":2: division by zero")
		assert.Contains(t, logs.String(), missing)
		assert.Equal(t, 1, log.ExitCode())
	}
}

func Test_runFiles_canceled(t *testing.T) {
	a := writeTestFile(t, "a.fs", "1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, logs strings.Builder
	err := runFiles(ctx, Config{Jobs: 1}, logio.NewLogger(&logs), flushio.NewWriteFlusher(&out), []string{a})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "", out.String())
}

func Test_runStream(t *testing.T) {
	var out, logs strings.Builder
	log := logio.NewLogger(&logs)
	st := store.NewMemory()
	sess, err := newSession(context.Background(), Config{}, log, st)
	require.NoError(t, err)

	in := namedReader{strings.NewReader("3\n4 +\nfoo\n: sq dup\n* ;\nsq\n"), "<stdin>"}
	require.NoError(t, runStream(context.Background(), sess, log, flushio.NewWriteFlusher(&out), in))
	assert.Equal(t, "<1> [49]\n", out.String())
	assert.Equal(t, "ERROR: <stdin>:3: unknown word \"FOO\" in segment 0\n", logs.String())

	saved, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, []int32{49}, saved.Stack)
}

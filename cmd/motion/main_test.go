package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/esimov/motion"
	"github.com/stretchr/testify/assert"
)

const trace = `{"action":0,"time":1000000,"pointers":[{"id":0,"x":10,"y":20,"pressure":1,"size":0.1}]}
{"action":2,"time":2000000,"pointers":[{"id":0,"x":12,"y":22,"pressure":1,"size":0.1}]}
{"action":1,"time":3000000,"pointers":[{"id":0,"x":12,"y":22,"pressure":0,"size":0.1}]}
`

func TestMain_ShouldNormalizeTraceFile(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	in := filepath.Join(dir, "in.jsonl")
	out := filepath.Join(dir, "out.jsonl")
	assert.NoError(os.WriteFile(in, []byte(trace), 0644))

	n, err := normalizeFile(in, out, motion.DefaultProfile())
	assert.NoError(err)
	assert.Equal(3, n)

	data, err := os.ReadFile(out)
	assert.NoError(err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(lines, 3)
	assert.Contains(lines[0], `"action":"Down"`)
	assert.Contains(lines[2], `"action":"Up"`)
}

func TestMain_ShouldFailOnMissingTrace(t *testing.T) {
	_, err := normalizeFile(filepath.Join(t.TempDir(), "missing.jsonl"), "-", motion.DefaultProfile())
	assert.Error(t, err)
}

func TestMain_WalkDirPicksTraceFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jsonl", "b.jsonl", "notes.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(trace), 0644))
	}

	done := make(chan struct{})
	defer close(done)

	paths, errc := walkDir(done, dir, traceExt)

	var found []string
	for p := range paths {
		found = append(found, filepath.Base(p))
	}
	sort.Strings(found)

	assert.NoError(t, <-errc)
	assert.Equal(t, []string{"a.jsonl", "b.jsonl"}, found)
}

package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleTrace = `{"action":0,"time":1000,"meta":0,"pointers":[{"id":0,"x":10,"y":20,"pressure":1}]}
`

func TestUtils_ShouldDownloadTrace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleTrace))
	}))
	defer srv.Close()

	f, err := DownloadFile(srv.URL + "/trace.jsonl")
	if err != nil {
		t.Fatalf("couldn't download test file: %v", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	buf := make([]byte, len(sampleTrace))
	n, err := f.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, sampleTrace, string(buf[:n]))
}

func TestUtils_ShouldRejectBinaryDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0})
	}))
	defer srv.Close()

	_, err := DownloadFile(srv.URL)
	assert.Error(t, err)
}

func TestUtils_ShouldFailOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := DownloadFile(srv.URL)
	assert.Error(t, err)
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert.True(t, IsValidUrl("https://github.com/esimov/motion/"))
	assert.False(t, IsValidUrl("testdata/trace.jsonl"))
	assert.False(t, IsValidUrl("-"))
}

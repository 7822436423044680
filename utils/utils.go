package utils

import (
	"net/http"
	"os"

	jsoniter "github.com/json-iterator/go"
)

// JSON is the codec used for reading and writing event traces.
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

// DetectFileContentType detects the file type by reading MIME type information of the file content.
func DetectFileContentType(fname string) (string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer file.Close()

	// Only the first 512 bytes are used to sniff the content type.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil {
		return "", err
	}

	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(buffer[:n]), nil
}

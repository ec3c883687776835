package product

import (
	"encoding/base64"
	"errors"
	"strings"
)

const dataURIPrefix = "data:image/png;base64,"

// EncodeImage renders stored bytes as an inline data URI.
func EncodeImage(data []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(data)
}

func encodeImages(images []Image) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		out = append(out, EncodeImage(img.Data))
	}
	return out
}

// DecodeImage accepts either a bare base64 payload or a data URI.
func DecodeImage(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		comma := strings.IndexByte(s, ',')
		if comma < 0 || !strings.Contains(s[:comma], ";base64") {
			return nil, errors.New("data uri is not base64 encoded")
		}
		s = s[comma+1:]
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("image is empty")
	}
	return data, nil
}

func decodeImages(payloads []string) ([][]byte, error) {
	if len(payloads) > MaxImages {
		return nil, ErrTooManyImages
	}

	out := make([][]byte, 0, len(payloads))
	for i, p := range payloads {
		data, err := DecodeImage(p)
		if err != nil {
			return nil, &ImageProcessingError{Index: i, Cause: err}
		}
		out = append(out, data)
	}
	return out, nil
}

package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodePhotos parses the stored photo column.
// NULL, empty and JSON null all decode to an empty list.
func DecodePhotos(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []string{}, nil
	}

	var photos []string
	if err := json.Unmarshal([]byte(raw), &photos); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPhoto, err)
	}
	if photos == nil {
		photos = []string{}
	}
	return photos, nil
}

// EncodePhotos serializes photo references for storage.
func EncodePhotos(photos []string) (string, error) {
	if photos == nil {
		photos = []string{}
	}
	data, err := json.Marshal(photos)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// The additional-photos list is stored on car_models.extra_photos as a JSON
// array of root-relative path strings, in display order. DecodePhotoList never
// panics on corrupt payloads; callers treat the error as "no extra photos" and
// keep going.

// EncodePhotoList serializes an ordered photo path list for storage.
func EncodePhotoList(paths []string) datatypes.JSON {
	if len(paths) == 0 {
		return datatypes.JSON("[]")
	}
	raw, err := json.Marshal(paths)
	if err != nil {
		// []string cannot fail to marshal; keep the column well-formed anyway
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

// DecodePhotoList parses a stored photo list payload. An empty payload is an
// empty list; a malformed one returns the error alongside an empty list so the
// caller can log and continue.
func DecodePhotoList(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var paths []string
	if err := json.Unmarshal(raw, &paths); err != nil {
		return []string{}, err
	}
	if paths == nil {
		return []string{}, nil
	}
	return paths, nil
}

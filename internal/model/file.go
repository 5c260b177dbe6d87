package model

import "time"

// StoredFile describes an uploaded file. Size and creation time are derived
// live from the filesystem, they are not stored separately.
type StoredFile struct {
	Filename string    `json:"filename"`
	URL      string    `json:"url"`
	Size     int64     `json:"size"`
	Created  time.Time `json:"created"`
}

package bundle

import "time"

type Bundle struct {
	Username   string
	Path       string
	Size       int64
	ModifiedAt time.Time
}

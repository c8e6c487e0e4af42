package util

import "regexp"

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Audio upload constraints for pronunciation clips.
const (
	MimeAudio       = "audio/"
	MimeOctetStream = "application/octet-stream"
	MaxAudioBytes   = 20 << 20
)

var (
	AllowedAudioExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".webm", ".aac"}

	// DateKeyPattern matches the YYYY-MM-DD date keys used throughout.
	DateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

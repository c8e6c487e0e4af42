package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// AudioInfo describes an uploaded pronunciation clip.
type AudioInfo struct {
	Duration float64 `json:"duration"` // seconds
	Codec    string  `json:"codec"`
	Format   string  `json:"format"`
	Size     int64   `json:"size"`
}

// ProbeAudio reads stream metadata from an audio file via ffprobe.
func ProbeAudio(path string) (*AudioInfo, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("audio file not found: %v", err)
	}

	jsonOutput, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("probe failed: %v", err)
	}

	var result struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			CodecName string `json:"codec_name"`
		} `json:"streams"`
		Format struct {
			Duration string `json:"duration"`
			Size     string `json:"size"`
			Format   string `json:"format_name"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("parse probe output: %v", err)
	}

	codec := ""
	for _, stream := range result.Streams {
		if stream.CodecType == "audio" {
			codec = stream.CodecName
			break
		}
	}
	if codec == "" {
		return nil, fmt.Errorf("no audio stream in %s", filepath.Base(path))
	}

	duration, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		duration = 0
	}

	size, err := strconv.ParseInt(result.Format.Size, 10, 64)
	if err != nil {
		size = fileInfo.Size()
	}

	return &AudioInfo{
		Duration: duration,
		Codec:    codec,
		Format:   result.Format.Format,
		Size:     size,
	}, nil
}

// TranscodeToMP3 normalizes an uploaded clip to mono 128k MP3 so clients get
// one predictable format regardless of what the admin uploaded.
func TranscodeToMP3(srcPath, dstPath string) error {
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("create output dir: %v", err)
	}

	return ffmpeg.Input(srcPath).
		Output(dstPath, ffmpeg.KwArgs{
			"vn":  "",
			"ac":  "1",
			"b:a": "128k",
			"f":   "mp3",
		}).
		OverWriteOutput().
		Run()
}

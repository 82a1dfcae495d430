package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ProbeDuration 用 ffprobe 读取视频时长（秒）
func ProbeDuration(videoPath string) (float64, error) {
	out, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to probe the video")
	}
	return parseProbeDuration(out)
}

func parseProbeDuration(probe string) (float64, error) {
	var info struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(probe), &info); err != nil {
		return 0, errors.Wrap(err, "Failed to parse probe output")
	}
	if info.Format.Duration == "" {
		return 0, errors.New("probe output has no duration")
	}
	d, err := strconv.ParseFloat(info.Format.Duration, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bad duration %q", info.Format.Duration)
	}
	return d, nil
}

// GetVideoThumnail 截取第一帧作为封面
func GetVideoThumnail(videoPath, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", errors.WithMessage(err, "Failed to create folders")
	}
	outputPath := filepath.Join(outputDir, "thumbnail.jpg")
	err := ffmpeg.Input(videoPath).
		Output(outputPath, ffmpeg.KwArgs{
			"ss":      "00:00:00",
			"vframes": "1",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return "", errors.WithMessage(err, "Failed to generate the thumbnail")
	}
	return outputPath, nil
}

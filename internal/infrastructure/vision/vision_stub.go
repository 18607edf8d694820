//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"posture-bot/internal/domain/entity"
)

// GoCVPoseEstimator — заглушка без OpenCV.
type GoCVPoseEstimator struct {
	InputSide int
}

// NewGoCVPoseEstimator создаёт заглушку (без OpenCV).
func NewGoCVPoseEstimator(modelPath string) (*GoCVPoseEstimator, error) {
	_ = modelPath
	return &GoCVPoseEstimator{InputSide: 256}, nil
}

// Close ничего не освобождает в сборке без тега gocv.
func (e *GoCVPoseEstimator) Close() error {
	return nil
}

// Estimate возвращает ошибку, если сборка без тега gocv.
func (e *GoCVPoseEstimator) Estimate(ctx context.Context, imageData []byte) (entity.PoseSample, error) {
	_ = ctx
	_ = imageData
	return nil, errors.New("gocv build tag is not enabled")
}

// GoCVObjectDetector — заглушка без OpenCV.
type GoCVObjectDetector struct {
	InputSide     int
	MinConfidence float64
}

// NewGoCVObjectDetector создаёт заглушку (без OpenCV).
func NewGoCVObjectDetector(modelPath string, classes []string) (*GoCVObjectDetector, error) {
	_ = modelPath
	_ = classes
	return &GoCVObjectDetector{InputSide: 300, MinConfidence: 0.4}, nil
}

// Close ничего не освобождает в сборке без тега gocv.
func (d *GoCVObjectDetector) Close() error {
	return nil
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *GoCVObjectDetector) Detect(ctx context.Context, imageData []byte) ([]entity.DetectedObject, error) {
	_ = ctx
	_ = imageData
	return nil, errors.New("gocv build tag is not enabled")
}

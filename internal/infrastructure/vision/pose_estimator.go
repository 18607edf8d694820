//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"posture-bot/internal/domain/entity"
)

// GoCVPoseEstimator — адаптер DNN-модели позы (17 тепловых карт суставов).
type GoCVPoseEstimator struct {
	net       gocv.Net
	InputSide int // сторона квадратного входа сети

	MinImageSide          int
	MaxSide               int
	MinSharpnessEdgeRatio float64
	MaxOverexposedRatio   float64
	MaxUnderexposedRatio  float64
}

// NewGoCVPoseEstimator загружает модель позы из файла.
func NewGoCVPoseEstimator(modelPath string) (*GoCVPoseEstimator, error) {
	net := gocv.ReadNet(modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("failed to load pose model from %s", modelPath)
	}

	return &GoCVPoseEstimator{
		net:                   net,
		InputSide:             256,
		MinImageSide:          400,
		MaxSide:               1024,
		MinSharpnessEdgeRatio: 0.008,
		MaxOverexposedRatio:   0.35,
		MaxUnderexposedRatio:  0.45,
	}, nil
}

// Close освобождает ресурсы сети.
func (e *GoCVPoseEstimator) Close() error {
	return e.net.Close()
}

// Estimate возвращает скелет человека в нормализованных координатах.
func (e *GoCVPoseEstimator) Estimate(ctx context.Context, imageData []byte) (entity.PoseSample, error) {
	_ = ctx

	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if err := e.checkImageQuality(mat); err != nil {
		return nil, err
	}

	// Приводим изображение к стандартному размеру для стабильной работы сети.
	if mat.Cols() > e.MaxSide || mat.Rows() > e.MaxSide {
		scale := float64(e.MaxSide) / float64(maxInt(mat.Cols(), mat.Rows()))
		newW := int(float64(mat.Cols()) * scale)
		newH := int(float64(mat.Rows()) * scale)
		resized := gocv.NewMat()
		gocv.Resize(mat, &resized, image.Pt(newW, newH), 0, 0, gocv.InterpolationArea)
		mat.Close()
		mat = resized
	}

	blob := gocv.BlobFromImage(mat, 1.0/255.0, image.Pt(e.InputSide, e.InputSide),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	e.net.SetInput(blob, "")
	out := e.net.Forward("")
	defer out.Close()

	sz := out.Size()
	if len(sz) < 4 || sz[1] < entity.KeypointCount {
		return nil, errors.New("unexpected pose model output shape")
	}
	heatH, heatW := sz[2], sz[3]

	sample := make(entity.PoseSample, 0, entity.KeypointCount)
	for i := 0; i < entity.KeypointCount; i++ {
		heatmap, err := out.FromPtr(heatH, heatW, gocv.MatTypeCV32F, 0, i)
		if err != nil {
			return nil, fmt.Errorf("read heatmap %d: %w", i, err)
		}

		_, maxVal, _, maxLoc := gocv.MinMaxLoc(heatmap)
		heatmap.Close()

		sample = append(sample, entity.Keypoint{
			X:          float64(maxLoc.X) / float64(heatW),
			Y:          float64(maxLoc.Y) / float64(heatH),
			Confidence: float64(maxVal),
		})
	}

	return sample, nil
}

// checkImageQuality отсекает кадры, на которых модель заведомо не сработает.
func (e *GoCVPoseEstimator) checkImageQuality(mat gocv.Mat) error {
	if mat.Empty() {
		return errors.New("quality gate failed: empty image")
	}

	if mat.Cols() < e.MinImageSide || mat.Rows() < e.MinImageSide {
		return fmt.Errorf("quality gate failed: image is too small (%dx%d)", mat.Cols(), mat.Rows())
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, 80, 160)
	edgeRatio := ratioOfMask(edges)
	if edgeRatio < e.MinSharpnessEdgeRatio {
		return fmt.Errorf("quality gate failed: image is blurry (edge_ratio=%.4f)", edgeRatio)
	}

	bright := gocv.NewMat()
	defer bright.Close()
	gocv.Threshold(gray, &bright, 250, 255, gocv.ThresholdBinary)
	if r := ratioOfMask(bright); r > e.MaxOverexposedRatio {
		return fmt.Errorf("quality gate failed: overexposed image (ratio=%.4f)", r)
	}

	dark := gocv.NewMat()
	defer dark.Close()
	gocv.Threshold(gray, &dark, 20, 255, gocv.ThresholdBinaryInv)
	if r := ratioOfMask(dark); r > e.MaxUnderexposedRatio {
		return fmt.Errorf("quality gate failed: underexposed image (ratio=%.4f)", r)
	}

	return nil
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

func ratioOfMask(mask gocv.Mat) float64 {
	total := mask.Cols() * mask.Rows()
	if total <= 0 {
		return 0
	}
	return float64(gocv.CountNonZero(mask)) / float64(total)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

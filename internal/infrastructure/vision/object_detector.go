//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"posture-bot/internal/domain/entity"
)

// defaultObjectClasses — метки SSD-модели по умолчанию (порядок важен).
var defaultObjectClasses = []string{
	"background", "person", "box", "crate", "bag", "backpack", "suitcase",
	"bucket", "bottle", "laptop", "chair", "toolbox", "pipe", "sack",
}

// GoCVObjectDetector — адаптер SSD-детектора внешних объектов.
type GoCVObjectDetector struct {
	net           gocv.Net
	classes       []string
	InputSide     int
	MinConfidence float64
}

// NewGoCVObjectDetector загружает модель детектора. Пустой classes
// заменяется списком меток по умолчанию.
func NewGoCVObjectDetector(modelPath string, classes []string) (*GoCVObjectDetector, error) {
	net := gocv.ReadNet(modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("failed to load object model from %s", modelPath)
	}

	if len(classes) == 0 {
		classes = defaultObjectClasses
	}

	return &GoCVObjectDetector{
		net:           net,
		classes:       classes,
		InputSide:     300,
		MinConfidence: 0.4,
	}, nil
}

// Close освобождает ресурсы сети.
func (d *GoCVObjectDetector) Close() error {
	return d.net.Close()
}

// Detect возвращает найденные объекты с рамками в нормализованных
// координатах кадра.
func (d *GoCVObjectDetector) Detect(ctx context.Context, imageData []byte) ([]entity.DetectedObject, error) {
	_ = ctx

	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	blob := gocv.BlobFromImage(mat, 1.0/127.5, image.Pt(d.InputSide, d.InputSide),
		gocv.NewScalar(127.5, 127.5, 127.5, 0), true, false)
	defer blob.Close()

	d.net.SetInput(blob, "")
	prob := d.net.Forward("")
	defer prob.Close()

	// Выход SSD: [1,1,N,7], строка — [_, class, conf, left, top, right, bottom].
	detections := gocv.GetBlobChannel(prob, 0, 0)
	defer detections.Close()

	objects := make([]entity.DetectedObject, 0, detections.Rows())
	for r := 0; r < detections.Rows(); r++ {
		confidence := float64(detections.GetFloatAt(r, 2))
		if confidence < d.MinConfidence {
			continue
		}

		classID := int(detections.GetFloatAt(r, 1))
		class := "unknown"
		if classID >= 0 && classID < len(d.classes) {
			class = d.classes[classID]
		}

		left := float64(detections.GetFloatAt(r, 3))
		top := float64(detections.GetFloatAt(r, 4))
		right := float64(detections.GetFloatAt(r, 5))
		bottom := float64(detections.GetFloatAt(r, 6))

		objects = append(objects, entity.DetectedObject{
			Class:      class,
			Confidence: confidence,
			Box: entity.BBox{
				X:      left,
				Y:      top,
				Width:  right - left,
				Height: bottom - top,
			},
		})
	}

	return objects, nil
}

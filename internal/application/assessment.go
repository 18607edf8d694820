package app

import (
	"context"
	"errors"

	"posture-bot/internal/domain/entity"
	"posture-bot/internal/domain/ergo"
	"posture-bot/internal/domain/port"
)

// AssessmentService считает эргономическую оценку позы: проверка скелета,
// углы, баллы выбранным методом, оценка груза и корректировка итога.
// Сервис не хранит состояния между кадрами — каждый вызов независим.
type AssessmentService struct {
	estimator port.PoseEstimator
	detector  port.ObjectDetector
	catalog   ergo.WeightCatalog
}

// AssessmentInput — один кадр на оценку.
type AssessmentInput struct {
	Sample         entity.PoseSample
	Objects        []entity.DetectedObject // найденные детектором объекты, опционально
	ManualWeightKg *float64                // ручной ввод веса, опционально
	Method         entity.Method
}

// AssessmentOutput содержит оценку позы и всё, что к ней прилагается.
type AssessmentOutput struct {
	Assessment  *entity.Assessment
	Load        entity.LoadEstimate
	Interaction *entity.ObjectInteraction // nil, если объекты не передавались
	Adjusted    *entity.AdjustedScore     // nil, если груза нет
}

// NewAssessmentService создаёт сервис оценки. Порты моделей могут быть nil —
// тогда доступна только оценка готовых скелетов.
func NewAssessmentService(estimator port.PoseEstimator, detector port.ObjectDetector, catalog ergo.WeightCatalog) *AssessmentService {
	return &AssessmentService{
		estimator: estimator,
		detector:  detector,
		catalog:   catalog,
	}
}

// Assess оценивает готовый скелет. Чистая функция от входа: без часов,
// без случайности, без внешних вызовов.
func (s *AssessmentService) Assess(input AssessmentInput) *AssessmentOutput {
	out := &AssessmentOutput{}

	out.Load = ergo.EstimateLoad(input.Sample)

	if len(input.Objects) > 0 && s.catalog != nil {
		interaction := ergo.AnalyzeObjects(input.Sample, input.Objects, s.catalog)
		out.Interaction = &interaction
	}

	effectiveKg, source := ergo.EffectiveWeight(input.ManualWeightKg, out.Interaction, out.Load)

	if input.Method == entity.MethodRULA {
		out.Assessment = ergo.AssessRULA(input.Sample)
	} else {
		out.Assessment = ergo.AssessREBA(input.Sample, effectiveKg)
	}

	if out.Assessment.Indeterminate {
		return out
	}

	if effectiveKg > 0 {
		out.Adjusted = ergo.Adjust(out.Assessment, effectiveKg, source)
	}

	return out
}

// AssessImage прогоняет изображение через модели позы и объектов, затем
// оценивает полученный скелет.
func (s *AssessmentService) AssessImage(ctx context.Context, imageData []byte, method entity.Method, manualKg *float64) (*AssessmentOutput, error) {
	if s.estimator == nil {
		return nil, errors.New("pose estimator is not configured")
	}

	sample, err := s.estimator.Estimate(ctx, imageData)
	if err != nil {
		return nil, err
	}

	var objects []entity.DetectedObject
	if s.detector != nil {
		// Детектор объектов — вспомогательный: его отказ не должен
		// срывать оценку позы.
		objects, _ = s.detector.Detect(ctx, imageData)
	}

	return s.Assess(AssessmentInput{
		Sample:         sample,
		Objects:        objects,
		ManualWeightKg: manualKg,
		Method:         method,
	}), nil
}

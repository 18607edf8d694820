package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"posture-bot/internal/domain/entity"
)

// testCatalog — табличный справочник весов для тестов.
type testCatalog map[string]float64

func (c testCatalog) WeightKg(class string) float64 {
	if kg, ok := c[class]; ok {
		return kg
	}
	return 2.0
}

// standingPose — стоящий прямо человек с локтями под 90°.
func standingPose() entity.PoseSample {
	coords := [entity.KeypointCount][2]float64{
		{0.50, 0.20},
		{0.48, 0.18}, {0.52, 0.18},
		{0.46, 0.19}, {0.54, 0.19},
		{0.42, 0.30}, {0.58, 0.30},
		{0.40, 0.42}, {0.60, 0.42},
		{0.30, 0.40}, {0.70, 0.40},
		{0.44, 0.52}, {0.56, 0.52},
		{0.44, 0.70}, {0.56, 0.70},
		{0.44, 0.88}, {0.56, 0.88},
	}

	sample := make(entity.PoseSample, entity.KeypointCount)
	for i, c := range coords {
		sample[i] = entity.Keypoint{X: c[0], Y: c[1], Confidence: 0.9}
	}
	return sample
}

func TestAssessmentService_NeutralPose(t *testing.T) {
	svc := NewAssessmentService(nil, nil, testCatalog{})

	out := svc.Assess(AssessmentInput{Sample: standingPose(), Method: entity.MethodREBA})

	require.False(t, out.Assessment.Indeterminate)
	require.Equal(t, 1, out.Assessment.Final)
	require.Equal(t, entity.RiskNegligible, out.Assessment.Risk)
	require.Nil(t, out.Interaction)
	require.Nil(t, out.Adjusted)
}

func TestAssessmentService_ShortSampleIndeterminate(t *testing.T) {
	svc := NewAssessmentService(nil, nil, testCatalog{})

	out := svc.Assess(AssessmentInput{Sample: standingPose()[:10], Method: entity.MethodRULA})

	require.True(t, out.Assessment.Indeterminate)
	require.Nil(t, out.Adjusted)
}

func TestAssessmentService_ManualWeightAdjustsScore(t *testing.T) {
	svc := NewAssessmentService(nil, nil, testCatalog{})

	manual := 25.0
	out := svc.Assess(AssessmentInput{
		Sample:         standingPose(),
		ManualWeightKg: &manual,
		Method:         entity.MethodRULA,
	})

	require.NotNil(t, out.Adjusted)
	require.Equal(t, entity.WeightManual, out.Adjusted.Source)
	require.Equal(t, 3.0, out.Adjusted.WeightMultiplier)
	require.Equal(t, 25.0, out.Adjusted.EffectiveWeightKg)
}

func TestAssessmentService_HeldObjectFeedsAdjustment(t *testing.T) {
	svc := NewAssessmentService(nil, nil, testCatalog{"box": 8})

	out := svc.Assess(AssessmentInput{
		Sample: standingPose(),
		Objects: []entity.DetectedObject{
			{Class: "box", Confidence: 0.8, Box: entity.BBox{X: 0.65, Y: 0.38, Width: 0.10, Height: 0.04}},
		},
		Method: entity.MethodREBA,
	})

	require.NotNil(t, out.Interaction)
	require.True(t, out.Interaction.IsHoldingObject)
	require.NotNil(t, out.Adjusted)
	require.Equal(t, entity.WeightObjectDetected, out.Adjusted.Source)
	require.Equal(t, 8.0, out.Adjusted.EffectiveWeightKg)
	// Вес груза входит и в балл группы A метода REBA.
	require.Greater(t, out.Assessment.ScoreA, 1)
}

func TestAssessmentService_Deterministic(t *testing.T) {
	svc := NewAssessmentService(nil, nil, testCatalog{"box": 8})

	input := AssessmentInput{
		Sample: standingPose(),
		Objects: []entity.DetectedObject{
			{Class: "box", Confidence: 0.8, Box: entity.BBox{X: 0.65, Y: 0.38, Width: 0.10, Height: 0.04}},
		},
		Method: entity.MethodREBA,
	}

	require.Equal(t, svc.Assess(input), svc.Assess(input))
}

func TestAssessmentService_AssessImageWithoutEstimator(t *testing.T) {
	svc := NewAssessmentService(nil, nil, testCatalog{})

	_, err := svc.AssessImage(context.Background(), []byte("img"), entity.MethodREBA, nil)
	require.Error(t, err)
}

func TestAssessBatch_PreservesOrder(t *testing.T) {
	svc := NewAssessmentService(nil, nil, testCatalog{})

	samples := []entity.PoseSample{
		standingPose(),
		standingPose()[:10], // непригодный кадр
		standingPose(),
	}

	results, err := svc.AssessBatch(context.Background(), samples, entity.MethodREBA)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.False(t, results[0].Assessment.Indeterminate)
	require.True(t, results[1].Assessment.Indeterminate)
	require.False(t, results[2].Assessment.Indeterminate)
	require.Equal(t, results[0], results[2])
}

func TestAssessBatch_CancelledContext(t *testing.T) {
	svc := NewAssessmentService(nil, nil, testCatalog{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	samples := make([]entity.PoseSample, 64)
	for i := range samples {
		samples[i] = standingPose()
	}

	_, err := svc.AssessBatch(ctx, samples, entity.MethodRULA)
	require.Error(t, err)
}

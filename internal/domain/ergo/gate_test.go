package ergo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"posture-bot/internal/domain/entity"
)

func TestValidate_RejectsShortSample(t *testing.T) {
	_, ok := Validate(neutralPose()[:10], entity.MethodRULA)
	require.False(t, ok)

	_, ok = Validate(entity.PoseSample{}, entity.MethodREBA)
	require.False(t, ok)
}

func TestValidate_AcceptsNeutralPose(t *testing.T) {
	for _, method := range []entity.Method{entity.MethodRULA, entity.MethodREBA} {
		_, ok := Validate(neutralPose(), method)
		require.True(t, ok, "method %s", method)
	}
}

func TestValidate_RejectsLowConfidenceRequiredPoint(t *testing.T) {
	p := neutralPose()
	nose := p[entity.KeypointNose]
	nose.Confidence = 0.1
	p = withPoint(p, entity.KeypointNose, nose)

	_, ok := Validate(p, entity.MethodRULA)
	require.False(t, ok)
}

func TestValidate_RejectsSingleHip(t *testing.T) {
	p := neutralPose()
	hip := p[entity.KeypointLeftHip]
	hip.Confidence = 0.2
	p = withPoint(p, entity.KeypointLeftHip, hip)

	// Середина таза требует обоих бёдер, даже если выбрана правая сторона.
	_, ok := Validate(p, entity.MethodRULA)
	require.False(t, ok)
}

func TestValidate_LegsRequiredOnlyForREBA(t *testing.T) {
	p := neutralPose()
	ankle := p[entity.KeypointRightAnkle]
	ankle.Confidence = 0.1
	p = withPoint(p, entity.KeypointRightAnkle, ankle)

	_, ok := Validate(p, entity.MethodRULA)
	require.True(t, ok)

	_, ok = Validate(p, entity.MethodREBA)
	require.False(t, ok)
}

func TestSelectSide_PrefersHigherConfidence(t *testing.T) {
	p := neutralPose()
	for _, idx := range []int{entity.KeypointLeftShoulder, entity.KeypointLeftElbow, entity.KeypointLeftWrist} {
		k := p[idx]
		k.Confidence = 0.99
		p = withPoint(p, idx, k)
	}

	require.Equal(t, entity.SideLeft, SelectSide(p))
}

func TestSelectSide_TieFavorsRight(t *testing.T) {
	require.Equal(t, entity.SideRight, SelectSide(neutralPose()))
}

func TestIndeterminate_IgnoresRemainingFields(t *testing.T) {
	// Любой короткий вход даёт "нет данных" независимо от содержимого.
	junk := entity.PoseSample{
		{X: 99, Y: -5, Confidence: 42},
		{X: 0.1, Y: 0.1, Confidence: 1},
	}

	require.True(t, AssessRULA(junk).Indeterminate)
	require.True(t, AssessREBA(junk, 100).Indeterminate)
}

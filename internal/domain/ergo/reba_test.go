package ergo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"posture-bot/internal/domain/entity"
)

func TestAssessREBA_NeutralPose(t *testing.T) {
	a := AssessREBA(neutralPose(), 0)

	require.False(t, a.Indeterminate)
	require.Equal(t, entity.ComponentScores{
		Trunk: 1, Neck: 1, Legs: 1, UpperArm: 1, LowerArm: 1, Wrist: 1,
	}, a.Components)
	require.Equal(t, 1, a.ScoreA)
	require.Equal(t, 1, a.ScoreB)
	require.Equal(t, 1, a.Final)
	require.Equal(t, entity.RiskNegligible, a.Risk)
}

func TestAssessREBA_RaisedUpperArm(t *testing.T) {
	p := withPoint(neutralPose(), entity.KeypointRightElbow,
		entity.Keypoint{X: 0.74, Y: 0.286, Confidence: 0.9})

	a := AssessREBA(p, 0)
	neutral := AssessREBA(neutralPose(), 0)

	require.False(t, a.Indeterminate)
	require.GreaterOrEqual(t, a.Components.UpperArm, 4)
	require.Greater(t, a.Final, neutral.Final)
}

func TestAssessREBA_LoadTermRaisesScoreA(t *testing.T) {
	p := neutralPose()

	light := AssessREBA(p, 0)
	medium := AssessREBA(p, 8)
	heavy := AssessREBA(p, 25)

	require.Equal(t, light.ScoreA+1, medium.ScoreA)
	require.Equal(t, light.ScoreA+3, heavy.ScoreA)
	require.GreaterOrEqual(t, heavy.Final, light.Final)
}

func TestAssessREBA_UnevenLegsModifier(t *testing.T) {
	// Одна лодыжка заметно выше другой: шаг или опора на одну ногу.
	p := withPoint(neutralPose(), entity.KeypointLeftAnkle,
		entity.Keypoint{X: 0.44, Y: 0.80, Confidence: 0.9})

	a := AssessREBA(p, 0)
	require.Equal(t, 2, a.Components.Legs)
}

func TestAssessREBA_TrunkModifiers(t *testing.T) {
	// Плечи сжаты по ширине относительно таза: корпус развёрнут.
	p := withPoint(neutralPose(), entity.KeypointLeftShoulder,
		entity.Keypoint{X: 0.47, Y: 0.30, Confidence: 0.9})
	p = withPoint(p, entity.KeypointRightShoulder,
		entity.Keypoint{X: 0.53, Y: 0.30, Confidence: 0.9})

	a := AssessREBA(p, 0)
	require.GreaterOrEqual(t, a.Components.Trunk, 2)
}

func TestAssessREBA_NeckOffsetModifier(t *testing.T) {
	p := withPoint(neutralPose(), entity.KeypointNose,
		entity.Keypoint{X: 0.58, Y: 0.21, Confidence: 0.9})

	a := AssessREBA(p, 0)
	require.GreaterOrEqual(t, a.Components.Neck, 2)
}

func TestAssessREBA_Deterministic(t *testing.T) {
	p := neutralPose()
	require.Equal(t, AssessREBA(p, 12), AssessREBA(p, 12))
}

func TestAssessREBA_MirrorSymmetry(t *testing.T) {
	p := withPoint(neutralPose(), entity.KeypointLeftElbow,
		entity.Keypoint{X: 0.26, Y: 0.286, Confidence: 0.95})
	for _, idx := range []int{entity.KeypointLeftShoulder, entity.KeypointLeftWrist} {
		k := p[idx]
		k.Confidence = 0.95
		p = withPoint(p, idx, k)
	}

	a := AssessREBA(p, 10)
	m := AssessREBA(mirrored(p), 10)

	require.False(t, a.Indeterminate)
	require.Equal(t, a.Final, m.Final)
	require.Equal(t, a.Risk, m.Risk)
}

func TestREBAScorers_MonotonicInAngle(t *testing.T) {
	scorers := map[string]func(float64) int{
		"trunk":     rebaTrunkScore,
		"neck":      rebaNeckScore,
		"upper_arm": rebaUpperArmScore,
		"wrist":     rebaWristScore,
	}

	for name, score := range scorers {
		prev := 0
		for angle := 0.0; angle <= 180; angle++ {
			s := score(angle)
			require.GreaterOrEqual(t, s, prev, "%s at %.0f", name, angle)
			prev = s
		}
	}
}

func TestREBALoadScore_Tiers(t *testing.T) {
	require.Equal(t, 0, rebaLoadScore(0))
	require.Equal(t, 0, rebaLoadScore(4.9))
	require.Equal(t, 1, rebaLoadScore(5))
	require.Equal(t, 1, rebaLoadScore(10))
	require.Equal(t, 2, rebaLoadScore(20))
	require.Equal(t, 3, rebaLoadScore(20.1))
}

func TestREBAComponents_WithinDocumentedRanges(t *testing.T) {
	for _, ex := range []float64{0.55, 0.70, 0.85} {
		for _, ky := range []float64{0.60, 0.70} {
			for _, kg := range []float64{0, 8, 30} {
				p := withPoint(neutralPose(), entity.KeypointRightElbow,
					entity.Keypoint{X: ex, Y: 0.30, Confidence: 0.9})
				p = withPoint(p, entity.KeypointRightKnee,
					entity.Keypoint{X: 0.60, Y: ky, Confidence: 0.9})

				a := AssessREBA(p, kg)
				require.False(t, a.Indeterminate)

				c := a.Components
				require.GreaterOrEqual(t, c.Trunk, 1)
				require.LessOrEqual(t, c.Trunk, 5)
				require.GreaterOrEqual(t, c.Neck, 1)
				require.LessOrEqual(t, c.Neck, 4)
				require.GreaterOrEqual(t, c.Legs, 1)
				require.LessOrEqual(t, c.Legs, 4)
				require.GreaterOrEqual(t, c.UpperArm, 1)
				require.LessOrEqual(t, c.UpperArm, 6)
				require.GreaterOrEqual(t, c.LowerArm, 1)
				require.LessOrEqual(t, c.LowerArm, 3)
				require.GreaterOrEqual(t, c.Wrist, 1)
				require.LessOrEqual(t, c.Wrist, 4)

				require.GreaterOrEqual(t, a.ScoreA, 1)
				require.LessOrEqual(t, a.ScoreA, 12)
				require.GreaterOrEqual(t, a.ScoreB, 1)
				require.LessOrEqual(t, a.ScoreB, 12)
				require.GreaterOrEqual(t, a.Final, 1)
				require.LessOrEqual(t, a.Final, 7)
			}
		}
	}
}

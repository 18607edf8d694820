package container

import (
	app "posture-bot/internal/application"
	"posture-bot/internal/domain/ergo"
	"posture-bot/internal/domain/port"
)

type Container struct {
	UserService       *app.UserService
	AssessmentService *app.AssessmentService
}

func New(userRepo port.UserRepository, estimator port.PoseEstimator, detector port.ObjectDetector, weights ergo.WeightCatalog) *Container {
	userService := app.NewUserService(userRepo)
	assessmentService := app.NewAssessmentService(estimator, detector, weights)

	return &Container{
		UserService:       userService,
		AssessmentService: assessmentService,
	}
}

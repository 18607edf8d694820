package main

import (
	"log"

	telegram "posture-bot/internal/api"
	"posture-bot/internal/container"
	"posture-bot/internal/domain/entity"
	"posture-bot/internal/domain/port"
	"posture-bot/internal/infrastructure/catalog"
	"posture-bot/internal/infrastructure/storage"
	"posture-bot/internal/infrastructure/vision"

	"posture-bot/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	// Стартовый метод оценки для новых пользователей
	defaultMethod := entity.MethodREBA
	if cfg.DefaultMethod == string(entity.MethodRULA) {
		defaultMethod = entity.MethodRULA
	}

	// Создаём хранилище пользователей
	userRepo := storage.NewMemoryUserRepository(defaultMethod)

	// Справочник весов объектов: встроенный либо из YAML-файла
	weights := catalog.NewObjectWeights()
	if cfg.ObjectWeightsPath != "" {
		weights, err = catalog.LoadObjectWeights(cfg.ObjectWeightsPath)
		if err != nil {
			log.Fatalf("Failed to load object weights: %v", err)
		}
	}

	// Модели позы и объектов опциональны: без них бот принимает только JSON
	var estimator port.PoseEstimator
	if cfg.PoseModelPath != "" {
		e, err := vision.NewGoCVPoseEstimator(cfg.PoseModelPath)
		if err != nil {
			log.Fatalf("Failed to load pose model: %v", err)
		}
		defer e.Close()
		estimator = e
	}

	var detector port.ObjectDetector
	if cfg.ObjectModelPath != "" {
		d, err := vision.NewGoCVObjectDetector(cfg.ObjectModelPath, nil)
		if err != nil {
			log.Fatalf("Failed to load object model: %v", err)
		}
		defer d.Close()
		detector = d
	}

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, estimator, detector, weights)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken     string
	DefaultMethod     string // rula | reba
	ObjectWeightsPath string // YAML-справочник весов объектов, опционально
	PoseModelPath     string // файл DNN-модели позы, опционально
	ObjectModelPath   string // файл DNN-модели детектора объектов, опционально
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		DefaultMethod:     os.Getenv("DEFAULT_METHOD"),
		ObjectWeightsPath: os.Getenv("OBJECT_WEIGHTS_PATH"),
		PoseModelPath:     os.Getenv("POSE_MODEL_PATH"),
		ObjectModelPath:   os.Getenv("OBJECT_MODEL_PATH"),
	}

	if cfg.DefaultMethod == "" {
		cfg.DefaultMethod = "reba"
	}

	return cfg, nil
}

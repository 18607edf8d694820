package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"posture-bot/internal/domain/ergo"
)

// defaultFallbackKg — вес незнакомого класса.
const defaultFallbackKg = 2.0

// defaultWeights — встроенный справочник типовых весов, в килограммах.
var defaultWeights = map[string]float64{
	"bottle":   1.0,
	"laptop":   2.5,
	"bag":      3.0,
	"backpack": 5.0,
	"bucket":   6.0,
	"chair":    7.0,
	"box":      8.0,
	"toolbox":  9.0,
	"pipe":     10.0,
	"suitcase": 12.0,
	"crate":    15.0,
	"sack":     20.0,
}

// ObjectWeights — справочник весов классов объектов. Неизвестный класс
// получает фиксированный запасной вес.
type ObjectWeights struct {
	weights  map[string]float64
	fallback float64
}

// weightsFile — формат YAML-файла со справочником.
type weightsFile struct {
	Weights    map[string]float64 `yaml:"weights"`
	FallbackKg float64            `yaml:"fallback_kg"`
}

// NewObjectWeights создаёт справочник со встроенными весами.
func NewObjectWeights() *ObjectWeights {
	return &ObjectWeights{
		weights:  defaultWeights,
		fallback: defaultFallbackKg,
	}
}

// LoadObjectWeights читает справочник из YAML-файла. Записи файла
// накладываются поверх встроенных.
func LoadObjectWeights(path string) (*ObjectWeights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights file: %w", err)
	}

	var file weightsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse weights file: %w", err)
	}

	merged := make(map[string]float64, len(defaultWeights)+len(file.Weights))
	for class, kg := range defaultWeights {
		merged[class] = kg
	}
	for class, kg := range file.Weights {
		merged[strings.ToLower(class)] = kg
	}

	fallback := defaultFallbackKg
	if file.FallbackKg > 0 {
		fallback = file.FallbackKg
	}

	return &ObjectWeights{weights: merged, fallback: fallback}, nil
}

// WeightKg возвращает справочный вес класса объекта.
func (w *ObjectWeights) WeightKg(class string) float64 {
	if kg, ok := w.weights[strings.ToLower(class)]; ok {
		return kg
	}
	return w.fallback
}

// Проверка реализации интерфейса
var _ ergo.WeightCatalog = (*ObjectWeights)(nil)

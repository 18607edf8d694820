package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "posture-bot/internal/application"
	"posture-bot/internal/container"
	"posture-bot/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот для оценки эргономики рабочей позы.

🧍 Отправьте мне фото работника или JSON-файл с ключевыми точками скелета,
и я посчитаю риск по методике RULA или REBA.

📋 Команды:
/assess — начать оценку
/method — переключить методику (RULA/REBA)
/weight — задать вес груза вручную, например: /weight 12.5
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото работника или JSON с 17 ключевыми точками
2️⃣ Бот посчитает углы суставов и баллы по выбранной методике
3️⃣ Вы получите итоговый балл [1,7], уровень риска и поправку на груз

💡 Формат JSON:
{"keypoints": [{"x":0.5,"y":0.2,"confidence":0.9}, ...],
 "objects": [{"class":"box","confidence":0.8,"bbox":[0.4,0.5,0.1,0.1]}],
 "weight_kg": 12.5}
Можно прислать серию кадров в поле "samples".

📋 Команды:
/assess — начать оценку
/method — переключить методику
/weight <кг> — вес груза вручную (отрицательный сбрасывает)
/cancel — отменить операцию`

	msgAwaitingPose    = "🧍 Отправьте фото работника или JSON-файл с точками скелета."
	msgCancelled       = "❌ Операция отменена. Отправьте /assess для новой оценки."
	msgSendPose        = "🧍 Пожалуйста, отправьте фото или JSON-файл с точками скелета."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю кадр..."
	msgIndeterminate   = "🚫 Недостаточно данных: ключевые точки не распознаны уверенно. Оценка не выполнена."
	msgProcessingError = "⚠️ Не удалось обработать данные. Проверьте формат и попробуйте ещё раз."
	msgBadWeight       = "⚠️ Не удалось разобрать вес. Пример: /weight 12.5"
)

// riskLabels — русские подписи уровней риска.
var riskLabels = map[entity.RiskLevel]string{
	entity.RiskNegligible: "незначительный",
	entity.RiskLow:        "низкий",
	entity.RiskMedium:     "средний",
	entity.RiskHigh:       "высокий",
	entity.RiskCritical:   "критический",
}

// Формат JSON-документа, который пользователь присылает боту.
type wireKeypoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

type wireObject struct {
	Class      string     `json:"class"`
	Confidence float64    `json:"confidence"`
	BBox       [4]float64 `json:"bbox"` // x, y, ширина, высота
}

type poseDocument struct {
	Keypoints []wireKeypoint   `json:"keypoints"`
	Samples   [][]wireKeypoint `json:"samples"` // серия кадров, опционально
	Objects   []wireObject     `json:"objects"`
	WeightKg  *float64         `json:"weight_kg"`
}

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	services *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		services: services,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.services.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// JSON-файл с точками скелета
	if msg.Document != nil {
		b.handleDocument(ctx, msg, user)
		return
	}

	// Фото — через модель позы
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, user)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPose)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	switch msg.Command() {
	case "start":
		b.services.UserService.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "assess":
		b.services.UserService.BeginAssessment(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgAwaitingPose)

	case "method":
		updated, err := b.services.UserService.ToggleMethod(ctx, user.ID, user.ChatID)
		if err != nil {
			log.Printf("Error toggling method: %v", err)
			return
		}
		b.sendMessage(msg.Chat.ID, fmt.Sprintf("🔁 Методика оценки: %s", strings.ToUpper(string(updated.Method))))

	case "weight":
		arg := strings.TrimSpace(msg.CommandArguments())
		kg, err := strconv.ParseFloat(strings.ReplaceAll(arg, ",", "."), 64)
		if err != nil {
			b.sendMessage(msg.Chat.ID, msgBadWeight)
			return
		}
		updated, err := b.services.UserService.SetManualWeight(ctx, user.ID, user.ChatID, kg)
		if err != nil {
			log.Printf("Error setting weight: %v", err)
			return
		}
		if updated.ManualWeightKg == nil {
			b.sendMessage(msg.Chat.ID, "⚖️ Ручной вес сброшен.")
		} else {
			b.sendMessage(msg.Chat.ID, fmt.Sprintf("⚖️ Вес груза: %.1f кг", *updated.ManualWeightKg))
		}

	case "cancel":
		b.services.UserService.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handleDocument обрабатывает JSON-файл с точками скелета
func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	b.services.UserService.SetState(ctx, user.ID, user.ChatID, entity.StateProcessing)
	b.sendMessage(msg.Chat.ID, msgProcessing)

	data, err := b.downloadFile(msg.Document.FileID)
	if err != nil {
		log.Printf("Error downloading document: %v", err)
		b.finish(ctx, msg.Chat.ID, user, msgProcessingError)
		return
	}

	var doc poseDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("Error parsing document: %v", err)
		b.finish(ctx, msg.Chat.ID, user, msgProcessingError)
		return
	}

	manual := user.ManualWeightKg
	if doc.WeightKg != nil {
		manual = doc.WeightKg
	}

	// Серия кадров — пакетная оценка со сводкой.
	if len(doc.Samples) > 0 {
		samples := make([]entity.PoseSample, 0, len(doc.Samples))
		for _, frame := range doc.Samples {
			samples = append(samples, toSample(frame))
		}

		results, err := b.services.AssessmentService.AssessBatch(ctx, samples, user.Method)
		if err != nil {
			log.Printf("Error assessing batch: %v", err)
			b.finish(ctx, msg.Chat.ID, user, msgProcessingError)
			return
		}

		b.finish(ctx, msg.Chat.ID, user, formatBatchReport(results))
		return
	}

	out := b.services.AssessmentService.Assess(app.AssessmentInput{
		Sample:         toSample(doc.Keypoints),
		Objects:        toObjects(doc.Objects),
		ManualWeightKg: manual,
		Method:         user.Method,
	})

	b.finish(ctx, msg.Chat.ID, user, formatReport(out))
}

// handlePhoto обрабатывает входящее фото через модель позы
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	b.services.UserService.SetState(ctx, user.ID, user.ChatID, entity.StateProcessing)
	b.sendMessage(msg.Chat.ID, msgProcessing)

	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.finish(ctx, msg.Chat.ID, user, msgProcessingError)
		return
	}

	out, err := b.services.AssessmentService.AssessImage(ctx, imageData, user.Method, user.ManualWeightKg)
	if err != nil {
		log.Printf("Error assessing image: %v", err)
		b.finish(ctx, msg.Chat.ID, user, msgProcessingError)
		return
	}

	b.finish(ctx, msg.Chat.ID, user, formatReport(out))
}

// finish отправляет ответ и возвращает пользователя в главное меню
func (b *Bot) finish(ctx context.Context, chatID int64, user *entity.User, text string) {
	b.sendMessage(chatID, text)
	b.services.UserService.Cancel(ctx, user.ID, user.ChatID)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// toSample переводит проводной формат в доменный скелет
func toSample(points []wireKeypoint) entity.PoseSample {
	sample := make(entity.PoseSample, 0, len(points))
	for _, p := range points {
		sample = append(sample, entity.Keypoint{X: p.X, Y: p.Y, Confidence: p.Confidence})
	}
	return sample
}

// toObjects переводит проводной формат в доменные объекты
func toObjects(objects []wireObject) []entity.DetectedObject {
	out := make([]entity.DetectedObject, 0, len(objects))
	for _, o := range objects {
		out = append(out, entity.DetectedObject{
			Class:      o.Class,
			Confidence: o.Confidence,
			Box: entity.BBox{
				X:      o.BBox[0],
				Y:      o.BBox[1],
				Width:  o.BBox[2],
				Height: o.BBox[3],
			},
		})
	}
	return out
}

// formatReport собирает текстовый отчёт по одному кадру
func formatReport(out *app.AssessmentOutput) string {
	a := out.Assessment
	if a.Indeterminate {
		return msgIndeterminate
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Методика: %s (сторона: %s)\n\n", strings.ToUpper(string(a.Method)), a.Side)
	fmt.Fprintf(&sb, "Баллы по суставам:\n")
	fmt.Fprintf(&sb, "• корпус: %d, шея: %d\n", a.Components.Trunk, a.Components.Neck)
	if a.Method == entity.MethodREBA {
		fmt.Fprintf(&sb, "• ноги: %d\n", a.Components.Legs)
	}
	fmt.Fprintf(&sb, "• плечо: %d, локоть: %d, запястье: %d\n\n",
		a.Components.UpperArm, a.Components.LowerArm, a.Components.Wrist)
	fmt.Fprintf(&sb, "Группа A: %d, группа B: %d\n", a.ScoreA, a.ScoreB)
	fmt.Fprintf(&sb, "🎯 Итоговый балл: %d из 7 — риск %s\n", a.Final, riskLabels[a.Risk])

	if out.Load.Posture.IsLifting || out.Load.Posture.IsCarrying {
		fmt.Fprintf(&sb, "\n🏋️ Поза с грузом: оценка веса %.1f кг (уверенность %.1f)\n",
			out.Load.EstimatedWeightKg, out.Load.Confidence)
	}

	if out.Interaction != nil && out.Interaction.IsHoldingObject {
		classes := make([]string, 0, len(out.Interaction.Held))
		for _, obj := range out.Interaction.Held {
			classes = append(classes, obj.Class)
		}
		fmt.Fprintf(&sb, "📦 В руках: %s (всего ≈%.1f кг)\n",
			strings.Join(classes, ", "), out.Interaction.TotalEstimatedWeightKg)
	}

	if out.Adjusted != nil {
		fmt.Fprintf(&sb, "\n⚖️ С учётом груза %.1f кг (×%.1f): балл %d — риск %s\n",
			out.Adjusted.EffectiveWeightKg, out.Adjusted.WeightMultiplier,
			out.Adjusted.Final, riskLabels[out.Adjusted.Risk])
	}

	return sb.String()
}

// formatBatchReport собирает сводку по серии кадров
func formatBatchReport(results []*app.AssessmentOutput) string {
	total := len(results)
	indeterminate := 0
	counts := make(map[entity.RiskLevel]int)
	worst := -1
	worstFrame := 0

	for i, out := range results {
		if out.Assessment.Indeterminate {
			indeterminate++
			continue
		}
		counts[out.Assessment.Risk]++
		if out.Assessment.Final > worst {
			worst = out.Assessment.Final
			worstFrame = i + 1
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📈 Серия из %d кадров\n\n", total)
	for _, level := range []entity.RiskLevel{
		entity.RiskNegligible, entity.RiskLow, entity.RiskMedium,
		entity.RiskHigh, entity.RiskCritical,
	} {
		if counts[level] > 0 {
			fmt.Fprintf(&sb, "• риск %s: %d\n", riskLabels[level], counts[level])
		}
	}
	if indeterminate > 0 {
		fmt.Fprintf(&sb, "• без данных: %d\n", indeterminate)
	}
	if worst > 0 {
		fmt.Fprintf(&sb, "\n🎯 Худший кадр: №%d, балл %d из 7\n", worstFrame, worst)
	}

	return sb.String()
}

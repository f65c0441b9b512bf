package handlers

import (
	"bytes"
	"context"
	"html"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/controller/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/controller/render"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	welcomeText := "👋 Привет, " + html.EscapeString(update.Message.From.FirstName) + "!\n\n" +
		"Я помогу вести недельное расписание занятий.\n\n" +
		"/addclass - Добавить занятие\n" +
		"/classes - Мои занятия\n" +
		"/timetable - Расписание на неделю\n" +
		"/week - Расписание картинкой\n" +
		"/help - Справка"

	h.sendHTML(ctx, b, update.Message.Chat.ID, welcomeText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Справка по командам:\n\n" +
		"/addclass - Добавить занятие (пошагово)\n" +
		"/classes - Список занятий с номерами\n" +
		"/addtimes N РАСПИСАНИЕ - Добавить время к занятию N\n" +
		"/deleteclass N - Удалить занятие N\n" +
		"/timetable - Расписание на неделю\n" +
		"/week - Расписание картинкой\n" +
		"/parse РАСПИСАНИЕ - Проверить строку расписания\n" +
		"/cancel - Отменить текущий диалог\n\n" +
		descriptorHelp

	h.sendHTML(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendHTML(ctx, b, update.Message.Chat.ID, "❌ Нет активных операций для отмены.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendHTML(ctx, b, update.Message.Chat.ID, "✅ Операция отменена.\n\nИспользуйте /help для просмотра доступных команд.")
}

// HandleParse обрабатывает /parse - разбор дескриптора без сохранения
func (h *Handlers) HandleParse(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	args := commandArgs(update.Message.Text)
	if args == "" {
		h.sendHTML(ctx, b, chatID, "Отправьте строку расписания после команды.\n\n"+descriptorHelp)
		return
	}

	ws, err := h.classService.PreviewDescriptor(args)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	h.sendHTML(ctx, b, chatID, formatting.FormatPreview(ws))
}

// HandleClasses обрабатывает /classes
func (h *Handlers) HandleClasses(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	classes, err := h.classService.ListClasses(ctx, update.Message.From.ID)
	if err != nil {
		h.sendError(ctx, b, update.Message.Chat.ID, err)
		return
	}

	h.sendHTML(ctx, b, update.Message.Chat.ID, formatting.FormatClassList(classes))
}

// HandleAddTimes обрабатывает "/addtimes N MoWe 09:00 - 10:30"
func (h *Handlers) HandleAddTimes(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	ownerID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	n, descriptor, err := parseClassIndex(commandArgs(update.Message.Text))
	if err == nil && descriptor == "" {
		err = ErrMissingArgs
	}
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	class, err := h.resolveClass(ctx, ownerID, n)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	class, err = h.classService.AddTimes(ctx, ownerID, class.ID, descriptor)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	h.sendHTML(ctx, b, chatID, "✅ Время добавлено\n\n"+formatting.FormatClassInfo(class))
}

// HandleDeleteClass обрабатывает "/deleteclass N"
func (h *Handlers) HandleDeleteClass(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	ownerID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	n, _, err := parseClassIndex(commandArgs(update.Message.Text))
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	class, err := h.resolveClass(ctx, ownerID, n)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	if err := h.classService.DeleteClass(ctx, ownerID, class.ID); err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	h.sendHTML(ctx, b, chatID, "🗑 Занятие «"+html.EscapeString(class.Name)+"» удалено")
}

// HandleTimetable обрабатывает /timetable
func (h *Handlers) HandleTimetable(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	tt, err := h.classService.Timetable(ctx, update.Message.From.ID)
	if err != nil {
		h.sendError(ctx, b, update.Message.Chat.ID, err)
		return
	}

	h.sendHTML(ctx, b, update.Message.Chat.ID, formatting.FormatTimetable(tt))
}

// HandleWeek обрабатывает /week - расписание картинкой
func (h *Handlers) HandleWeek(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	tt, err := h.classService.Timetable(ctx, update.Message.From.ID)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	imageData, err := render.WeekImage(tt)
	if err != nil {
		h.logger.Error("Failed to render week image", zap.Error(err))
		h.sendHTML(ctx, b, chatID, formatting.FormatTimetable(tt))
		return
	}

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:    chatID,
		Photo:     &models.InputFileUpload{Filename: "week.png", Data: bytes.NewReader(imageData)},
		Caption:   "🗓 Ваша неделя",
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		h.logger.Error("Failed to send week image", zap.Error(err))
	}
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Неизвестные команды сюда тоже попадают
	if strings.HasPrefix(update.Message.Text, "/") {
		h.sendHTML(ctx, b, update.Message.Chat.ID, "❓ Неизвестная команда. Смотрите /help")
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	h.logger.Debug("HandleTextMessage called",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateNone:
		return
	case state.StateAddClassName:
		h.handleAddClassNameStep(ctx, b, update)
	case state.StateAddClassInstructor:
		h.handleAddClassInstructorStep(ctx, b, update)
	case state.StateAddClassLocation:
		h.handleAddClassLocationStep(ctx, b, update)
	case state.StateAddClassTimes:
		h.handleAddClassTimesStep(ctx, b, update)
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}

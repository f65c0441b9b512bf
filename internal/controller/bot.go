package controller

import (
	"context"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/controller/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/controller/handlers"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

// NewHandlers создаёт обработчики команд. Нужны до создания бота:
// HandleTextMessage передаётся в bot.WithDefaultHandler.
func NewHandlers(classService *service.ClassService, logger *zap.Logger) *handlers.Handlers {
	return handlers.NewHandlers(classService, state.NewManager(), logger)
}

func NewBotController(botInstance *bot.Bot, cmdHandlers *handlers.Handlers, logger *zap.Logger) *BotController {
	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/parse", bot.MatchTypePrefix, c.handlers.HandleParse)

	// Занятия
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/addclass", bot.MatchTypeExact, c.handlers.HandleAddClassStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/classes", bot.MatchTypeExact, c.handlers.HandleClasses)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/addtimes", bot.MatchTypePrefix, c.handlers.HandleAddTimes)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/deleteclass", bot.MatchTypePrefix, c.handlers.HandleDeleteClass)

	// Расписание
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/timetable", bot.MatchTypeExact, c.handlers.HandleTimetable)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/week", bot.MatchTypeExact, c.handlers.HandleWeek)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "help", Description: "❓ Справка по командам"},
		{Command: "addclass", Description: "➕ Добавить занятие"},
		{Command: "classes", Description: "📚 Мои занятия"},
		{Command: "timetable", Description: "🗓 Расписание на неделю"},
		{Command: "week", Description: "🖼 Расписание картинкой"},
		{Command: "parse", Description: "🔍 Проверить строку расписания"},
		{Command: "cancel", Description: "✖️ Отменить диалог"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// SendDigest отправляет расписание на день в личный чат владельца
func (c *BotController) SendDigest(ctx context.Context, ownerID int64, day time.Weekday, entries []service.TimetableEntry) error {
	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    ownerID,
		Text:      formatting.FormatDigest(day, entries),
		ParseMode: models.ParseModeHTML,
	})
	return err
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
}

package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/controller/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// skipWord пропускает необязательный шаг диалога
const skipWord = "-"

// HandleAddClassStart начинает диалог создания занятия
func (h *Handlers) HandleAddClassStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.ClearState(telegramID)
	h.stateManager.SetState(telegramID, state.StateAddClassName)

	h.sendHTML(ctx, b, update.Message.Chat.ID,
		"➕ <b>Новое занятие</b>\n\nШаг 1/4. Введите название занятия:")
}

func (h *Handlers) handleAddClassNameStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	name := strings.TrimSpace(update.Message.Text)
	if name == "" || name == skipWord {
		h.sendHTML(ctx, b, update.Message.Chat.ID, "❌ Название не может быть пустым. Введите название:")
		return
	}

	h.stateManager.Advance(update.Message.From.ID, state.KeyClassName, name, state.StateAddClassInstructor)
	h.sendHTML(ctx, b, update.Message.Chat.ID, "Шаг 2/4. Введите преподавателя (или «-» чтобы пропустить):")
}

func (h *Handlers) handleAddClassInstructorStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.stateManager.Advance(update.Message.From.ID, state.KeyClassInstructor, optional(update.Message.Text), state.StateAddClassLocation)
	h.sendHTML(ctx, b, update.Message.Chat.ID, "Шаг 3/4. Введите место, например «Main Hall 204» (или «-»):")
}

func (h *Handlers) handleAddClassLocationStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.stateManager.Advance(update.Message.From.ID, state.KeyClassLocation, optional(update.Message.Text), state.StateAddClassTimes)
	h.sendHTML(ctx, b, update.Message.Chat.ID, "Шаг 4/4. Введите расписание (или «-» чтобы добавить позже).\n\n"+descriptorHelp)
}

func (h *Handlers) handleAddClassTimesStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	data := h.stateManager.GetAllData(telegramID)

	var descriptors []string
	if descriptor := optional(update.Message.Text); descriptor != "" {
		// Проверяем до сохранения, чтобы пользователь мог исправить строку
		if _, err := h.classService.PreviewDescriptor(descriptor); err != nil {
			h.sendError(ctx, b, chatID, err)
			return
		}
		descriptors = append(descriptors, descriptor)
	}

	class, err := h.classService.CreateClass(ctx, telegramID,
		data[state.KeyClassName],
		data[state.KeyClassInstructor],
		data[state.KeyClassLocation],
		descriptors...)
	h.stateManager.ClearState(telegramID)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	h.sendHTML(ctx, b, chatID, "✅ Занятие создано\n\n"+formatting.FormatClassInfo(class))
}

// optional возвращает введённый текст или пустую строку для «-»
func optional(text string) string {
	text = strings.TrimSpace(text)
	if text == skipWord {
		return ""
	}
	return text
}

package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// commandArgs возвращает текст после команды: "/parse MoWe 9-10" -> "MoWe 9-10"
func commandArgs(text string) string {
	_, args, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(args)
}

// parseClassIndex разбирает номер занятия из списка (с 1) и остаток строки
func parseClassIndex(args string) (int, string, error) {
	if args == "" {
		return 0, "", ErrMissingArgs
	}

	numStr, rest, _ := strings.Cut(args, " ")
	n, err := strconv.Atoi(numStr)
	if err != nil || n < 1 {
		return 0, "", fmt.Errorf("parse class number %q: %w", numStr, ErrInvalidIndex)
	}
	return n, strings.TrimSpace(rest), nil
}

// pickClass возвращает занятие по номеру из списка
func pickClass(classes []*model.Class, n int) (*model.Class, error) {
	if n < 1 || n > len(classes) {
		return nil, fmt.Errorf("class number %d of %d: %w", n, len(classes), ErrInvalidIndex)
	}
	return classes[n-1], nil
}

// resolveClass находит занятие пользователя по номеру из списка /classes
func (h *Handlers) resolveClass(ctx context.Context, ownerID int64, n int) (*model.Class, error) {
	classes, err := h.classService.ListClasses(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return pickClass(classes, n)
}

// sendHTML отправляет сообщение с HTML разметкой
func (h *Handlers) sendHTML(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// sendError логирует ошибку и отправляет пользователю понятное сообщение
func (h *Handlers) sendError(ctx context.Context, b *bot.Bot, chatID int64, err error) {
	h.logger.Warn("Command failed",
		zap.Int64("chat_id", chatID),
		zap.Error(err))
	h.sendHTML(ctx, b, chatID, ErrorMessage(err))
}

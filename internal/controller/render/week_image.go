package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/Freeeeeet/timetable_bot/internal/controller/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/schedule"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/fogleman/gg"
)

// Константы размеров и отступов
const (
	ImageWidth       = 1400
	ImageHeight      = 900
	headerHeight     = 70
	leftLabelsWidth  = 70
	dayPaddingX      = 6
	minSlotHeight    = 14.0
	slotBorderRadius = 6.0
	defaultMinHour   = 8
	defaultMaxHour   = 18
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 255}
	hourLabelColor = color.RGBA{110, 115, 120, 255}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{225, 225, 225, 255}
	slotTextColor  = color.RGBA{20, 24, 28, 255}

	slotColors = []color.NRGBA{
		{133, 193, 85, 230},
		{100, 160, 230, 230},
		{255, 182, 120, 230},
		{190, 140, 220, 230},
		{240, 120, 140, 230},
		{110, 200, 190, 230},
	}
)

// hourRange диапазон часов для отображения
type hourRange struct {
	start int
	end   int
}

func (h hourRange) total() int {
	return h.end - h.start
}

// WeekImage рисует недельное расписание в PNG
func WeekImage(tt *service.Timetable) ([]byte, error) {
	hours := calculateHourRange(tt)

	dc := gg.NewContext(ImageWidth, ImageHeight)
	dc.SetFontFace(loadFace(fontSize))
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := float64(ImageWidth-leftLabelsWidth) / schedule.DaysInWeek
	dayHeight := float64(ImageHeight - headerHeight)
	cellHeight := dayHeight / float64(hours.total())

	colors := make(map[string]color.NRGBA)
	for i, day := range formatting.WeekOrder {
		x := leftLabelsWidth + float64(i)*dayWidth

		if i%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, headerHeight, dayWidth, dayHeight)
		dc.Fill()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(formatting.GetWeekdayShort(day)+" / "+schedule.DayCode(day), x+dayWidth/2, headerHeight/2, 0.5, 0.5)

		for _, entry := range tt.Entries(day) {
			drawEntry(dc, entry, colorFor(colors, entry), x, dayWidth, hours, cellHeight)
		}
	}

	drawHourLines(dc, hours, cellHeight)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode week image: %w", err)
	}
	return buf.Bytes(), nil
}

// calculateHourRange подбирает часы так, чтобы все занятия поместились
func calculateHourRange(tt *service.Timetable) hourRange {
	minSec, maxSec := -1, -1
	for _, entries := range tt.Days {
		for _, e := range entries {
			lo, hi := bounds(e.Interval)
			if minSec < 0 || lo < minSec {
				minSec = lo
			}
			if hi > maxSec {
				maxSec = hi
			}
		}
	}

	if minSec < 0 {
		return hourRange{start: defaultMinHour, end: defaultMaxHour}
	}

	start := minSec / 3600
	end := (maxSec + 3599) / 3600
	if end <= start {
		end = start + 1
	}
	return hourRange{start: start, end: end}
}

// bounds возвращает начало и конец интервала в секундах по возрастанию
func bounds(ti *schedule.TimeInterval) (int, int) {
	lo, hi := ti.Start().TotalSeconds(), ti.Stop().TotalSeconds()
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi
}

func drawHourLines(dc *gg.Context, hours hourRange, cellHeight float64) {
	dc.SetLineWidth(1)
	for h := hours.start; h <= hours.end; h++ {
		y := headerHeight + float64(h-hours.start)*cellHeight

		dc.SetColor(hourLineColor)
		dc.DrawLine(leftLabelsWidth, y, ImageWidth, y)
		dc.Stroke()

		dc.SetColor(hourLabelColor)
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", h), leftLabelsWidth/2, y, 0.5, 0.5)
	}
}

func drawEntry(dc *gg.Context, entry service.TimetableEntry, fill color.NRGBA, x, dayWidth float64, hours hourRange, cellHeight float64) {
	lo, hi := bounds(entry.Interval)
	offset := float64(hours.start * 3600)

	top := headerHeight + (float64(lo)-offset)/3600*cellHeight
	height := float64(hi-lo) / 3600 * cellHeight
	if height < minSlotHeight {
		height = minSlotHeight
	}

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x+dayPaddingX, top, dayWidth-2*dayPaddingX, height, slotBorderRadius)
	dc.Fill()

	dc.SetColor(slotTextColor)
	dc.DrawStringAnchored(formatting.FormatInterval(entry.Interval), x+dayWidth/2, top+10, 0.5, 0.5)
	if height >= 2*minSlotHeight {
		dc.DrawStringAnchored(truncate(entry.Class.Name, int(dayWidth/7)-2), x+dayWidth/2, top+26, 0.5, 0.5)
	}
}

// colorFor закрепляет цвет за занятием, чтобы оно выглядело одинаково во все дни
func colorFor(colors map[string]color.NRGBA, entry service.TimetableEntry) color.NRGBA {
	key := entry.Class.ID.String()
	if c, ok := colors[key]; ok {
		return c
	}
	c := slotColors[len(colors)%len(slotColors)]
	colors[key] = c
	return c
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if limit < 1 || len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}

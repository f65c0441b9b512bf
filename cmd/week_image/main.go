package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Freeeeeet/timetable_bot/internal/controller/render"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
)

// Рисует неделю из дескрипторов в PNG для ручной проверки:
//
//	week_image -o week.png "MoWeFr 09:00 - 10:30" "TuTh 13:00 - 14:15"
func main() {
	out := flag.String("o", "week_image.png", "output file")
	flag.Parse()

	descriptors := flag.Args()
	if len(descriptors) == 0 {
		descriptors = []string{"MoWeFr 09:00 - 10:30", "TuTh 13:00 - 14:15", "Sa 10:00 - 12:00"}
	}

	var classes []*model.Class
	for i, descriptor := range descriptors {
		class := model.NewClass(0, fmt.Sprintf("Class %d", i+1), "", "")
		if err := class.AddTimes(descriptor); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка разбора %q: %v\n", descriptor, err)
			os.Exit(1)
		}
		classes = append(classes, class)
	}

	imageData, err := render.WeekImage(service.BuildTimetable(classes))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, imageData, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение сохранено в %s\n", *out)
}

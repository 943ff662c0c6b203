package services

import (
	"time"

	"github.com/patrykmns/droply/internal/models"
)

type HistoryDayReader interface {
	FindByDate(date string) (models.WaterDay, bool, error)
	ListRecent(limit int) ([]models.WaterDay, error)
	ListAll() ([]models.WaterDay, error)
}

type DayAmount struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
}

// HistoryService serves the chart, full history, and streak views.
type HistoryService struct {
	days     HistoryDayReader
	location *time.Location
	now      func() time.Time
}

func NewHistoryService(days HistoryDayReader, location *time.Location) *HistoryService {
	if location == nil {
		location = time.Local
	}
	return &HistoryService{
		days:     days,
		location: location,
		now:      time.Now,
	}
}

// LastDays returns one entry per calendar day for the trailing window
// ending today, oldest first, padding days without a record with zero.
func (service *HistoryService) LastDays(count int) ([]DayAmount, error) {
	if count <= 0 {
		count = 7
	}

	recorded, err := service.days.ListRecent(count)
	if err != nil {
		return nil, err
	}

	amountByDate := make(map[string]int, len(recorded))
	for _, day := range recorded {
		amountByDate[day.Date] = day.Amount
	}

	today := service.today()
	result := make([]DayAmount, 0, count)
	for offset := count - 1; offset >= 0; offset-- {
		date := models.DateKey(today.AddDate(0, 0, -offset))
		result = append(result, DayAmount{Date: date, Amount: amountByDate[date]})
	}
	return result, nil
}

func (service *HistoryService) AllHistory() ([]models.WaterDay, error) {
	return service.days.ListAll()
}

// Streak counts consecutive goal-met days walking backward: today
// joins the streak only once its goal is met, but an unmet today does
// not break yesterday's run.
func (service *HistoryService) Streak(dailyGoal int) (int, error) {
	history, err := service.days.ListAll()
	if err != nil {
		return 0, err
	}

	amountByDate := make(map[string]int, len(history))
	for _, day := range history {
		amountByDate[day.Date] = day.Amount
	}

	today := service.today()
	streak := 0
	if amount, ok := amountByDate[models.DateKey(today)]; ok && amount >= dailyGoal {
		streak++
	}

	checkDate := today
	for {
		checkDate = checkDate.AddDate(0, 0, -1)
		amount, ok := amountByDate[models.DateKey(checkDate)]
		if !ok || amount < dailyGoal {
			break
		}
		streak++
	}
	return streak, nil
}

func (service *HistoryService) today() time.Time {
	return service.now().In(service.location)
}

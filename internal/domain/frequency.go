package domain

import "fmt"

// Frequency периодичность услуги (количество визитов в неделю)
type Frequency string

const (
	FrequencyOneTime Frequency = "one_time"
	FrequencyOnce    Frequency = "once"
	FrequencyTwice   Frequency = "twice"
	FrequencyThree   Frequency = "three"
	FrequencyFour    Frequency = "four"
	FrequencyFive    Frequency = "five"
	FrequencySix     Frequency = "six"
)

// AllFrequencies список всех поддерживаемых периодичностей в порядке отображения
var AllFrequencies = []Frequency{
	FrequencyOneTime,
	FrequencyOnce,
	FrequencyTwice,
	FrequencyThree,
	FrequencyFour,
	FrequencyFive,
	FrequencySix,
}

// frequencySlots отображение периодичности в требуемое количество слотов
var frequencySlots = map[Frequency]int{
	FrequencyOneTime: 1,
	FrequencyOnce:    1,
	FrequencyTwice:   2,
	FrequencyThree:   3,
	FrequencyFour:    4,
	FrequencyFive:    5,
	FrequencySix:     6,
}

// SlotsRequired возвращает количество слотов, которое должно быть выбрано
// перед запросом блокировки расписания
func (f Frequency) SlotsRequired() int {
	return frequencySlots[f]
}

// IsRecurring возвращает true для периодических услуг (пакетов)
func (f Frequency) IsRecurring() bool {
	return f != FrequencyOneTime && f != ""
}

// Validate проверяет, что значение периодичности поддерживается
func (f Frequency) Validate() error {
	if _, ok := frequencySlots[f]; !ok {
		return fmt.Errorf("unknown frequency %q", string(f))
	}
	return nil
}

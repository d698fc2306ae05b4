package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PhaseReading is one row of a per-phase meter export. Values are in Wh.
type PhaseReading struct {
	Time        time.Time
	Consumption []decimal.Decimal // v1..vN
	Production  []decimal.Decimal // v1..vN
}

func (r PhaseReading) Phases() int {
	return len(r.Consumption)
}

// DailyReading is one row of the net export with the daily average temperature.
// Consumption and Production are in kWh, Temperature in °C.
type DailyReading struct {
	Time        time.Time
	Consumption decimal.Decimal
	Production  decimal.Decimal
	Temperature decimal.Decimal
}

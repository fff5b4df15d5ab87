package reservation

import "hotel-management/internal/domain/money"

type PriceCalculator interface {
	Calculate(nightlyRate money.Money, period StayPeriod) money.Money
}

// NightlyPriceCalculator charges the nightly rate for every night of the stay.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) Calculate(nightlyRate money.Money, period StayPeriod) money.Money {
	return nightlyRate.Times(period.Nights())
}

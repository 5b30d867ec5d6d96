package exchange

import (
	"errors"
	"fmt"

	"go-money/domain"
)

// ErrRateNotFound is matched by every RateNotFoundError.
var ErrRateNotFound = errors.New("exchange rate not defined")

// RateNotFoundError no direct rate is tabulated from Source to Target
type RateNotFoundError struct {
	Source domain.Currency
	Target domain.Currency
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("%v: %v -> %v", ErrRateNotFound, e.Source, e.Target)
}

func (e *RateNotFoundError) Is(target error) bool {
	return target == ErrRateNotFound
}

// LookupFunc for looking up the direct rate from one currency to another.
// Implementations must be safe for concurrent use.
type LookupFunc func(source domain.Currency, target domain.Currency) (domain.Rate, error)

// Table maps a source currency to its exchange rates, in lookup order.
// A table is read-only once built.
type Table map[domain.Currency][]domain.ExchangeRate

// DefaultTable the process-wide exchange table. Each direction is listed on its own.
var DefaultTable = Table{
	domain.KRW: {{Target: domain.USD, Ratio: 0.0010}},
	domain.USD: {{Target: domain.KRW, Ratio: 1000}},
	domain.JPY: {{Target: domain.KRW, Ratio: 10}},
}

// Lookup returns the ratio of the first entry for source that targets target.
// Rates are never composed: a missing direct entry is a RateNotFoundError even
// when a path through another currency exists.
func (t Table) Lookup(source domain.Currency, target domain.Currency) (domain.Rate, error) {
	for _, rate := range t[source] {
		if rate.Target == target {
			return rate.Ratio, nil
		}
	}
	return 0, &RateNotFoundError{Source: source, Target: target}
}

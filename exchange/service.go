package exchange

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-money/domain"
	"go-money/logging"
)

// Service combines and scales Money values
type Service interface {
	Add(lhs domain.Money, rhs domain.Money) domain.Money
	Multiply(m domain.Money, factor float64) domain.Money
}

// service converts between currencies with a direct rate lookup
type service struct {
	// lookup finds the direct rate between two currencies
	lookup LookupFunc

	// logger receives a diagnostic whenever Add drops its left operand
	logger log.Logger
}

// NewService constructs a valid Service
func NewService(lookup LookupFunc, logger log.Logger) Service {
	return &service{
		lookup: lookup,
		logger: logger,
	}
}

// Default the service behind Add and Multiply, backed by DefaultTable and logging to stderr.
var Default = NewService(DefaultTable.Lookup, log.With(logging.NewLogger(os.Stderr), "component", "exchange"))

// Add combines two amounts using Default.
func Add(lhs domain.Money, rhs domain.Money) domain.Money {
	return Default.Add(lhs, rhs)
}

// Multiply scales an amount using Default.
func Multiply(m domain.Money, factor float64) domain.Money {
	return Default.Multiply(m, factor)
}

// Add sums lhs and rhs. When the currencies differ lhs is converted into the
// currency of rhs, so the result is always in rhs.Currency.
//
// If no direct rate from lhs.Currency to rhs.Currency exists the failure is logged
// and rhs is returned unchanged: the left operand is dropped from the result.
func (s *service) Add(lhs domain.Money, rhs domain.Money) domain.Money {
	if lhs.Currency == rhs.Currency {
		return domain.New(lhs.Amount+rhs.Amount, lhs.Currency)
	}

	rate, err := s.lookup(lhs.Currency, rhs.Currency)
	if err != nil {
		level.Error(s.logger).Log(
			"msg", "dropping left operand",
			"from", lhs.Currency,
			"to", rhs.Currency,
			"dropped_amount", lhs.Amount,
			"err", err,
		)
		return domain.New(rhs.Amount, rhs.Currency)
	}

	converted := domain.Amount(float64(lhs.Amount) * float64(rate))
	return domain.New(converted+rhs.Amount, rhs.Currency)
}

// Multiply scales the amount of m by factor, keeping its currency.
func (s *service) Multiply(m domain.Money, factor float64) domain.Money {
	return domain.New(domain.Amount(float64(m.Amount)*factor), m.Currency)
}

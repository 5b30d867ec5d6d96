package exchange

import (
	"time"

	"github.com/go-kit/log"

	"go-money/domain"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Add(lhs domain.Money, rhs domain.Money) (result domain.Money) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "add",
			"lhs_amount", lhs.Amount,
			"lhs_currency", lhs.Currency,
			"rhs_amount", rhs.Amount,
			"rhs_currency", rhs.Currency,
			"result_amount", result.Amount,
			"result_currency", result.Currency,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Add(lhs, rhs)
}

func (s *loggingService) Multiply(m domain.Money, factor float64) (result domain.Money) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "multiply",
			"amount", m.Amount,
			"currency", m.Currency,
			"factor", factor,
			"result_amount", result.Amount,
			"result_currency", result.Currency,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Multiply(m, factor)
}

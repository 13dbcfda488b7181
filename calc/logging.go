package calc

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/metalcalc/metal"
)

type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a service that logs every call to next.
// Evaluations are logged at debug level, rate changes at info level.
func NewLoggingService(logger log.Logger, next Service) Service {
	return &loggingService{logger: logger, next: next}
}

func (s *loggingService) Evaluate(expr string) (v metal.Value, err error) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "evaluate",
			"expr", expr,
			"result", v,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Evaluate(expr)
}

func (s *loggingService) SetExchangeRate(expr string) (r metal.KeyRate, err error) {
	defer func(begin time.Time) {
		level.Info(s.logger).Log(
			"method", "set_exchange_rate",
			"expr", expr,
			"rate", r,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SetExchangeRate(expr)
}

func (s *loggingService) Report(v metal.Value) (lines []string, err error) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "report",
			"value", v,
			"lines", len(lines),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Report(v)
}

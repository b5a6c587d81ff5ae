// Ограничения на размер принимаемых документов.
package limiter

import (
	"log/slog"

	"github.com/aisa-it/doccomposer/internal/doccomposer/config"
)

type LimiterInt interface {
	CanAddElements(current, add int) bool
	CanAcceptBytes(size int) bool

	GetRemainingElements(current int) int
	MaxBytes() int
}

var Limiter LimiterInt = CommunityLimiter{}

// Init выбирает ограничитель по конфигурации. Без заданных лимитов используется CommunityLimiter.
func Init(cfg *config.Config) {
	if cfg.LimitMaxElements <= 0 && cfg.LimitMaxBytes <= 0 {
		slog.Info("Using Community limiter")
		Limiter = CommunityLimiter{}
		return
	}
	slog.Info("Using static limiter", "maxElements", cfg.LimitMaxElements, "maxBytes", cfg.LimitMaxBytes)
	Limiter = NewStaticLimiter(cfg.LimitMaxElements, cfg.LimitMaxBytes)
}

// CommunityLimiter ничего не ограничивает.
type CommunityLimiter struct{}

func (c CommunityLimiter) CanAddElements(current, add int) bool {
	return true
}

func (c CommunityLimiter) CanAcceptBytes(size int) bool {
	return true
}

func (c CommunityLimiter) GetRemainingElements(current int) int {
	return 99999999
}

func (c CommunityLimiter) MaxBytes() int {
	return 0
}

// StaticLimiter ограничивает число элементов документа и размер тела запроса.
// Значение <= 0 отключает соответствующее ограничение.
type StaticLimiter struct {
	maxElements int
	maxBytes    int
}

func NewStaticLimiter(maxElements, maxBytes int) StaticLimiter {
	return StaticLimiter{maxElements: maxElements, maxBytes: maxBytes}
}

func (l StaticLimiter) CanAddElements(current, add int) bool {
	if l.maxElements <= 0 {
		return true
	}
	return current+add <= l.maxElements
}

func (l StaticLimiter) CanAcceptBytes(size int) bool {
	if l.maxBytes <= 0 {
		return true
	}
	return size <= l.maxBytes
}

func (l StaticLimiter) GetRemainingElements(current int) int {
	if l.maxElements <= 0 {
		return CommunityLimiter{}.GetRemainingElements(current)
	}
	return max(l.maxElements-current, 0)
}

func (l StaticLimiter) MaxBytes() int {
	return l.maxBytes
}

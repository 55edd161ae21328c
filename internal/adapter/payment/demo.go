package payment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// DemoProcessor approves every charge at once. It stands in for a real
// payment gateway.
type DemoProcessor struct{}

func NewDemoProcessor() *DemoProcessor {
	return &DemoProcessor{}
}

func (DemoProcessor) Charge(ctx context.Context, bookingKey string, amount int64, method string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("negative amount %d", amount)
	}
	log.Debug().Str("key", bookingKey).Int64("amount", amount).Str("method", method).Msg("demo charge approved")
	return nil
}

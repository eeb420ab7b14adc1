package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span of ctx onto err, tying an error that leaves
// the span context back to the journal entries written within it.
func WrapSpan(ctx context.Context, err error) error {
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
}

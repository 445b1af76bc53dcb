package cli

import (
	"context"
	"io"
	"slices"
	"strings"
)

// fieldPrompt binds one form field to its prompt. key matches the field name
// used by validation, so failed fields can be asked again.
type fieldPrompt[T any] struct {
	key   string
	label string
	field func(*T) *string
}

// promptFields asks every prompt in order, or only those whose key is in
// only when only is non-nil. An empty answer keeps the current value.
func promptFields[T any](ctx context.Context, in *Input, w io.Writer, v *T, prompts []fieldPrompt[T], only []string) error {
	for _, p := range prompts {
		if only != nil && !slices.Contains(only, p.key) {
			continue
		}
		dst := p.field(v)
		val, err := GetOptional(ctx, in, p.label, *dst, w)
		if err != nil {
			return err
		}
		*dst = val
	}
	return nil
}

func (a *App) confirm(ctx context.Context, question string) (bool, error) {
	answer, err := getSimpleText(ctx, a.in, question+" (y/N)", a.out)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

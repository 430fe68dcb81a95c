package odds

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/riskodds/internal/battle"
	"github.com/louisbranch/riskodds/internal/core/dice"
	apperrors "github.com/louisbranch/riskodds/internal/platform/errors"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// localeFromContext reads the caller's locale from x-locale, then accept-language.
func localeFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, key := range []string{"x-locale", "accept-language"} {
		if values := md.Get(key); len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			return values[0]
		}
	}
	return ""
}

var domainCodes = []struct {
	err  error
	code apperrors.Code
}{
	{battle.ErrInvalidDiceCount, apperrors.CodeOddsInvalidDiceCount},
	{battle.ErrInvalidUnitCount, apperrors.CodeOddsInvalidUnitCount},
	{battle.ErrUnitCountTooLarge, apperrors.CodeOddsUnitCountTooLarge},
	{battle.ErrUnknownPreset, apperrors.CodeOddsUnknownPreset},
	{battle.ErrPresetWithBonus, apperrors.CodeOddsPresetWithBonus},
	{dice.ErrMissingDice, apperrors.CodeDiceMissing},
	{dice.ErrInvalidDiceSpec, apperrors.CodeDiceInvalidSpec},
}

// fromDomain attaches an error code to known battle and dice errors.
func fromDomain(err error) error {
	var coded *apperrors.Error
	if errors.As(err, &coded) {
		return err
	}
	for _, known := range domainCodes {
		if errors.Is(err, known.err) {
			return apperrors.Wrap(known.code, err.Error(), err)
		}
	}
	return err
}

// handleDomainError converts err into a localized gRPC status. Context
// errors keep their Canceled or DeadlineExceeded code.
func handleDomainError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	return apperrors.HandleError(fromDomain(err), localeFromContext(ctx))
}

func invalidArgument(code apperrors.Code, format string, args ...any) error {
	return apperrors.New(code, fmt.Sprintf(format, args...))
}

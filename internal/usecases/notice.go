package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/pkg/errcodes"
	"github.com/just-nibble/folio-service/pkg/log"
)

func success(format string, args ...interface{}) dtos.Notice {
	return dtos.Notice{Level: dtos.NoticeSuccess, Message: fmt.Sprintf(format, args...)}
}

// failure logs a write error and turns it into the notice shown to the user.
func failure(l log.Log, err error, action, kind string) dtos.Notice {
	l.Error().Err(err).Str("kind", kind).Msgf("failed to %s %s", action, kind)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return dtos.Notice{Level: dtos.NoticeError, Message: fmt.Sprintf("%s not found", kind)}
	}
	return dtos.Notice{Level: dtos.NoticeError, Message: fmt.Sprintf("Failed to %s %s", action, kind)}
}

// checkID rejects ids that can never exist so they do not reach the uuid
// column as a query error.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errcodes.ErrNoRecordFound
	}
	return nil
}

// relist reloads a collection after a write. A failed reload is logged and
// leaves the result empty; the write itself already succeeded.
func relist[T any](ctx context.Context, l log.Log, kind string, list func(context.Context) ([]T, error)) []T {
	items, err := list(ctx)
	if err != nil {
		l.Warn().Err(err).Str("kind", kind).Msg("failed to reload collection")
		return []T{}
	}
	return items
}

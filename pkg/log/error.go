package log

import (
	"fmt"
	"log/slog"
)

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}

	return slog.String("error", fmt.Sprintf("%+v", err))
}

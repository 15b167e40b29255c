package block_schedule

import (
	"context"

	blockScheduleUC "github.com/m04kA/SMC-CustomerPortal/internal/usecase/block_schedule"
)

type BlockScheduleUseCase interface {
	Execute(ctx context.Context, token string, req *blockScheduleUC.Request) (*blockScheduleUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

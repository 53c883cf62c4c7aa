package interfaces

import "context"

type SchedulerInterface interface {
	Init()
	Stop()
	Load(ctx context.Context) error
}

package app

import "context"

type SummaryUseCase interface {
	Summarize(ctx context.Context, req SummaryRequest) (*SummaryResponse, error)
}

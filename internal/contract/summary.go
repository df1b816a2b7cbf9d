// Package contract exposes the stable request/response types consumed by
// transports (HTTP handlers, CLI commands) without binding them to the
// application layer's package layout.
package contract

import "github.com/alexanderramin/upkeep/internal/app"

type SummaryRequest = app.SummaryRequest

type TaskDigestView = app.TaskDigestView

type SummaryResponse = app.SummaryResponse

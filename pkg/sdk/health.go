package collabup

import (
	"context"

	healthuc "github.com/0Anshu1/collabup-be/internal/usecase/health"
)

// Health pings the store and probes every collection.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	colls := make(map[string]string, len(report.Collections))
	for k, v := range report.Collections {
		colls[k] = string(v.Status)
	}
	return HealthStatus{
		Status:      string(report.Status),
		Store:       string(report.Store),
		Collections: colls,
		CheckedAt:   report.Timestamp,
	}
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

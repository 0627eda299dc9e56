package shared

// Asynq task types and queue names shared between the API and the worker.
const (
	TypeOverdueScan = "borrowing:overdue_scan"

	QueueDefault = "default"
	QueueLow     = "low"
)

// OverdueReportCacheKey is where the worker stores the latest overdue
// summary for quick inspection.
const OverdueReportCacheKey = "reports:overdue"

package interfaces

// IOperationalMetrics records counters for the background and enrichment
// paths, whose failures never reach an HTTP response.
type IOperationalMetrics interface {
	ObserveReportDispatch(outcome string)
	ObserveLookupFailure(kind string)
}

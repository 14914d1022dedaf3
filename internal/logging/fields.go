package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for the per-invocation identifier.
	FieldRunID = "run_id"
	// FieldReservoir is the standardized structured logging key for the parsed reservoir name.
	FieldReservoir = "reservoir"
	// FieldYear is the standardized structured logging key for the parsed data year.
	FieldYear = "year"
	// FieldSource is the standardized structured logging key for the input file path.
	FieldSource = "source"
	// FieldTarget is the standardized structured logging key for the organized file path.
	FieldTarget = "target"
	// FieldAction is the standardized structured logging key for copy/move/skip decisions.
	FieldAction = "action"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint carries a short next step for the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
)

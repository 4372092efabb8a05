package ports

// NotesMetrics records outcomes of the notes pipeline.
type NotesMetrics interface {
	FetchCompleted(kind, outcome string)
	RenderCompleted(outcome string)
	StaleSelectionDiscarded()
}

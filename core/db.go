package core

// DBOrdering is one sort key of a query; a list of them sorts by each in turn.
type DBOrdering struct {
	Field     string
	Ascending bool
}

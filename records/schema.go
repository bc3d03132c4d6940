package records

import "github.com/tsawler/relnotes/confluence"

// Schema identifies the table layout a row belongs to. The source wiki
// evolved through several layouts; the cell count is the only reliable
// signal for which one a row follows.
type Schema int

const (
	// SchemaUnknown marks a row structurally incompatible with every known
	// layout. Such rows are skipped, never mapped.
	SchemaUnknown Schema = iota

	// SchemaSevenColumn is the current layout: Type of Release Change,
	// Service Impacted, Jira Ticket ID, TFE Module Name, Release Notes,
	// Dependencies, Module Version (date).
	SchemaSevenColumn
)

// Column positions within SchemaSevenColumn. Service, ticket, and
// dependencies are carried by the table but unused downstream.
const (
	colTitle      = 0
	colService    = 1
	colTicket     = 2
	colModuleName = 3
	colBody       = 4
	colDeps       = 5
	colDate       = 6
)

// String returns the schema name.
func (s Schema) String() string {
	switch s {
	case SchemaSevenColumn:
		return "SevenColumn"
	default:
		return "Unknown"
	}
}

// DetectSchema selects the layout for a row. Adding a future layout means
// adding a named variant here, not branching on cell counts inline.
func DetectSchema(cells []confluence.TableCell) Schema {
	if len(cells) >= 7 {
		return SchemaSevenColumn
	}
	return SchemaUnknown
}

package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryRender,
		Message:  "Host view rejected batch update",
		Detail:   "The view's item counts did not match the changeset. Visual state can no longer be trusted; the retained snapshot was not replaced.",
		DocURL:   "https://carbon.vango.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryRender,
		Message:  "Coordinate out of bounds",
		Detail:   "The coordinate does not address a node in the current snapshot. Coordinates are only valid until the next render.",
		DocURL:   "https://carbon.vango.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryRender,
		Message:  "Single-node update changed identity",
		Detail:   "Update may only replace a node's content. Use Render when the identifier changes.",
		DocURL:   "https://carbon.vango.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryRender,
		Message:  "Duplicate identifiers",
		Detail:   "Identifiers must be unique among sections and among the items of one section. Duplicates are matched lowest index first.",
		DocURL:   "https://carbon.vango.dev/docs/errors/E104",
	},

	// ============================================
	// Dispatch Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryDispatch,
		Message:  "Re-render triggered by action failed",
		Detail:   "A component returned new content from NeedChange and applying it to the view failed, either through a full render or the single-node update path.",
		DocURL:   "https://carbon.vango.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryDispatch,
		Message:  "Action handler panicked",
		Detail:   "The handler registered for this node and action kind panicked. The panic was recovered.",
		DocURL:   "https://carbon.vango.dev/docs/errors/E202",
	},

	// ============================================
	// Fixture Errors (E300-E399)
	// ============================================

	"E301": {
		Category: CategoryFixture,
		Message:  "Cannot read snapshot file",
		Detail:   "The snapshot file could not be opened or parsed as YAML.",
		DocURL:   "https://carbon.vango.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategoryFixture,
		Message:  "Invalid snapshot",
		Detail:   "Every section and node in a snapshot file needs an id.",
		DocURL:   "https://carbon.vango.dev/docs/errors/E302",
	},

	// ============================================
	// CLI Errors (E400-E499)
	// ============================================

	"E401": {
		Category: CategoryCLI,
		Message:  "Unknown output format",
		Detail:   "Supported formats are text and yaml.",
		DocURL:   "https://carbon.vango.dev/docs/errors/E401",
	},
	"E402": {
		Category: CategoryCLI,
		Message:  "Cannot read configuration",
		Detail:   "carbon.yaml could not be read or parsed.",
		DocURL:   "https://carbon.vango.dev/docs/errors/E402",
	},
	"E403": {
		Category: CategoryCLI,
		Message:  "Invalid configuration",
		Detail:   "A value in carbon.yaml is out of range.",
		DocURL:   "https://carbon.vango.dev/docs/errors/E403",
	},
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Routing (F001-F099)

	"F001": {
		Category: CategoryRouting,
		Message:  "Route not found",
		Detail:   "No registered pattern matches the path. Patterns match segment by segment and never match a different number of segments.",
	},
	"F002": {
		Category: CategoryRouting,
		Message:  "Route handler failed",
		Detail:   "The handler for the matched route returned an error or panicked. The router fell back to the error policy.",
	},
	"F003": {
		Category: CategoryRouting,
		Message:  "Invalid route pattern",
		Detail:   "Route patterns must start with \"/\" and every \":\" parameter needs a name.",
	},

	// Configuration (F100-F199)

	"F101": {
		Category: CategoryConfig,
		Message:  "Cannot read configuration",
		Detail:   "The configuration file could not be read or is not valid JSON.",
	},
	"F102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field has a value Folio cannot use.",
	},

	// Content (F200-F299)

	"F201": {
		Category: CategoryContent,
		Message:  "Content item not found",
		Detail:   "The route matched, but the content store has no item with that id.",
	},
	"F202": {
		Category: CategoryContent,
		Message:  "Invalid content document",
		Detail:   "The site content document must be a JSON object with research and interests arrays.",
	},

	// Command line (F300-F399)

	"F301": {
		Category: CategoryCLI,
		Message:  "Invalid navigation step",
		Detail:   "Steps are paths (/research/1), back, forward, go:N, or click:HREF with optional +ctrl, +meta, +shift, +alt or +middle modifiers.",
	},
}

// GetAllCodes returns every registered code in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds or replaces an error template.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

// Package errors provides coded, actionable errors for Folio tools.
//
// Library packages (router, routepath) return plain Go errors. Commands and
// the site composition root wrap those into a *FolioError so the terminal
// output says what went wrong and what to try next:
//
//	err := errors.New("F001").
//	    WithPath("/research/99").
//	    WithSuggestion("Run `folio routes` to list registered patterns")
//
//	fmt.Println(err.Format())
//	// ERROR F001: Route not found
//	//
//	//   path: /research/99
//	//
//	//   No registered pattern matches the path. Patterns match segment by
//	//   segment and never match a different number of segments.
//	//
//	//   Hint: Run `folio routes` to list registered patterns
//
// # Error Codes
//
//   - F0xx: routing
//   - F1xx: configuration
//   - F2xx: site content
//   - F3xx: command line
package errors

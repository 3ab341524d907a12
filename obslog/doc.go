// Package obslog is a thin structured-logging adapter used by package
// search and cmd/oprepair.
//
// The example corpus's own go.mod carries no logging dependency (its
// debug output is fmt.Print* only), but projectdiscovery-alterx — a
// sibling repo in this retrieval pack — depends on
// github.com/projectdiscovery/gologger for exactly this kind of
// level-based structured logging. obslog wraps an independent
// *gologger.Logger value (via gologger.NewLogger, never the package-level
// DefaultLogger singleton), so the engine never mutates global logging
// state on its caller's behalf.
package obslog

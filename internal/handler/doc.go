// Package handler implements the HTTP layer of the Inventory Viewer.
//
// The viewer mounts under a base URL the way a plugin mounts inside its host
// application. All routes are read-only GETs:
//
//	{base}/                 inventory page, one table per module type
//	{base}/export/{format}  json, yaml or csv download of the same tables
//	/healthz                liveness probe
//
// The page layout carries the plugin's navigation menu. Errors on the HTML
// route render a small error page; errors on the export route are returned
// as JSON with {error, details} structure.
//
// Middleware provides panic recovery, request ids and access logging.
package handler

// Package branding centralizes the generator name and the warning headers
// stamped into generated files.
package branding

// AppName is the user-facing name of the generator.
const AppName = "Sheetforge"

// HTMLHeader is prepended to the generated sheet HTML so manual edits are
// discouraged at the source.
const HTMLHeader = "<!-- DO NOT MODIFY !\nThis file is automatically generated from a template. Any change will be overwritten\n-->"

// CSSHeader is the body of the comment prepended to the generated sheet CSS.
const CSSHeader = "DO NOT MODIFY !\nThis file is automatically generated from a template. Any change will be overwritten\n"

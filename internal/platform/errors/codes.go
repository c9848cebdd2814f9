// Package errors provides structured error handling for sheet generation.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Alert errors
	CodeAlertInvalidLevel   Code = "ALERT_INVALID_LEVEL"
	CodeAlertRegistryClosed Code = "ALERT_REGISTRY_CLOSED"

	// Color errors
	CodeColorInvalidHex Code = "COLOR_INVALID_HEX"
	CodeColorEmptyName  Code = "COLOR_EMPTY_NAME"

	// Export errors
	CodeExportEmptyKey Code = "EXPORT_EMPTY_KEY"

	// Template errors
	CodeTemplateParse  Code = "TEMPLATE_PARSE"
	CodeTemplateRender Code = "TEMPLATE_RENDER"

	// Extension errors
	CodeExtensionLoad        Code = "EXTENSION_LOAD"
	CodeExtensionInvalidType Code = "EXTENSION_INVALID_TYPE"

	// Locale errors
	CodeLocaleInvalidTag Code = "LOCALE_INVALID_TAG"
)

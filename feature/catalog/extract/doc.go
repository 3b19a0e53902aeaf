// Package extract scans localized text records and groups them by the numeric key
// embedded in their internal names.
//
// Record names follow fixed templates (see the exported patterns). Records whose
// name does not match, or whose content is empty or rejected, are skipped and
// logged at debug level; nothing in this package fails the run.
package extract

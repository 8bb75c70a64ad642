// Package contact composes visitor messages into mailto: links and copies contact
// details to the clipboard.
//
// Nothing here sends mail. Compose builds the subject and body, Draft.URI encodes
// them, and a Navigator hands the URI to the visitor's own mail handler. The
// Copier is a convenience: a failed copy is logged and otherwise ignored.
package contact

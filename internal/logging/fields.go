package logging

// Field name constants for structured logging.
const (
	FieldError   = "error"
	FieldPath    = "path"
	FieldOp      = "op"
	FieldSession = "session"

	// Edit fields.
	FieldStart    = "start"
	FieldEnd      = "end"
	FieldInserted = "inserted"
	FieldRevision = "revision"
	FieldLines    = "lines"
	FieldLength   = "length"
	FieldCount    = "count"

	// Session fields.
	FieldLanguage = "language"
	FieldReadOnly = "read_only"

	// Script fields.
	FieldScript  = "script"
	FieldElapsed = "elapsed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

package ports

// Status renders user-facing progress lines: a right-aligned verb followed by
// a message ("Uploading pkg v1.0.0 (...)"), warnings, and plain rows for
// listings. It is presentation only; nothing reads it back.
//
//go:generate mockgen -source=status.go -destination=mocks/mock_status.go -package=mocks
type Status interface {
	// Status prints a progress line with a highlighted verb.
	Status(verb, msg string)

	// Warn prints a warning line.
	Warn(msg string)

	// Print prints a plain output row.
	Print(line string)
}

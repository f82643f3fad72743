package parser

import "tlr/internal/domain"

// Parser turns one log file into a LogRecord
type Parser interface {
	ParseFile(path string) (domain.LogRecord, error)
}

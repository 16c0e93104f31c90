// Package importer turns bank statement files into transaction lines ready for
// transaction.Service.ImportBatch.
package importer

import (
	"io"

	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

type Format string

const (
	FormatCGD Format = "cgd"
	FormatOFX Format = "ofx"
)

// Parser reads one statement format. Returned lines have no account yet.
type Parser interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}

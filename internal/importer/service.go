package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/importer/cgd"
	"github.com/MrJamesThe3rd/tally/internal/importer/ofx"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/matching"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer

type Suggester interface {
	Suggest(ctx context.Context, ownerID uuid.UUID, rawDescription string) (*matching.Rule, error)
}

type Service struct {
	parsers map[Format]Parser
	rules   Suggester
}

// NewService knows every built-in format. rules may be nil.
func NewService(rules Suggester) *Service {
	return &Service{
		parsers: map[Format]Parser{
			FormatCGD: cgd.NewParser(),
			FormatOFX: ofx.NewParser(),
		},
		rules: rules,
	}
}

// Import parses a statement of the given format into lines booked on accountID.
// Lines matching a category rule get its category and description. A failing rule
// lookup leaves the line as parsed.
func (s *Service) Import(ctx context.Context, ownerID uuid.UUID, format Format, accountID uuid.UUID, r io.Reader) ([]transaction.CreateParams, error) {
	parser, ok := s.parsers[format]
	if !ok {
		return nil, fmt.Errorf("%w: statement format %q", ledger.ErrInvalidType, format)
	}

	lines, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s statement: %w", format, err)
	}

	for i := range lines {
		lines[i].AccountID = accountID

		if s.rules == nil {
			continue
		}

		rule, err := s.rules.Suggest(ctx, ownerID, lines[i].RawDescription)
		if err != nil {
			slog.WarnContext(ctx, "category suggestion failed", "error", err, "line", i+1)
			continue
		}

		if rule == nil {
			continue
		}

		lines[i].CategoryID = &rule.CategoryID

		if rule.Description != "" {
			lines[i].Description = rule.Description
		}
	}

	return lines, nil
}

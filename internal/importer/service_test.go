package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/matching"
)

const statement = `Data mov.;Descrição;Montante
30-01-2026;UBER *TRIP;-12,40
31-01-2026;PINGO DOCE;-54,10
`

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	rules := NewMockSuggester(ctrl)

	owner := uuid.New()
	account := uuid.New()
	transport := uuid.New()

	rules.EXPECT().Suggest(gomock.Any(), owner, "UBER *TRIP").
		Return(&matching.Rule{CategoryID: transport, Description: "Uber"}, nil)
	rules.EXPECT().Suggest(gomock.Any(), owner, "PINGO DOCE").Return(nil, errors.New("timeout"))

	lines, err := NewService(rules).Import(context.Background(), owner, FormatCGD, account, strings.NewReader(statement))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, account, lines[0].AccountID)
	require.NotNil(t, lines[0].CategoryID)
	assert.Equal(t, transport, *lines[0].CategoryID)
	assert.Equal(t, "Uber", lines[0].Description)
	assert.Equal(t, "UBER *TRIP", lines[0].RawDescription)

	assert.Equal(t, account, lines[1].AccountID)
	assert.Nil(t, lines[1].CategoryID)
	assert.Equal(t, "PINGO DOCE", lines[1].Description)
}

func TestService_ImportWithoutRules(t *testing.T) {
	lines, err := NewService(nil).Import(context.Background(), uuid.New(), FormatCGD, uuid.New(), strings.NewReader(statement))
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestService_ImportUnknownFormat(t *testing.T) {
	_, err := NewService(nil).Import(context.Background(), uuid.New(), Format("qif"), uuid.New(), strings.NewReader(""))
	assert.ErrorIs(t, err, ledger.ErrInvalidType)
}

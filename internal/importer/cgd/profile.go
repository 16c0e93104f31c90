package cgd

type amountMode int

const (
	// One signed column, "-10,00" for money out.
	amountSigned amountMode = iota
	// Unsigned debit and credit columns.
	amountDebitCredit
)

// layout is the header of one CGD export. Checking-account, statement and card exports
// name their columns differently.
type layout struct {
	name   string
	date   string
	desc   string
	mode   amountMode
	amount string
	debit  string
	credit string
}

func (l layout) required() []string {
	if l.mode == amountDebitCredit {
		return []string{l.date, l.desc, l.debit, l.credit}
	}

	return []string{l.date, l.desc, l.amount}
}

// Card exports go first: their header also satisfies looser layouts.
var layouts = []layout{
	{name: "cartão", date: "Data", desc: "Descrição", mode: amountDebitCredit, debit: "Débito", credit: "Crédito"},
	{name: "extrato", date: "Data mov.", desc: "Descrição", mode: amountSigned, amount: "Movimento"},
	{name: "conta", date: "Data mov.", desc: "Descrição", mode: amountSigned, amount: "Montante"},
}

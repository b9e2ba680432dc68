package accounting

import (
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// MethodAccountCode maps a payment method to the treasury account code it
// settles against. Card and transfer settlements both land in the bank
// account.
func MethodAccountCode(method domain.PaymentMethod) string {
	switch method {
	case domain.PayCash:
		return domain.CodeCash
	case domain.PayMobileMoney:
		return domain.CodeMobileMoney
	default: // CARD, TRANSFER
		return domain.CodeBank
	}
}

// SplitPayments classifies a document's payments into one coded line per
// non-zero payment, debiting when recording money received and crediting when
// recording money paid out. It returns the total settled amount alongside the
// lines. Pure; malformed amounts are the caller's responsibility.
func SplitPayments(payments []domain.Payment, moneyIn bool) (totalPence int64, lines []domain.CodedLine) {
	for _, p := range payments {
		if p.AmountPence == 0 {
			continue
		}
		totalPence += p.AmountPence
		line := domain.CodedLine{AccountCode: MethodAccountCode(p.Method)}
		if moneyIn {
			line.DebitPence = p.AmountPence
		} else {
			line.CreditPence = p.AmountPence
		}
		lines = append(lines, line)
	}
	return totalPence, lines
}

// SaleLines builds the posting recipe for a finalized sale: debit the
// treasury accounts per payment method plus AR for any unpaid remainder,
// credit sales revenue for the subtotal and VAT payable for the VAT. When an
// estimated cost of goods sold is known it additionally moves that cost from
// inventory into COGS.
func SaleLines(inv domain.SaleInvoice) []domain.CodedLine {
	paid, lines := SplitPayments(inv.Payments, true)
	if unpaid := inv.TotalPence - paid; unpaid > 0 {
		lines = append(lines, domain.CodedLine{AccountCode: domain.CodeAR, DebitPence: unpaid})
	}
	lines = append(lines, domain.CodedLine{AccountCode: domain.CodeSales, CreditPence: inv.SubtotalPence})
	if inv.VATPence > 0 {
		lines = append(lines, domain.CodedLine{AccountCode: domain.CodeVATPayable, CreditPence: inv.VATPence})
	}
	if inv.COGSPence > 0 {
		lines = append(lines,
			domain.CodedLine{AccountCode: domain.CodeCOGS, DebitPence: inv.COGSPence},
			domain.CodedLine{AccountCode: domain.CodeInventory, CreditPence: inv.COGSPence},
		)
	}
	return lines
}

// PurchaseLines builds the posting recipe for a finalized purchase: debit
// inventory for the subtotal and VAT receivable for the VAT, credit the
// treasury accounts per payment method plus AP for any unpaid remainder.
func PurchaseLines(inv domain.PurchaseInvoice) []domain.CodedLine {
	lines := []domain.CodedLine{
		{AccountCode: domain.CodeInventory, DebitPence: inv.SubtotalPence},
	}
	if inv.VATPence > 0 {
		lines = append(lines, domain.CodedLine{AccountCode: domain.CodeVATReceivable, DebitPence: inv.VATPence})
	}
	paid, payLines := SplitPayments(inv.Payments, false)
	lines = append(lines, payLines...)
	if unpaid := inv.TotalPence - paid; unpaid > 0 {
		lines = append(lines, domain.CodedLine{AccountCode: domain.CodeAP, CreditPence: unpaid})
	}
	return lines
}

// ExpenseLines builds the posting recipe for a recorded operating expense:
// debit operating expenses, credit the treasury accounts per payment method
// plus AP for any unpaid remainder.
func ExpenseLines(amountPence int64, payments []domain.Payment) []domain.CodedLine {
	lines := []domain.CodedLine{
		{AccountCode: domain.CodeOpex, DebitPence: amountPence},
	}
	paid, payLines := SplitPayments(payments, false)
	lines = append(lines, payLines...)
	if unpaid := amountPence - paid; unpaid > 0 {
		lines = append(lines, domain.CodedLine{AccountCode: domain.CodeAP, CreditPence: unpaid})
	}
	return lines
}

// ReversedLines mirrors a posted entry's lines, swapping each debit and
// credit. Used when posting a reversing entry against the original document.
func ReversedLines(lines []domain.CodedLine) []domain.CodedLine {
	reversed := make([]domain.CodedLine, len(lines))
	for i, l := range lines {
		reversed[i] = domain.CodedLine{
			AccountCode: l.AccountCode,
			DebitPence:  l.CreditPence,
			CreditPence: l.DebitPence,
		}
	}
	return reversed
}

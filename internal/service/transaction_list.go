package service

// TransactionList is an immutable, most-recent-first list of transactions.
// Every modifier returns a new list and leaves the receiver untouched.
type TransactionList struct {
	items []Transaction
}

func NewTransactionList(items ...Transaction) TransactionList {
	return TransactionList{items: append([]Transaction(nil), items...)}
}

// Prepend returns a list with tx at the front.
func (l TransactionList) Prepend(tx Transaction) TransactionList {
	items := make([]Transaction, 0, len(l.items)+1)
	items = append(items, tx)
	items = append(items, l.items...)
	return TransactionList{items: items}
}

// Items returns a copy of the entries.
func (l TransactionList) Items() []Transaction {
	return append([]Transaction(nil), l.items...)
}

func (l TransactionList) Len() int {
	return len(l.items)
}

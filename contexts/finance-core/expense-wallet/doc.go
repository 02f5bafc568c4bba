// Package expensewallet tracks per-project cash wallets as append-only
// credit/debit ledgers. There is no stored balance and no overdraft rule:
// the wallet balance is recomputed from the entry history and may go
// negative when spending is recorded ahead of funding.
package expensewallet

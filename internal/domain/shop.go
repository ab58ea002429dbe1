package domain

// Shop represents the owner of one or more fields.
// Shops are read-only for this service: they are supplied by the external
// data source at startup and never mutated here.
type Shop struct {
	ID      int64
	Name    string
	Address string

	// Payout metadata, carried through for the owner views
	BankName    *string
	BankAccount *string
}

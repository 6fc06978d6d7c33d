package walletdex

// Source provides the full wallet collection. It is an external
// collaborator: the core does not care whether the records come from an
// embedded dataset, a file, or elsewhere.
type Source interface {
	Wallets() ([]Wallet, error)
}

// Sink accepts an exported document for saving. The filename and content
// type let the collaborator route the bytes appropriately.
type Sink interface {
	Save(data []byte, filename, contentType string) error
}

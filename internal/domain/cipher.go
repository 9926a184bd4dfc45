package domain

// Fingerprint is a short identifier for key grids presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Encryption reports everything one encryption run produced, so callers can
// display the intermediate stages alongside the ciphertext.
type Encryption struct {
	Keyword    string
	Message    string
	Grid       Grid
	Digraphs   []Digraph
	Ciphertext string
}

// Cipher is the encryption service consumed by the CLI.
type Cipher interface {
	// Encrypt runs the full pipeline and returns the complete report.
	Encrypt(keyword, message string) (Encryption, error)
	// Grid derives the key grid for a keyword.
	Grid(keyword string) (Grid, error)
	// Digraphs normalizes a message into digraphs without encrypting it.
	Digraphs(message string) []Digraph
	// Fingerprint returns a short digest of the keyword-derived grid.
	Fingerprint(keyword string) (Fingerprint, error)
}

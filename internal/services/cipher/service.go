package cipher

import (
	"strings"

	"playfair/internal/domain"
	"playfair/internal/playfair"
)

// Service runs the Playfair pipeline on behalf of callers.
type Service struct{}

// New returns a cipher service.
func New() *Service { return &Service{} }

// Encrypt builds the grid, normalizes the message and encodes every digraph,
// returning the complete report in one pass.
func (s *Service) Encrypt(keyword, message string) (domain.Encryption, error) {
	g, err := playfair.BuildGrid(keyword)
	if err != nil {
		return domain.Encryption{}, err
	}

	digraphs := playfair.Normalize(message)
	var b strings.Builder
	b.Grow(len(digraphs) * 2)
	for _, d := range digraphs {
		e, err := playfair.Encode(g, d)
		if err != nil {
			return domain.Encryption{}, err
		}
		b.Write(e[:])
	}

	return domain.Encryption{
		Keyword:    keyword,
		Message:    message,
		Grid:       g,
		Digraphs:   digraphs,
		Ciphertext: b.String(),
	}, nil
}

// Grid derives the key grid for a keyword.
func (s *Service) Grid(keyword string) (domain.Grid, error) {
	return playfair.BuildGrid(keyword)
}

// Digraphs normalizes a message without encrypting it.
func (s *Service) Digraphs(message string) []domain.Digraph {
	return playfair.Normalize(message)
}

// Fingerprint returns a short digest of the keyword-derived grid.
func (s *Service) Fingerprint(keyword string) (domain.Fingerprint, error) {
	g, err := playfair.BuildGrid(keyword)
	if err != nil {
		return "", err
	}
	return playfair.Fingerprint(g), nil
}

// Compile-time assertion that Service implements domain.Cipher.
var _ domain.Cipher = (*Service)(nil)

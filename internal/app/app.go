package app

import "playfair/internal/domain"

type App struct {
	Cipher domain.Cipher
}

func New(c domain.Cipher) *App {
	return &App{Cipher: c}
}

package service

import "errors"

var (
	ErrChampionshipNotFound = errors.New("championship not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrNoBracket            = errors.New("category has no saved bracket")
	ErrInvalidRegistration  = errors.New("invalid registration")
)

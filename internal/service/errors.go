package service

import "errors"

var (
	ErrValidation = errors.New("validation") // 400
	ErrAuth       = errors.New("auth")       // 401
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
	ErrEmpty      = errors.New("empty")      // 404, aggregation over no data
)

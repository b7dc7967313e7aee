package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingFlag    = errors.New("missing required flag")
	ErrMissingInput   = errors.New("missing input")
	ErrBadQuestion    = errors.New(`question lines must look like "question=answer"`)
)

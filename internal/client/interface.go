package client

import "context"

//go:generate mockgen -typed -package=client -destination=./mocks.go -source=./interface.go

// Runner executes external programs.
type Runner interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

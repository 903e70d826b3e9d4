// Package txmanager provides a trm.Manager for stores without transactions.
package txmanager

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type passThrough struct{}

// NewPassThrough returns a manager that just runs the closure
func NewPassThrough() trm.Manager {
	return passThrough{}
}

func (passThrough) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passThrough) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

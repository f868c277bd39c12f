// Package repository holds the storage access layer. Each repository is an
// interface backed by a gorm implementation so services never touch the
// database handle directly.
package repository

import (
	"errors"
	"fmt"
	"net"

	"gorm.io/gorm"

	"github.com/Zitteraal/chesskeep/internal/common"
)

// translate maps driver-level connectivity failures onto ErrUnavailable so
// callers can tell a retryable outage apart from a real fault. Anything else
// passes through untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, gorm.ErrInvalidDB) {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	return err
}

package services

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrOptimisticLock   = errors.New("data has been modified by another user, please refresh and try again")
	ErrStoreUnavailable = errors.New("member store is unavailable")

	// ErrNotConfigured marks an optional integration that was left unset.
	ErrNotConfigured        = errors.New("integration is not configured")
	ErrMailerNotConfigured  = fmt.Errorf("%w: email delivery", ErrNotConfigured)
	ErrArchiveNotConfigured = fmt.Errorf("%w: invoice storage", ErrNotConfigured)
)

// translateDBError maps gorm and driver errors onto the service sentinels.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMemberNotFound
	}
	if isConnectionError(err) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}

func isConnectionError(err error) bool {
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is closed") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe")
}

// Package handler translates HTTP requests into repository calls and maps
// the outcomes back: 200 for every success (creates and empty lists
// included), 404 for the not-found family, 500 for store failures and for
// the more-than-one-row integrity fault.  Each handler depends on a store
// interface declared here, satisfied by the concrete repositories.
package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// parseID reads a numeric path parameter.  Junk is rejected at the
// boundary before any repository call.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// nowStamp fills creation timestamps the client left out.
func nowStamp() string {
	return time.Now().UTC().Format(dateTimeLayout)
}

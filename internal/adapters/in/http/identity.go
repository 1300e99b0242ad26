package http

import (
	"errors"

	"pedidos/internal/core/application/auth"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the authenticating reverse proxy. Credential
// verification happens there; this layer only trusts and parses the result.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

var errIdentityMissing = errors.New("identity headers are missing")

// actorFromRequest builds the acting identity from the proxy headers.
func actorFromRequest(ctx echo.Context) (auth.Actor, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	rawRole := ctx.Request().Header.Get(HeaderUserRole)
	if rawID == "" || rawRole == "" {
		return auth.Actor{}, errIdentityMissing
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return auth.Actor{}, err
	}

	role, err := auth.RoleFromString(rawRole)
	if err != nil {
		return auth.Actor{}, err
	}

	return auth.NewActor(id, role)
}

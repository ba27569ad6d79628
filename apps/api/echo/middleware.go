package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/housepoints/core"
)

const userEmailHeader = "X-User-Email"

// actorFrom returns the client-supplied identity of the request. It is trusted as is.
func actorFrom(ctx echo.Context) core.Actor {
	return core.Actor{Email: core.CleanString(ctx.Request().Header.Get(userEmailHeader), true /* lower */)}
}

// adminMiddleware only lets requests from the configured admin email through.
func adminMiddleware(adminEmail string) echo.MiddlewareFunc {
	adminEmail = core.CleanString(adminEmail, true /* lower */)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if adminEmail != "" && actorFrom(ctx).Email == adminEmail {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}

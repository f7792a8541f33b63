//go:build tools
// +build tools

package tracefmt

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)

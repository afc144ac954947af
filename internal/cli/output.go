package cli

import (
	"io"

	"github.com/idilsaglam/safespace/internal/ui"
)

func ok(w io.Writer, msg string)   { ui.OK(w, msg) }
func fail(w io.Writer, msg string) { ui.Fail(w, msg) }

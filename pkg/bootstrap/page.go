package bootstrap

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"
)

// PageOptions controls the bootstrap HTML shell.
type PageOptions struct {
	Title       string
	Lang        string
	EntryScript string
}

// Page renders the HTML shell that hands flags to the client application:
// an empty <main> mount node, the flags as an inline JSON document with id
// "flags", and the entry script.
func Page(flags Flags, opts PageOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		// json.Marshal escapes <, > and &, so the payload cannot close the script element.
		payload, err := json.Marshal(flags)
		if err != nil {
			return err
		}

		lang := opts.Lang
		if lang == "" {
			lang = "en"
		}

		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="`+templ.EscapeString(lang)+`"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(opts.Title)+`</title></head><body><main></main>`+
			`<script type="application/json" id="flags">`); err != nil {
			return err
		}
		if _, err := w.Write(payload); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</script><script src="`+templ.EscapeString(opts.EntryScript)+`" defer></script></body></html>`)
		return err
	})
}

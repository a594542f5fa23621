package renderer

import (
	"bytes"
	"errors"

	finance "github.com/MarcovChain/FlaskFinance"
	md "github.com/nao1215/markdown"
)

// ErrorTitle names the kind of failure of err.
func ErrorTitle(err error) string {
	var (
		load  *finance.DataLoadError
		quote *finance.QuoteUnavailableError
		deriv *finance.DerivationError
	)
	switch {
	case errors.As(err, &load):
		return "Cannot load " + load.File
	case errors.As(err, &quote):
		return "No quote for " + quote.Ticker
	case errors.As(err, &deriv):
		return "Incomplete figures"
	case errors.Is(err, finance.ErrNoLoan):
		return "Missing configuration"
	}
	return "Error"
}

// ErrorMarkdown renders err as a panel, one item per joined error.
func ErrorMarkdown(err error) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(ErrorTitle(err))
	var items []string
	for _, e := range Flatten(err) {
		items = append(items, md.Code(e.Error()))
	}
	doc.BulletList(items...)
	return doc.String()
}

// Flatten lists the errors joined in err.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var res []error
		for _, e := range joined.Unwrap() {
			res = append(res, Flatten(e)...)
		}
		return res
	}
	return []error{err}
}

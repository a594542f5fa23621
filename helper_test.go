package finance

import "github.com/MarcovChain/FlaskFinance/date"

// CAD is a helper for test to create canadian dollars from const
func CAD(v float64) Money { return M(v, "CAD") }

// NO is a helper for test to create money from const wit no currency set
func NO(v float64) Money { return M(v, "") }

// day is a helper for test to parse dates from const
func day(s string) date.Date {
	d, err := date.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

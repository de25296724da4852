package cite

import "fmt"

// styleConfig drives the single preview formatter. Styles differ only in
// the values here.
type styleConfig struct {
	names func([]personName) string
	// year goes right after names as "(year)" instead of the container
	yearAfterNames bool
	quoteTitle     bool
	volumeIssue    func(volume, issue string) string
	// separates journal from volume/issue
	journalSep string
	// separates pages from the rest of the container
	pagesSep        string
	pagesNeedVolume bool
	finalPeriod     bool
}

var apaStyle = styleConfig{
	names: func(names []personName) string {
		out := make([]string, 0, len(names))
		for _, n := range names {
			out = append(out, n.inverted(true))
		}
		return joinNames(out, ", ", "&", ", ")
	},
	yearAfterNames: true,
	volumeIssue: func(volume, issue string) string {
		if volume == "" {
			return ""
		}
		if issue == "" {
			return volume
		}
		return fmt.Sprintf("%s(%s)", volume, issue)
	},
	journalSep:      ", ",
	pagesSep:        ", ",
	pagesNeedVolume: true,
}

var mlaStyle = styleConfig{
	names:      humanitiesNames,
	quoteTitle: true,
	volumeIssue: func(volume, issue string) string {
		switch {
		case volume == "":
			return issue
		case issue == "":
			return volume
		}
		return volume + "." + issue
	},
	journalSep:  " ",
	pagesSep:    ": ",
	finalPeriod: true,
}

var chicagoStyle = styleConfig{
	names:      humanitiesNames,
	quoteTitle: true,
	volumeIssue: func(volume, issue string) string {
		switch {
		case issue == "":
			return volume
		case volume == "":
			return "no. " + issue
		}
		return volume + ", no. " + issue
	},
	journalSep:  " ",
	pagesSep:    ": ",
	finalPeriod: true,
}

// humanitiesNames inverts the first author only: "Smith, John, and Ann Lee".
func humanitiesNames(names []personName) string {
	out := make([]string, 0, len(names))
	for i, n := range names {
		if i == 0 {
			out = append(out, n.inverted(false))
			continue
		}
		out = append(out, n.natural())
	}
	return joinNames(out, ", ", "and", ", ")
}

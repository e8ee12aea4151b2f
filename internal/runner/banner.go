package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = `
                        _____
 _    _____  _______/ / __/______ ___ _
| |/|/ / _ \/ __/ _  / _// __/ -_) _ '/
|__,__/\___/_/  \_,_/_/ /_/  \__/\_, /
                                  /_/
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

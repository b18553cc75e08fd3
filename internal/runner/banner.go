package runner

import "github.com/projectdiscovery/gologger"

var banner = (`
______                         _____      ___  ___ _
| ___ \                       /  __ \     |  \/  |(_)
| |_/ /__ _ _ __   __ _  ___  | /  \/ ___  | .  . | _ _ __   ___
|    // _\ | '_ \ / _\ |/ _ \ | |    / _ \ | |\/| || | '_ \ / _ \
| |\ \ (_| | | | | (_| |  __/ | \__/\ (_) || |  | || | | | |  __/
\_| \_\__,_|_| |_|\__, |\___|  \____/\___/ \_|  |_/|_|_| |_|\___|
                   __/ |
                  |___/
`)

var version = "v0.0.1"

// showBanner prints the tool banner.
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\trange co-location pattern miner\n\n")
}

package dispatch

// kind enumerates every recognized subcommand shape, so Dispatch can
// switch exhaustively over the fixed route set instead of consulting a
// string map.
type kind int

const (
	kindUnknown kind = iota
	kindRoute
	kindAll
	kindShell
)

// routeNames lists the simple routes in usage order. Each name doubles as
// the target script under the suite root (<name>.sh).
var routeNames = []string{
	"runSuspendModeTest",
	"runUnittests",
	"runAminerDemo",
	"runAminerIntegrationTest",
	"runCoverageTests",
	"runRemoteControlTest",
	"runGettingStarted",
	"runTryItOut",
}

// RouteNames returns the simple route names in usage order.
func RouteNames() []string {
	return append([]string{}, routeNames...)
}

func classify(cmd string) kind {
	switch cmd {
	case "ALL":
		return kindAll
	case "SHELL":
		return kindShell
	}
	for _, name := range routeNames {
		if cmd == name {
			return kindRoute
		}
	}
	return kindUnknown
}

// step is one entry of the ALL regression batch.
type step struct {
	script string
	args   []string
}

// allSteps is the fixed regression sequence behind the ALL subcommand.
// The order is part of the tool's contract; do not reorder.
var allSteps = []step{
	{script: "runSuspendModeTest"},
	{script: "runUnittests"},
	{script: "runRemoteControlTest"},
	{script: "runAminerDemo", args: []string{"demo/aminer/demo-config.py"}},
	{script: "runAminerDemo", args: []string{"demo/aminer/jsonConverterHandler-demo-config.py"}},
	{script: "runAminerDemo", args: []string{"demo/aminer/template_config.py"}},
	{script: "runAminerDemo", args: []string{"demo/aminer/template_config.yml"}},
	{script: "runAminerDemo", args: []string{"demo/aminer/demo-config.yml"}},
	{script: "runAminerIntegrationTest", args: []string{"aminerIntegrationTest.sh", "config.py"}},
	{script: "runAminerIntegrationTest", args: []string{"aminerIntegrationTest2.sh", "config21.py", "config22.py"}},
	{script: "runGettingStarted"},
	{script: "runTryItOut"},
	{script: "runCoverageTests"},
}

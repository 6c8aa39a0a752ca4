package sysservice

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"aminerkit/cli/aminerctl/internal/execx"
)

// Controller starts one named system service.
type Controller interface {
	Start(name string) error
}

// SudoController shells out to the host's service(8) wrapper with sudo.
type SudoController struct {
	DryRun bool
}

func (c SudoController) Start(name string) error {
	if c.DryRun {
		fmt.Fprintln(os.Stderr, "+ sudo service "+name+" start")
		return nil
	}
	res := execx.Run("sudo", "service", name, "start")
	if res.Code != 0 {
		return res.Err
	}
	return nil
}

// Prepare starts every service in names when argc indicates the tool was
// invoked with at least one argument. Failures never propagate; the
// dispatcher runs regardless of how the starts went.
func Prepare(ctrl Controller, names []string, argc int) {
	if argc <= 0 {
		return
	}
	for _, name := range names {
		if err := ctrl.Start(name); err != nil {
			log.WithField("service", name).WithError(err).Warn("service start failed, continuing")
		}
	}
}

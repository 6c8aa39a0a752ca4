// Package sysservice brings up the host services the test suite expects:
// rsyslog for syslog ingestion and postfix for the mail-based alert checks.
// Starts are best effort; a service that fails to start is logged and
// ignored because the suite historically ran fine with either service
// already up or absent from the host.
package sysservice

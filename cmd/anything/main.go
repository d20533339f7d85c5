package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/anything-list/internal/cli"
	"github.com/MKhiriev/anything-list/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := cli.Execute(ctx, &cli.RootOptions{
		BuildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, os.Args[1:])

	stop()
	os.Exit(code)
}

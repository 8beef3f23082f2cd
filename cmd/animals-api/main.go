package main

import (
	"context"
	"net/http"
	"os"

	"github.com/diwise/animal-sorter/internal/pkg/application/sorter"
	"github.com/diwise/animal-sorter/internal/pkg/infrastructure/router"
	"github.com/diwise/animal-sorter/internal/pkg/presentation/api"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "animals-api"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	policiesPath := env.GetVariableOrDefault(ctx, "POLICY_PATH", "/opt/diwise/config/authz.rego")
	port := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")

	policies, err := os.Open(policiesPath)
	if err != nil {
		logger.Error("unable to open authz policies", "path", policiesPath, "err", err.Error())
		os.Exit(1)
	}
	defer policies.Close()

	r := router.New(serviceName)

	err = api.RegisterHandlers(ctx, r, logger, policies, sorter.New())
	if err != nil {
		logger.Error("failed to register handlers", "err", err.Error())
		os.Exit(1)
	}

	logger.Info("starting to listen for connections", "port", port)

	err = http.ListenAndServe(":"+port, r)
	if err != nil {
		logger.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}

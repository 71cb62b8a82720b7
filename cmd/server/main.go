/*
 * Copyright (c) 2025, the KeyRelay project.
 *
 * The KeyRelay project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point for starting the KeyRelay gateway server.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/keyrelay/keyrelay/internal/system/config"
	"github.com/keyrelay/keyrelay/internal/system/log"
)

func main() {
	logger := log.GetLogger()

	gatewayHome := getGatewayHome(logger)

	cfg := initGatewayConfigurations(logger, gatewayHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	mux := http.NewServeMux()
	registerServices(mux)

	startHTTPServer(logger, cfg, mux)
}

// getGatewayHome retrieves and returns the gateway home directory.
func getGatewayHome(logger *log.Logger) string {
	projectHome := ""
	projectHomeFlag := flag.String("gatewayHome", "", "Path to gateway home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		logger.Info("Using gatewayHome from command line argument",
			log.String("gatewayHome", *projectHomeFlag))
		projectHome = *projectHomeFlag
	} else {
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		projectHome = dir
	}

	return projectHome
}

// initGatewayConfigurations initializes the gateway configurations.
func initGatewayConfigurations(logger *log.Logger, gatewayHome string) *config.Config {
	configFilePath := path.Join(gatewayHome, "repository/conf/gateway.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeGatewayRuntime(gatewayHome, cfg); err != nil {
		logger.Fatal("Failed to initialize gateway runtime", log.Error(err))
	}

	return cfg
}

// startHTTPServer starts the HTTP server.
func startHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) {
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("KeyRelay gateway server started (HTTP)...", log.String("address", serverAddr))

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Failed to serve HTTP requests", log.Error(err))
	}
}

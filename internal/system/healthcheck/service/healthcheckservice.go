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

// Package service provides health check business logic and operations.
package service

import (
	"net/http"
	"strings"
	"sync"

	"github.com/keyrelay/keyrelay/internal/system/config"
	"github.com/keyrelay/keyrelay/internal/system/healthcheck/model"
	httpservice "github.com/keyrelay/keyrelay/internal/system/http"
	"github.com/keyrelay/keyrelay/internal/system/log"
)

const upstreamServiceName = "UpstreamIdentityProvider"

var (
	instance *HealthCheckService
	once     sync.Once
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	HTTPClient httpservice.HTTPClientInterface
}

// GetHealthCheckService returns a singleton instance of HealthCheckService.
func GetHealthCheckService() HealthCheckServiceInterface {
	once.Do(func() {
		instance = &HealthCheckService{
			HTTPClient: httpservice.GetHTTPClient(),
		}
	})
	return instance
}

// CheckReadiness checks the readiness of the server and the upstream provider.
func (hcs *HealthCheckService) CheckReadiness() model.ServerStatus {
	upstreamStatus := model.ServiceStatus{
		ServiceName: upstreamServiceName,
		Status:      hcs.checkUpstreamStatus(),
	}

	status := model.StatusUp
	if upstreamStatus.Status == model.StatusDown {
		status = model.StatusDown
	}
	return model.ServerStatus{
		Status: status,
		ServiceStatus: []model.ServiceStatus{
			upstreamStatus,
		},
	}
}

// checkUpstreamStatus probes the upstream base URL. Any response is treated
// as up; only a transport failure marks the upstream down.
func (hcs *HealthCheckService) checkUpstreamStatus() model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	baseURL := strings.TrimSuffix(config.GetGatewayRuntime().Config.Upstream.BaseURL, "/")
	req, err := http.NewRequest(http.MethodGet, baseURL, nil)
	if err != nil {
		logger.Error("Failed to build upstream probe request", log.Error(err))
		return model.StatusDown
	}

	resp, err := hcs.HTTPClient.Do(req)
	if err != nil {
		logger.Error("Upstream probe failed", log.Error(err))
		return model.StatusDown
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close upstream probe response", log.Error(closeErr))
		}
	}()

	return model.StatusUp
}

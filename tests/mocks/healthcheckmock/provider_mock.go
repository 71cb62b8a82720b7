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

// Package healthcheckmock provides mock implementations of the health check interfaces.
package healthcheckmock

import (
	"github.com/stretchr/testify/mock"

	"github.com/keyrelay/keyrelay/internal/system/healthcheck/model"
	"github.com/keyrelay/keyrelay/internal/system/healthcheck/service"
)

// HealthCheckProviderInterfaceMock is a mock implementation of the HealthCheckProviderInterface.
type HealthCheckProviderInterfaceMock struct {
	mock.Mock
}

// GetHealthCheckService mocks the GetHealthCheckService method of the HealthCheckProviderInterface.
func (_m *HealthCheckProviderInterfaceMock) GetHealthCheckService() service.HealthCheckServiceInterface {
	ret := _m.Called()
	return ret.Get(0).(service.HealthCheckServiceInterface)
}

// HealthCheckServiceInterfaceMock is a mock implementation of the HealthCheckServiceInterface.
type HealthCheckServiceInterfaceMock struct {
	mock.Mock
}

// CheckReadiness mocks the CheckReadiness method of the HealthCheckServiceInterface.
func (_m *HealthCheckServiceInterfaceMock) CheckReadiness() model.ServerStatus {
	ret := _m.Called()
	return ret.Get(0).(model.ServerStatus)
}

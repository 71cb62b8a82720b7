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

package service

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/keyrelay/keyrelay/internal/system/config"
	"github.com/keyrelay/keyrelay/internal/system/healthcheck/model"
	"github.com/keyrelay/keyrelay/tests/mocks/httpmock"
)

type HealthCheckServiceTestSuite struct {
	suite.Suite
	mockClient *httpmock.HTTPClientInterfaceMock
	service    HealthCheckServiceInterface
}

func TestHealthCheckServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckServiceTestSuite))
}

func (suite *HealthCheckServiceTestSuite) SetupTest() {
	config.ResetGatewayRuntime()
	err := config.InitializeGatewayRuntime("/tmp", &config.Config{
		Upstream: config.UpstreamConfig{BaseURL: "http://idp.internal:8080"},
	})
	assert.NoError(suite.T(), err)

	suite.mockClient = &httpmock.HTTPClientInterfaceMock{}
	suite.service = &HealthCheckService{HTTPClient: suite.mockClient}
}

func (suite *HealthCheckServiceTestSuite) TearDownTest() {
	config.ResetGatewayRuntime()
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessUpstreamUp() {
	suite.mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{}`)),
	}, nil)

	status := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusUp, status.Status)
	assert.Len(suite.T(), status.ServiceStatus, 1)
	assert.Equal(suite.T(), "UpstreamIdentityProvider", status.ServiceStatus[0].ServiceName)
	assert.Equal(suite.T(), model.StatusUp, status.ServiceStatus[0].Status)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessUpstreamErrorStatusIsStillUp() {
	suite.mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(strings.NewReader(``)),
	}, nil)

	status := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusUp, status.Status)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessUpstreamDown() {
	suite.mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused"))

	status := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusDown, status.Status)
	assert.Equal(suite.T(), model.StatusDown, status.ServiceStatus[0].Status)
}

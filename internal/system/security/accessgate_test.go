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

package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/keyrelay/keyrelay/internal/system/error/serviceerror"
)

type AccessGateTestSuite struct {
	suite.Suite
	gate AccessGateInterface
}

func TestAccessGateSuite(t *testing.T) {
	suite.Run(t, new(AccessGateTestSuite))
}

func (suite *AccessGateTestSuite) SetupTest() {
	suite.gate = NewAccessGate(
		[]string{"key-one", "key-two"},
		[]string{"10.0.0.5", "127.0.0.1"},
	)
}

func (suite *AccessGateTestSuite) request(apiKey, remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/device", nil)
	if apiKey != "" {
		req.Header.Set("api_key", apiKey)
	}
	req.RemoteAddr = remoteAddr
	return req
}

func (suite *AccessGateTestSuite) TestCheck() {
	testCases := []struct {
		name        string
		apiKey      string
		remoteAddr  string
		expectedErr *serviceerror.ServiceError
	}{
		{
			name:        "AllowedKeyAndAddress",
			apiKey:      "key-one",
			remoteAddr:  "10.0.0.5:54321",
			expectedErr: nil,
		},
		{
			name:        "SecondAllowedKey",
			apiKey:      "key-two",
			remoteAddr:  "127.0.0.1:40000",
			expectedErr: nil,
		},
		{
			name:        "MissingKey",
			apiKey:      "",
			remoteAddr:  "10.0.0.5:54321",
			expectedErr: &ErrorInvalidAPIKey,
		},
		{
			name:        "UnknownKey",
			apiKey:      "key-three",
			remoteAddr:  "10.0.0.5:54321",
			expectedErr: &ErrorInvalidAPIKey,
		},
		{
			name:        "DisallowedAddress",
			apiKey:      "key-one",
			remoteAddr:  "192.168.1.9:54321",
			expectedErr: &ErrorDisallowedIPAddress,
		},
		{
			name:        "KeyCheckedBeforeAddress",
			apiKey:      "key-three",
			remoteAddr:  "192.168.1.9:54321",
			expectedErr: &ErrorInvalidAPIKey,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			svcErr := suite.gate.Check(suite.request(tc.apiKey, tc.remoteAddr))
			assert.Equal(suite.T(), tc.expectedErr, svcErr)
		})
	}
}

func (suite *AccessGateTestSuite) TestCheckErrorKinds() {
	unauthorized := suite.gate.Check(suite.request("unknown", "10.0.0.5:1"))
	assert.Equal(suite.T(), serviceerror.KindUnauthorized, unauthorized.Kind)

	forbidden := suite.gate.Check(suite.request("key-one", "192.168.1.9:1"))
	assert.Equal(suite.T(), serviceerror.KindForbidden, forbidden.Kind)
}

func (suite *AccessGateTestSuite) TestCheckRemoteAddrWithoutPort() {
	svcErr := suite.gate.Check(suite.request("key-one", "10.0.0.5"))
	assert.Nil(suite.T(), svcErr)
}

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

// Package httpmock provides a mock implementation of the HTTP client interface.
package httpmock

import (
	"net/http"

	"github.com/stretchr/testify/mock"
)

// HTTPClientInterfaceMock is a mock implementation of the HTTPClientInterface.
type HTTPClientInterfaceMock struct {
	mock.Mock
}

// Do mocks the Do method of the HTTPClientInterface.
func (_m *HTTPClientInterfaceMock) Do(req *http.Request) (*http.Response, error) {
	ret := _m.Called(req)

	var r0 *http.Response
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*http.Response)
	}

	return r0, ret.Error(1)
}

// NewHTTPClientInterfaceMock creates a new mock instance registered for cleanup.
func NewHTTPClientInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *HTTPClientInterfaceMock {
	m := &HTTPClientInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
